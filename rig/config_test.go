// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/chains/compass"
)

func TestConfigDefaults(t *testing.T) {
	sc := &SegmentConfig{}
	sc.Defaults()
	assert.Equal(t, math32.Vec2(0.05, 0.25), sc.ColliderHalfSize)
	assert.Equal(t, float32(1), sc.Mass)
	assert.Equal(t, float32(-35), sc.LowerAngle)
	assert.Equal(t, float32(35), sc.UpperAngle)
	assert.Equal(t, float32(5), sc.ForceMagnitude)
	assert.False(t, sc.UseLimits)

	sc = &SegmentConfig{Mass: 2, LowerAngle: -10}
	sc.Defaults()
	assert.Equal(t, float32(2), sc.Mass)
	assert.Equal(t, float32(-10), sc.LowerAngle)
	assert.Equal(t, float32(0), sc.UpperAngle)
}

func TestConfigSaveOpen(t *testing.T) {
	sc := &SegmentConfig{}
	sc.Defaults()
	sc.UseLimits = true
	sc.UseFixedDirection = true
	sc.FixedDirection = compass.LeftUp

	fnm := filepath.Join(t.TempDir(), "chain.toml")
	assert.NoError(t, sc.Save(fnm))

	got := &SegmentConfig{}
	assert.NoError(t, got.Open(fnm))
	assert.Equal(t, sc, got)

	assert.Error(t, got.Open(filepath.Join(t.TempDir(), "missing.toml")))
}
