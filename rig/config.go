// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32"

	"cogentcore.org/chains/compass"
)

// SegmentConfig has the per-chain parameters applied to every segment
// at generation time. It is not consulted again after
// [Chain.Generate]; regenerate to apply changes.
type SegmentConfig struct { //types:add

	// ColliderHalfSize is half the extent of each segment's trigger
	// collider on each axis.
	ColliderHalfSize math32.Vector2

	// Mass of each segment's rigid body.
	Mass float32 `min:"0"`

	// UseLimits enables angular limits on the joints.
	UseLimits bool

	// LowerAngle is the lower angular limit in degrees.
	LowerAngle float32

	// UpperAngle is the upper angular limit in degrees.
	UpperAngle float32

	// ForceMagnitude is the impulse magnitude of each segment's force
	// applier.
	ForceMagnitude float32

	// UseFixedDirection makes force appliers use FixedDirection
	// instead of the contact displacement.
	UseFixedDirection bool

	// FixedDirection is the compass direction used when
	// UseFixedDirection is set.
	FixedDirection compass.Direction
}

// Defaults sets default values for any zero fields.
func (sc *SegmentConfig) Defaults() {
	if sc.ColliderHalfSize == (math32.Vector2{}) {
		sc.ColliderHalfSize = math32.Vec2(0.05, 0.25)
	}
	if sc.Mass == 0 {
		sc.Mass = 1
	}
	if sc.LowerAngle == 0 && sc.UpperAngle == 0 {
		sc.LowerAngle = -35
		sc.UpperAngle = 35
	}
	if sc.ForceMagnitude == 0 {
		sc.ForceMagnitude = 5
	}
}

// Open loads the config from the given TOML file.
func (sc *SegmentConfig) Open(filename string) error { //types:add
	return tomlx.Open(sc, filename)
}

// Save saves the config to the given TOML file.
func (sc *SegmentConfig) Save(filename string) error { //types:add
	return tomlx.Save(sc, filename)
}
