// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"cogentcore.org/chains/compass"
)

// ForceApplier computes a unit force direction for its segment, either
// from the displacement away from the last contact point or from a
// fixed compass direction, and requests impulses from the segment's
// rigid body.
type ForceApplier struct {

	// UseFixedDirection selects FixedDirection instead of the
	// contact displacement.
	UseFixedDirection bool

	// FixedDirection is the compass direction used when
	// UseFixedDirection is set.
	FixedDirection compass.Direction

	// Magnitude is the impulse magnitude.
	Magnitude float32

	// lastDisplacement is the displacement from the last contact
	// point to the segment, overwritten on every contact.
	lastDisplacement math32.Vector2

	seg *Segment
}

// OnContactFrom records the displacement from the given contact point
// to the segment. It has no immediate effect.
func (fa *ForceApplier) OnContactFrom(point math32.Vector2) {
	if fa.seg == nil {
		return
	}
	fa.lastDisplacement = fa.seg.position().Sub(point)
}

// ResolveDirection returns the unit force direction: the fixed compass
// direction when UseFixedDirection is set, otherwise the normalized
// last contact displacement. A zero displacement resolves to the zero
// vector, making the resulting impulse a no-op; contacts exactly at
// the segment position are expected, not errors.
func (fa *ForceApplier) ResolveDirection() math32.Vector2 {
	if fa.UseFixedDirection {
		return fa.FixedDirection.Vector()
	}
	if fa.lastDisplacement.Length() == 0 {
		return math32.Vector2{}
	}
	return fa.lastDisplacement.Normal()
}

// ApplyImpulse requests an instantaneous impulse of
// ResolveDirection() * Magnitude from the segment's rigid body.
// A missing body handle indicates the rig was not generated (or was
// torn down) and is reported; it is never silently swallowed.
func (fa *ForceApplier) ApplyImpulse() {
	if fa.seg == nil || fa.seg.Body == nil || fa.seg.Body.Rigid == nil {
		errors.Log(fmt.Errorf("rig.ForceApplier: segment %q has no rigid body; rig not generated?", fa.segPath()))
		return
	}
	fa.seg.Body.Rigid.ApplyImpulse(fa.ResolveDirection().MulScalar(fa.Magnitude))
}

func (fa *ForceApplier) segPath() string {
	if fa.seg == nil {
		return "<nil>"
	}
	return fa.seg.Path()
}
