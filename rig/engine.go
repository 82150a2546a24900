// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import "cogentcore.org/core/math32"

// RigidBody is the handle to a rigid body realized by an [Engine].
type RigidBody interface {

	// Position returns the current world position of the body.
	Position() math32.Vector2

	// ApplyImpulse applies an instantaneous velocity-changing impulse
	// to the body.
	ApplyImpulse(impulse math32.Vector2)
}

// Engine realizes rig components as physics primitives and destroys
// them again. All operations are idempotent per segment: realizing an
// already-realized primitive is a no-op, as is removing an unknown
// segment. [Chain] calls AddBody on a parent segment before any of
// its children.
type Engine interface {

	// AddBody realizes the rigid body for the given segment at its
	// current Pos and returns the handle. Repeated calls return the
	// existing handle.
	AddBody(sg *Segment, bd *Body) RigidBody

	// AddCollider realizes the collider for the given segment,
	// attached to its rigid body.
	AddCollider(sg *Segment, cl *Collider)

	// Connect realizes the joint between the segment's body and the
	// given parent body.
	Connect(sg *Segment, jt *Joint, parent RigidBody)

	// Remove destroys all primitives realized for the segment.
	Remove(sg *Segment)
}
