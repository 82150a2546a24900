// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world connects a chain rig to the chipmunk physics engine:
// it implements [rig.Engine] on a [chipmunk.Space], routes collision
// callbacks into segment contact notifiers, and syncs body state back
// into the hierarchy on every step.
package world

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/vova616/chipmunk"
	"github.com/vova616/chipmunk/vect"

	"cogentcore.org/chains/rig"
)

// World owns a chipmunk space and realizes rig components in it.
// It implements [rig.Engine]. Not safe for concurrent use; all calls
// must come from the simulation loop.
type World struct {

	// Space is the chipmunk simulation space.
	Space *chipmunk.Space

	// Gravity is applied to every rig body each step, scaled by the
	// body's GravityScale. Rig bodies bypass the space's own gravity
	// so that scaling (including the rig's -1) is exact.
	Gravity math32.Vector2

	segments map[*rig.Segment]*parts
}

// parts are the chipmunk primitives realized for one segment.
type parts struct {
	seg    *rig.Segment
	body   *chipmunk.Body
	shape  *chipmunk.Shape
	joint  *chipmunk.PivotJoint
	parent *chipmunk.Body
}

// New returns a new World with an empty space and earth-like gravity.
func New() *World {
	w := &World{
		Space:    chipmunk.NewSpace(),
		Gravity:  math32.Vec2(0, -9.81),
		segments: map[*rig.Segment]*parts{},
	}
	return w
}

// Anchor adds a static body at the given position and returns it, for
// use as [rig.Chain.Anchor].
func (w *World) Anchor(pos math32.Vector2) rig.RigidBody {
	b := chipmunk.NewBodyStatic()
	b.SetPosition(toVect(pos))
	w.Space.AddBody(b)
	return &body{b}
}

// AddBody realizes the rigid body for the given segment.
// Part of [rig.Engine].
func (w *World) AddBody(sg *rig.Segment, bd *rig.Body) rig.RigidBody {
	if sp, ok := w.segments[sg]; ok {
		return &body{sp.body}
	}
	mass := vect.Float(bd.Mass)
	if mass <= 0 {
		mass = 1
	}
	cb := chipmunk.NewBody(mass, 1)
	cb.SetPosition(toVect(sg.Pos))
	cb.IgnoreGravity = true
	cb.UserData = sg
	cb.CallbackHandler = contacts{self: cb}
	w.Space.AddBody(cb)
	w.segments[sg] = &parts{seg: sg, body: cb}
	return &body{cb}
}

// AddCollider realizes the trigger box collider for the given segment.
// Part of [rig.Engine].
func (w *World) AddCollider(sg *rig.Segment, cl *rig.Collider) {
	sp := w.segments[sg]
	if sp == nil {
		errors.Log(fmt.Errorf("world.World: collider for segment %q with no body", sg.Path()))
		return
	}
	if sp.shape != nil {
		return
	}
	box := chipmunk.NewBox(vect.Vector_Zero, vect.Float(2*cl.HalfSize.X), vect.Float(2*cl.HalfSize.Y))
	box.IsSensor = cl.Trigger
	sp.body.AddShape(box)
	sp.body.SetMoment(box.GetAsBox().Moment(float32(sp.body.Mass())))
	sp.shape = box
}

// Connect realizes the joint between the segment's body and the given
// parent body, pivoting at the segment's own origin.
// Part of [rig.Engine].
func (w *World) Connect(sg *rig.Segment, jt *rig.Joint, parent rig.RigidBody) {
	sp := w.segments[sg]
	if sp == nil {
		errors.Log(fmt.Errorf("world.World: joint for segment %q with no body", sg.Path()))
		return
	}
	if sp.joint != nil {
		return
	}
	pb, ok := parent.(*body)
	if !ok {
		errors.Log(fmt.Errorf("world.World: parent of segment %q is not a chipmunk body", sg.Path()))
		return
	}
	a2 := vect.Vector_Zero
	if jt.AutoAnchor {
		a2 = vect.Sub(sp.body.Position(), pb.b.Position())
	}
	pj := chipmunk.NewPivotJointAnchor(sp.body, pb.b, vect.Vector_Zero, a2)
	w.Space.AddConstraint(pj)
	sp.joint = pj
	sp.parent = pb.b
}

// Remove destroys all primitives realized for the segment.
// Removing an unknown segment is a no-op. Part of [rig.Engine].
func (w *World) Remove(sg *rig.Segment) {
	sp := w.segments[sg]
	if sp == nil {
		return
	}
	if sp.joint != nil {
		w.Space.RemoveConstraint(sp.joint)
	}
	w.Space.RemoveBody(sp.body)
	delete(w.segments, sg)
}

// NumBodies returns the number of segments with realized bodies.
func (w *World) NumBodies() int {
	return len(w.segments)
}

// Step advances the simulation by dt seconds: scaled gravity is
// applied to every rig body, the space steps (delivering contact
// notifications synchronously), angular limits are enforced, and body
// positions are synced back into the segments.
func (w *World) Step(dt float32) {
	for _, sp := range w.segments {
		sc := float32(1)
		if sp.seg.Body != nil {
			sc = sp.seg.Body.GravityScale
		}
		m := float32(sp.body.Mass())
		sp.body.AddForce(w.Gravity.X*sc*m, w.Gravity.Y*sc*m)
	}
	w.Space.Step(vect.Float(dt))
	for _, sp := range w.segments {
		w.applyLimits(sp)
		sp.seg.Pos = toVec2(sp.body.Position())
	}
}

// applyLimits clamps the body's angle relative to its joint parent.
// The chipmunk port has no rotary limit constraint, so limits are a
// post-step clamp.
func (w *World) applyLimits(sp *parts) {
	jt := sp.seg.Joint
	if jt == nil || !jt.UseLimits || sp.parent == nil {
		return
	}
	rel := sp.body.Angle() - sp.parent.Angle()
	lo := vect.Float(math32.DegToRad(jt.LowerAngle))
	hi := vect.Float(math32.DegToRad(jt.UpperAngle))
	switch {
	case rel < lo:
		sp.body.SetAngle(sp.parent.Angle() + lo)
	case rel > hi:
		sp.body.SetAngle(sp.parent.Angle() + hi)
	}
}

// body adapts a chipmunk body to [rig.RigidBody].
type body struct {
	b *chipmunk.Body
}

func (bd *body) Position() math32.Vector2 {
	return toVec2(bd.b.Position())
}

// ApplyImpulse changes the body velocity by impulse / mass.
// Static bodies have infinite mass and are unaffected.
func (bd *body) ApplyImpulse(impulse math32.Vector2) {
	if bd.b.IsStatic() {
		return
	}
	m := float32(bd.b.Mass())
	if m == 0 {
		return
	}
	bd.b.AddVelocity(impulse.X/m, impulse.Y/m)
}

// contacts routes chipmunk collision callbacks for one body into its
// segment's contact notifier. Only the owning body's segment is
// notified; the colliding body runs its own handler.
type contacts struct {
	self *chipmunk.Body
}

func (ct contacts) CollisionEnter(arb *chipmunk.Arbiter) bool {
	other := arb.BodyA
	if other == ct.self {
		other = arb.BodyB
	}
	sg, ok := ct.self.UserData.(*rig.Segment)
	if !ok || sg.Contacts == nil {
		return true
	}
	sg.Contacts.Notify(toVec2(other.Position()))
	return true
}

func (ct contacts) CollisionPreSolve(arb *chipmunk.Arbiter) bool { return true }

func (ct contacts) CollisionPostSolve(arb *chipmunk.Arbiter) {}

func (ct contacts) CollisionExit(arb *chipmunk.Arbiter) {}

func toVect(v math32.Vector2) vect.Vect {
	return vect.Vect{X: vect.Float(v.X), Y: vect.Float(v.Y)}
}

func toVec2(v vect.Vect) math32.Vector2 {
	return math32.Vec2(float32(v.X), float32(v.Y))
}
