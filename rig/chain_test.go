// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/chains/compass"
)

// fakeBody records requested impulses.
type fakeBody struct {
	pos      math32.Vector2
	impulses []math32.Vector2
}

func (fb *fakeBody) Position() math32.Vector2 { return fb.pos }

func (fb *fakeBody) ApplyImpulse(impulse math32.Vector2) {
	fb.impulses = append(fb.impulses, impulse)
}

// fakeEngine implements [Engine] with in-memory records.
type fakeEngine struct {
	anchor    *fakeBody
	bodies    map[*Segment]*fakeBody
	colliders map[*Segment]*Collider
	joints    map[*Segment]RigidBody
	added     int
	removed   int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		anchor:    &fakeBody{},
		bodies:    map[*Segment]*fakeBody{},
		colliders: map[*Segment]*Collider{},
		joints:    map[*Segment]RigidBody{},
	}
}

func (fe *fakeEngine) AddBody(sg *Segment, bd *Body) RigidBody {
	if fb, ok := fe.bodies[sg]; ok {
		return fb
	}
	fb := &fakeBody{pos: sg.Pos}
	fe.bodies[sg] = fb
	fe.added++
	return fb
}

func (fe *fakeEngine) AddCollider(sg *Segment, cl *Collider) {
	fe.colliders[sg] = cl
}

func (fe *fakeEngine) Connect(sg *Segment, jt *Joint, parent RigidBody) {
	fe.joints[sg] = parent
}

func (fe *fakeEngine) Remove(sg *Segment) {
	if _, ok := fe.bodies[sg]; !ok {
		return
	}
	delete(fe.bodies, sg)
	delete(fe.colliders, sg)
	delete(fe.joints, sg)
	fe.removed++
}

// newTestChain returns a chain with three segments a -> b -> c,
// where c is a grandchild of a.
func newTestChain(fe *fakeEngine) (ch *Chain, a, b, c *Segment) {
	ch = NewChain()
	ch.SetName("stem")
	ch.Engine = fe
	ch.Anchor = fe.anchor
	ch.Config.Defaults()
	a = NewSegment(ch).SetRel(math32.Vec2(0, 0.5))
	a.SetName("a")
	b = NewSegment(a).SetRel(math32.Vec2(0, 0.5))
	b.SetName("b")
	c = NewSegment(b).SetRel(math32.Vec2(0, 0.5))
	c.SetName("c")
	return
}

func TestGenerate(t *testing.T) {
	fe := newFakeEngine()
	ch, a, b, c := newTestChain(fe)
	ch.Generate()

	assert.True(t, ch.Generated)
	for _, sg := range []*Segment{a, b, c} {
		assert.True(t, sg.Rigged(), sg.Name)
		assert.True(t, sg.Collider.Trigger, sg.Name)
		assert.Equal(t, ch.Config.ColliderHalfSize, sg.Collider.HalfSize, sg.Name)
		assert.Equal(t, float32(GravityScale), sg.Body.GravityScale, sg.Name)
		assert.True(t, sg.Joint.AutoAnchor, sg.Name)
		assert.Equal(t, 1, sg.Contacts.NumListeners(), sg.Name)
	}
	// joints connect to the immediate parent's rigid body
	assert.Same(t, fe.anchor, fe.joints[a])
	assert.Same(t, fe.bodies[a], fe.joints[b])
	assert.Same(t, fe.bodies[b], fe.joints[c])
	// positions cascade from the root
	assert.Equal(t, math32.Vec2(0, 0.5), a.Pos)
	assert.Equal(t, math32.Vec2(0, 1), b.Pos)
	assert.Equal(t, math32.Vec2(0, 1.5), c.Pos)
}

func TestGenerateIdempotent(t *testing.T) {
	fe := newFakeEngine()
	ch, a, b, c := newTestChain(fe)
	ch.Generate()
	ch.Generate()

	assert.Equal(t, 3, fe.added)
	for _, sg := range []*Segment{a, b, c} {
		assert.Equal(t, 1, sg.Contacts.NumListeners(), sg.Name)
	}
}

func TestGenerateSkipsNonSegment(t *testing.T) {
	fe := newFakeEngine()
	ch, _, _, _ := newTestChain(fe)
	tree.New[tree.NodeBase](ch)
	ch.Generate()
	assert.Equal(t, 3, fe.added)
}

func TestGenerateDisabled(t *testing.T) {
	fe := newFakeEngine()
	ch, _, b, _ := newTestChain(fe)
	b.SetDisabled(true)
	ch.Generate()
	assert.True(t, b.Rigged())
	assert.Equal(t, 3, fe.added)
}

func TestTeardown(t *testing.T) {
	fe := newFakeEngine()
	ch, a, b, c := newTestChain(fe)
	ch.Generate()
	ch.Teardown()

	assert.False(t, ch.Generated)
	assert.Equal(t, 3, fe.removed)
	assert.Empty(t, fe.bodies)
	for _, sg := range []*Segment{a, b, c} {
		assert.Nil(t, sg.Body, sg.Name)
		assert.Nil(t, sg.Collider, sg.Name)
		assert.Nil(t, sg.Joint, sg.Name)
		assert.Nil(t, sg.Force, sg.Name)
		assert.Nil(t, sg.Contacts, sg.Name)
	}

	ch.Teardown() // no-op
	assert.Equal(t, 3, fe.removed)
}

func TestContactImpulseFixedDirection(t *testing.T) {
	fe := newFakeEngine()
	ch, _, b, _ := newTestChain(fe)
	ch.Generate()

	b.Force.UseFixedDirection = true
	b.Force.FixedDirection = compass.Up
	b.Force.Magnitude = 5

	fb := fe.bodies[b]
	b.Contacts.Notify(math32.Vec2(3.7, -2.2))
	if assert.Len(t, fb.impulses, 1) {
		assert.InDelta(t, 0, fb.impulses[0].X, 1.0e-6)
		assert.InDelta(t, 5, fb.impulses[0].Y, 1.0e-6)
	}
	// the fixed direction ignores the contact point entirely
	b.Contacts.Notify(math32.Vec2(-100, 42))
	if assert.Len(t, fb.impulses, 2) {
		assert.InDelta(t, 0, fb.impulses[1].X, 1.0e-6)
		assert.InDelta(t, 5, fb.impulses[1].Y, 1.0e-6)
	}
}

func TestContactImpulseDisplacement(t *testing.T) {
	fe := newFakeEngine()
	ch, _, b, _ := newTestChain(fe)
	ch.Generate()
	b.Force.Magnitude = 2

	fb := fe.bodies[b]
	b.Contacts.Notify(b.Pos.Sub(math32.Vec2(1, 0))) // contact to the left
	if assert.Len(t, fb.impulses, 1) {
		assert.InDelta(t, 2, fb.impulses[0].X, 1.0e-6)
		assert.InDelta(t, 0, fb.impulses[0].Y, 1.0e-6)
	}
}

func TestContactImpulseZeroDisplacement(t *testing.T) {
	fe := newFakeEngine()
	ch, _, b, _ := newTestChain(fe)
	ch.Generate()

	fb := fe.bodies[b]
	b.Contacts.Notify(b.Pos) // degenerate: contact exactly at the segment
	if assert.Len(t, fb.impulses, 1) {
		assert.Equal(t, math32.Vector2{}, fb.impulses[0])
	}
}

func TestRewireMissingComponents(t *testing.T) {
	fe := newFakeEngine()
	ch, a, b, c := newTestChain(fe)
	ch.Generate()

	c.Contacts = nil // malformed child must not abort its siblings
	ch.Rewire()
	assert.Equal(t, 1, a.Contacts.NumListeners())
	assert.Equal(t, 1, b.Contacts.NumListeners())
}
