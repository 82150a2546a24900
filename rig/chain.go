// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// GravityScale is the gravity scale set on every generated rig body.
// The rig runs with inverted gravity.
const GravityScale = -1

// Chain is the root node of a segment hierarchy and the generator of
// its rig. Generate walks every descendant [Segment] (the root itself
// is never touched), attaches and configures the five rig components,
// realizes them through the bound [Engine], and wires each segment's
// contact notifications to its own force applier. Teardown reverses
// all of it. Both are idempotent and must only be called while the
// simulation is quiescent.
type Chain struct {
	tree.NodeBase

	// Config has the parameters applied to every segment at
	// generation time.
	Config SegmentConfig

	// Pos is the world position of the chain root.
	Pos math32.Vector2

	// Generated is set by Generate and cleared by Teardown.
	Generated bool `set:"-" edit:"-"`

	// Engine realizes the physics primitives. Optional: without one,
	// Generate still attaches and wires components, and bodies are
	// realized when an engine is bound and Generate runs again.
	Engine Engine `json:"-" display:"-" set:"-"`

	// Anchor is the rigid body that depth-1 segments joint to,
	// standing in for the untouched root. Typically a static body
	// from the engine.
	Anchor RigidBody `json:"-" display:"-" set:"-"`
}

func (ch *Chain) Init() {
	ch.NodeBase.Init()
	// listeners are not persisted; restore them on activation
	if ch.Generated {
		ch.Rewire()
	}
}

// walkSegments calls fun for every descendant segment of the chain,
// excluding the chain itself, in stable parent-before-child order.
// Disabled segments are included; non-segment nodes are skipped but
// their descendants are still visited.
func (ch *Chain) walkSegments(fun func(sg *Segment)) {
	ch.WalkDown(func(n tree.Node) bool {
		if n == ch.This {
			return tree.Continue
		}
		if sg := AsSegment(n); sg != nil {
			fun(sg)
		}
		return tree.Continue
	})
}

// Generate rigs every descendant segment of the chain: it attaches
// any missing components, applies [Chain.Config], connects each
// segment's joint to its parent's rigid body, and rewires contact
// notifications. Calling it again reapplies the config without
// duplicating components or listeners.
func (ch *Chain) Generate() { //types:add
	ch.walkSegments(func(sg *Segment) {
		ch.rigSegment(sg)
	})
	ch.Rewire()
	ch.Generated = true
}

// rigSegment attaches and configures the components of one segment,
// and realizes them through the engine when one is bound.
func (ch *Chain) rigSegment(sg *Segment) {
	cfg := &ch.Config
	parPos, parBody := ch.parentOf(sg)
	sg.Pos = parPos.Add(sg.Rel)

	if sg.Body == nil {
		sg.Body = &Body{}
	}
	sg.Body.Mass = cfg.Mass
	sg.Body.GravityScale = GravityScale

	if sg.Collider == nil {
		sg.Collider = &Collider{}
	}
	sg.Collider.Trigger = true
	sg.Collider.HalfSize = cfg.ColliderHalfSize

	if sg.Joint == nil {
		sg.Joint = &Joint{}
	}
	sg.Joint.AutoAnchor = true
	sg.Joint.UseLimits = cfg.UseLimits
	sg.Joint.LowerAngle = cfg.LowerAngle
	sg.Joint.UpperAngle = cfg.UpperAngle

	if sg.Force == nil {
		sg.Force = &ForceApplier{}
	}
	sg.Force.seg = sg
	sg.Force.Magnitude = cfg.ForceMagnitude
	sg.Force.UseFixedDirection = cfg.UseFixedDirection
	sg.Force.FixedDirection = cfg.FixedDirection

	if sg.Contacts == nil {
		sg.Contacts = &ContactNotifier{}
	}

	if ch.Engine == nil {
		return
	}
	if sg.Body.Rigid == nil {
		sg.Body.Rigid = ch.Engine.AddBody(sg, sg.Body)
		ch.Engine.AddCollider(sg, sg.Collider)
	}
	if sg.Joint.Connected == nil {
		if parBody == nil {
			errors.Log(fmt.Errorf("rig.Chain: segment %q has no parent rigid body to joint to", sg.Path()))
			return
		}
		sg.Joint.Connected = parBody
		ch.Engine.Connect(sg, sg.Joint, parBody)
	}
}

// parentOf returns the position and rigid body of the segment's
// immediate parent: the parent segment's when it is one, otherwise
// the chain root's own Pos and Anchor.
func (ch *Chain) parentOf(sg *Segment) (math32.Vector2, RigidBody) {
	if ps := AsSegment(sg.Parent); ps != nil {
		var pb RigidBody
		if ps.Body != nil {
			pb = ps.Body.Rigid
		}
		return ps.Pos, pb
	}
	return ch.Pos, ch.Anchor
}

// Rewire clears the contact listeners of every descendant segment and
// registers exactly one that forwards the contact point into that
// same segment's force applier, which then applies its impulse.
// A segment missing its notifier or applier is reported and skipped;
// its siblings are still rewired.
func (ch *Chain) Rewire() {
	ch.walkSegments(func(sg *Segment) {
		if sg.Contacts == nil || sg.Force == nil {
			errors.Log(fmt.Errorf("rig.Chain: segment %q is missing its contact notifier or force applier; skipping", sg.Path()))
			return
		}
		fa := sg.Force
		sg.Contacts.Clear()
		sg.Contacts.Listen(func(point math32.Vector2) {
			fa.OnContactFrom(point)
			fa.ApplyImpulse()
		})
	})
}

// Teardown removes the rig from every descendant segment: engine
// primitives are destroyed and all five components are detached.
// Removing an absent component is a no-op, so calling Teardown again
// does nothing.
func (ch *Chain) Teardown() { //types:add
	ch.walkSegments(func(sg *Segment) {
		if ch.Engine != nil {
			ch.Engine.Remove(sg)
		}
		sg.Body = nil
		sg.Collider = nil
		sg.Joint = nil
		sg.Force = nil
		sg.Contacts = nil
	})
	ch.Generated = false
}
