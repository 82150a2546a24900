// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rig procedurally rigs a chain of articulated physics
// segments arranged in a [tree.Node] hierarchy, and reacts to
// collisions by applying directional impulses to the segment that was
// touched. The physics engine itself is an external collaborator
// reached through the [Engine] interface.
package rig

//go:generate core generate -add-types

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Segment is one physics-bearing node in a parent-child chain.
// After [Chain.Generate] it owns one collider, one rigid body, one
// joint connected to its parent's rigid body, one force applier, and
// one contact notifier; [Chain.Teardown] removes all five.
type Segment struct {
	tree.NodeBase

	// Rel is the position of this segment relative to its parent.
	Rel math32.Vector2

	// Pos is the world position, set from Rel at generation time and
	// updated by the engine as the simulation steps.
	Pos math32.Vector2 `set:"-"`

	// Disabled segments are not displayed by viewers, but are still
	// enumerated and rigged like any other segment.
	Disabled bool

	// Body is the rigid body component, nil until rigged.
	Body *Body `json:"-" set:"-"`

	// Collider is the trigger collider component, nil until rigged.
	Collider *Collider `json:"-" set:"-"`

	// Joint is the joint component connecting to the parent's rigid
	// body, nil until rigged.
	Joint *Joint `json:"-" set:"-"`

	// Force is the force applier component, nil until rigged.
	Force *ForceApplier `json:"-" set:"-"`

	// Contacts is the contact notifier component, nil until rigged.
	Contacts *ContactNotifier `json:"-" set:"-"`
}

// AsSegment returns the given tree node as a Segment,
// or nil if it is not one.
func AsSegment(n tree.Node) *Segment {
	sg, _ := n.(*Segment)
	return sg
}

// position returns the live body position when the segment has a
// realized rigid body, and the last known Pos otherwise.
func (sg *Segment) position() math32.Vector2 {
	if sg.Body != nil && sg.Body.Rigid != nil {
		return sg.Body.Rigid.Position()
	}
	return sg.Pos
}

// Rigged reports whether all five rig components are present.
func (sg *Segment) Rigged() bool {
	return sg.Body != nil && sg.Collider != nil && sg.Joint != nil &&
		sg.Force != nil && sg.Contacts != nil
}
