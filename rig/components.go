// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import "cogentcore.org/core/math32"

// Body is the rigid body component of a segment, holding the
// parameters the engine realizes and the resulting engine handle.
type Body struct {

	// Mass of the body.
	Mass float32

	// GravityScale multiplies world gravity for this body.
	// Generated rig bodies use -1 (inverted gravity).
	GravityScale float32

	// Rigid is the engine handle, nil until realized.
	Rigid RigidBody `json:"-"`
}

// Collider is the collider component of a segment: an axis-aligned
// box centered on the segment.
type Collider struct {

	// HalfSize is half the box extent on each axis.
	HalfSize math32.Vector2

	// Trigger colliders report contacts but produce no collision
	// response. Generated rig colliders are always triggers.
	Trigger bool
}

// Joint is the joint component connecting a segment to its parent's
// rigid body.
type Joint struct {

	// AutoAnchor computes the connected anchor from the bodies'
	// positions at connection time.
	AutoAnchor bool

	// UseLimits enables the angular limits below.
	UseLimits bool

	// LowerAngle is the lower angular limit in degrees.
	LowerAngle float32

	// UpperAngle is the upper angular limit in degrees.
	UpperAngle float32

	// Connected is the parent rigid body, nil until connected.
	Connected RigidBody `json:"-"`
}

// ContactNotifier is the contact notifier component of a segment:
// it fans a began-touching contact point out to its listeners.
// Delivery is synchronous, during the engine step that detected the
// contact.
type ContactNotifier struct {
	listeners []func(point math32.Vector2)
}

// Listen registers a listener called with the contact point on every
// began-touching event.
func (cn *ContactNotifier) Listen(f func(point math32.Vector2)) {
	cn.listeners = append(cn.listeners, f)
}

// Clear removes all registered listeners.
func (cn *ContactNotifier) Clear() {
	cn.listeners = nil
}

// NumListeners returns the number of registered listeners.
func (cn *ContactNotifier) NumListeners() int {
	return len(cn.listeners)
}

// Notify delivers a began-touching contact point to all listeners,
// in registration order.
func (cn *ContactNotifier) Notify(point math32.Vector2) {
	for _, f := range cn.listeners {
		f(point)
	}
}
