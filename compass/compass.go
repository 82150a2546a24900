// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compass quantizes continuous angles and displacement vectors
// into eight discrete directions at 45 degree steps.
package compass

//go:generate core generate

import "cogentcore.org/core/math32"

// Direction is one of eight compass directions at 45 degree steps,
// with Right at 0 degrees and ordinals increasing counter-clockwise.
// Ordinal i covers the angle range [45i - 22.5, 45i + 22.5) mod 360.
type Direction int32 //enums:enum -transform kebab

const (
	// Right is 0 degrees, +X.
	Right Direction = iota

	// UpRight is 45 degrees, +X+Y.
	UpRight

	// Up is 90 degrees, +Y.
	Up

	// LeftUp is 135 degrees, -X+Y.
	LeftUp

	// Left is 180 degrees, -X.
	Left

	// LeftDown is 225 degrees, -X-Y.
	LeftDown

	// Down is 270 degrees, -Y.
	Down

	// RightDown is 315 degrees, +X-Y.
	RightDown
)

// Vectors are the grid vectors for each direction, indexed by ordinal.
// Diagonals are not unit length; use [Direction.Vector] for the
// normalized form.
var Vectors = [DirectionN]math32.Vector2{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

const (
	sector     = 45
	halfSector = 22.5
)

// Quantize returns the direction whose 45 degree sector contains the
// given angle in degrees. It is total over all inputs and periodic:
// Quantize(a) == Quantize(a+360) for all a. The sector that wraps
// across 0 (above 337.5) lands one past the last ordinal and is
// clamped to [Right], as is any floating point boundary spill; the
// clamp carries no meaning beyond "boundary case".
func Quantize(deg float32) Direction {
	a := math32.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	d := Direction(math32.Floor((a + halfSector) / sector))
	if d < 0 || d >= DirectionN {
		d = Right
	}
	return d
}

// FromVector returns the direction whose sector contains the heading
// of the given displacement vector. The zero vector has heading 0 and
// maps to [Right].
func FromVector(v math32.Vector2) Direction {
	return Quantize(math32.RadToDeg(math32.Atan2(v.Y, v.X)))
}

// Vector returns the normalized vector for this direction.
// Out-of-range values resolve to [Right].
func (d Direction) Vector() math32.Vector2 {
	if d < 0 || d >= DirectionN {
		d = Right
	}
	return Vectors[d].Normal()
}
