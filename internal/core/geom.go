// Package core provides fundamental types and utilities for the diorama
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep scene logic pure and testable.
package core

import "math"

// Vec2 is a point or size in stage coordinates.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box described by its center and size,
// matching how interactable hitboxes are authored.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a centered box at (x, y) with the given dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, W: w, H: h}
}

// Overlaps reports whether two centered boxes overlap. Touching edges do not
// count as overlap: two boxes whose edges coincide are considered disjoint.
func (b Box) Overlaps(other Box) bool {
	dx := math.Abs(b.Center.X - other.Center.X)
	dy := math.Abs(b.Center.Y - other.Center.Y)
	return dx < (b.W+other.W)/2 && dy < (b.H+other.H)/2
}

// Contains reports whether the point lies strictly inside the box.
func (b Box) Contains(x, y float64) bool {
	return math.Abs(x-b.Center.X) < b.W/2 && math.Abs(y-b.Center.Y) < b.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
