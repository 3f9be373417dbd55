package model

import "math"

// BBox represents an axis-aligned bounding box in a top-left origin
// coordinate system: X increases rightward, Y increases downward, so
// Y0 is the top edge and Y1 the bottom edge.
type BBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewBBox creates a bounding box from its edge coordinates.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// MidX returns the horizontal center of the box.
func (b BBox) MidX() float64 {
	return (b.X0 + b.X1) / 2
}

// MidY returns the vertical center of the box.
func (b BBox) MidY() float64 {
	return (b.Y0 + b.Y1) / 2
}

// ContainsX reports whether an X coordinate falls inside the box's
// horizontal extent.
func (b BBox) ContainsX(x float64) bool {
	return x >= b.X0 && x <= b.X1
}

// ContainsY reports whether a Y coordinate falls inside the box's
// vertical extent.
func (b BBox) ContainsY(y float64) bool {
	return y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Union returns the smallest bounding box containing both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// IsValid returns true if the bounding box has non-negative dimensions.
func (b BBox) IsValid() bool {
	return b.X1 >= b.X0 && b.Y1 >= b.Y0
}
