package domain

import "fmt"

// Point is a pixel coordinate on the icon canvas.
type Point struct {
	X, Y int
}

// Line is a stroke between two canvas points.
type Line struct {
	From, To Point
}

// Geometry holds the pixel coordinates of the magnifying-glass-with-arrow
// motif for a single icon size. Every value derives proportionally from the
// side length, so the same motif scales across all requested outputs.
type Geometry struct {
	// Center and Radius describe the lens circle, stroked at StrokeWidth.
	Center      Point
	Radius      int
	StrokeWidth int
	// Handle is the diagonal grip leaving the lens at the lower right.
	Handle Line
	// Shaft is the vertical body of the download arrow inside the lens,
	// stroked at ShaftWidth. Head is the filled triangle below it, tip
	// first.
	Shaft      Line
	ShaftWidth int
	Head       [3]Point
}

// ComputeGeometry derives the motif coordinates for a square canvas of the
// given side length. The result is deterministic for a fixed size and all
// coordinates stay within [0, size].
func ComputeGeometry(size int) (Geometry, error) {
	if size < MinIconSize {
		return Geometry{}, fmt.Errorf("%w: %d < %d", ErrSizeTooSmall, size, MinIconSize)
	}

	padding := size / 6
	radius := size / 3

	center := Point{
		X: size/2 - padding/2,
		Y: size/2 - padding/2,
	}

	handleStart := Point{
		X: center.X + int(float64(radius)*0.7),
		Y: center.Y + int(float64(radius)*0.7),
	}
	handleLength := size / 4

	shaftLength := size / 6

	return Geometry{
		Center:      center,
		Radius:      radius,
		StrokeWidth: max(2, size/16),
		Handle: Line{
			From: handleStart,
			To:   Point{X: handleStart.X + handleLength, Y: handleStart.Y + handleLength},
		},
		Shaft: Line{
			From: Point{X: center.X, Y: center.Y - shaftLength/2},
			To:   Point{X: center.X, Y: center.Y + shaftLength/2},
		},
		ShaftWidth: max(1, size/24),
		Head: [3]Point{
			{X: center.X, Y: center.Y + shaftLength/2 + size/16},
			{X: center.X - shaftLength/3, Y: center.Y + shaftLength/4},
			{X: center.X + shaftLength/3, Y: center.Y + shaftLength/4},
		},
	}, nil
}
