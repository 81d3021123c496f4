package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Offset returns a copy of points translated by delta.
func Offset(points []image.Point, delta image.Point) []image.Point {
	out := make([]image.Point, len(points))
	for i, p := range points {
		out[i] = p.Add(delta)
	}
	return out
}

// InsetRadius shrinks a corner radius by paddingPx so an inset rounded
// rectangle stays concentric with the outer one. It never goes below zero.
func InsetRadius(radius float32, paddingPx int) float32 {
	return max(radius-float32(paddingPx), 0)
}
