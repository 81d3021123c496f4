package render

import (
	"image"
	"image/color"
)

// Layer is one part of an image. Layers are drawn in order, each on top of
// the previous ones.
type Layer interface {
	Draw(d Drawer)
}

// Drawer is an abstraction the renderer provides to layers to draw primitives
// without exposing the rasterizers behind it.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	// FillVerticalGradient replaces every row with a color interpolated
	// from "from" at the top to "to" at the bottom.
	FillVerticalGradient(from, to color.RGBA)

	// ApplyRoundedMask replaces the canvas alpha with a full-canvas rounded
	// rectangle of the given corner radius.
	ApplyRoundedMask(radius float32)

	// Generic shape primitives. Shapes composite over the canvas.
	FillRoundedRect(rect image.Rectangle, radius float32, c color.Color)
	FillPolygon(points []image.Point, c color.Color)
	StrokePolyline(points []image.Point, style StrokeStyle)
}

type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

type LineJoin int

const (
	LineJoinRound LineJoin = iota
	LineJoinBevel
)

// StrokeStyle describes how to stroke a polyline.
// Width is the full line width in pixels, centered on the path.
type StrokeStyle struct {
	Color color.Color
	Width int
	Cap   LineCap
	Join  LineJoin
}
