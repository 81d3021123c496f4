package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterDrawer draws into an in-memory RGBA canvas. Fills go through the
// x/image vector rasterizer, strokes through the freetype stroker.
type RasterDrawer struct {
	canvas *image.RGBA
	fill   *vector.Rasterizer
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// NewRasterDrawer allocates a transparent canvas of the given size.
func NewRasterDrawer(width, height int) *RasterDrawer {
	return &RasterDrawer{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		fill:   vector.NewRasterizer(width, height),
	}
}

// Canvas returns the image being drawn into.
func (r *RasterDrawer) Canvas() *image.RGBA { return r.canvas }

func (r *RasterDrawer) Size() (int, int) {
	bounds := r.canvas.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (r *RasterDrawer) FillVerticalGradient(from, to color.RGBA) {
	bounds := r.canvas.Bounds()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		row := image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+1)
		draw.Draw(r.canvas, row, &image.Uniform{C: GradientRow(from, to, y, height)}, image.Point{}, draw.Src)
	}
	if r.Logger != nil {
		r.Logger.Infof("raster", "gradient filled, rows=%d", height)
	}
}

func (r *RasterDrawer) ApplyRoundedMask(radius float32) {
	mask := RoundedMask(r.canvas.Bounds(), radius)
	ApplyAlpha(r.canvas, mask)
	if r.Logger != nil {
		r.Logger.Infof("raster", "rounded mask applied, radius=%.0f", radius)
	}
}

func (r *RasterDrawer) FillRoundedRect(rect image.Rectangle, radius float32, c color.Color) {
	r.resetFill()
	addRoundedRect(r.fill, rect, radius)
	r.fill.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{C: c}, image.Point{})
}

func (r *RasterDrawer) FillPolygon(points []image.Point, c color.Color) {
	if len(points) < 3 {
		if r.Logger != nil {
			r.Logger.Errorf("raster", "polygon needs 3 points, got %d", len(points))
		}
		return
	}
	r.resetFill()
	r.fill.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.fill.LineTo(float32(p.X), float32(p.Y))
	}
	r.fill.ClosePath()
	r.fill.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{C: c}, image.Point{})
}

// StrokePolyline strokes the points as one path, so overlapping segments
// are painted once even with a translucent color.
func (r *RasterDrawer) StrokePolyline(points []image.Point, style StrokeStyle) {
	if len(points) < 2 || style.Width <= 0 {
		if r.Logger != nil {
			r.Logger.Errorf("raster", "nothing to stroke, points=%d width=%d", len(points), style.Width)
		}
		return
	}
	var path raster.Path
	path.Start(toFixed(points[0]))
	for _, p := range points[1:] {
		path.Add1(toFixed(p))
	}

	width, height := r.Size()
	rasterizer := raster.NewRasterizer(width, height)
	rasterizer.UseNonZeroWinding = true
	rasterizer.AddStroke(path, fixed.I(style.Width), capper(style.Cap), joiner(style.Join))

	painter := raster.NewRGBAPainter(r.canvas)
	painter.Op = draw.Over
	painter.SetColor(style.Color)
	rasterizer.Rasterize(painter)
}

func (r *RasterDrawer) resetFill() {
	width, height := r.Size()
	r.fill.Reset(width, height)
	r.fill.DrawOp = draw.Over
}

func toFixed(p image.Point) fixed.Point26_6 { return fixed.P(p.X, p.Y) }

func capper(c LineCap) raster.Capper {
	switch c {
	case LineCapRound:
		return raster.RoundCapper
	case LineCapSquare:
		return raster.SquareCapper
	default:
		return raster.ButtCapper
	}
}

func joiner(j LineJoin) raster.Joiner {
	if j == LineJoinBevel {
		return raster.BevelJoiner
	}
	return raster.RoundJoiner
}
