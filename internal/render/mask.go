package render

import (
	"image"
	"image/draw"

	"github.com/testshot/iconmaker/internal/render/layout"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so that a quarter curve approximates a
// circular arc.
const kappa = 0.5522847498

// RoundedMask returns an alpha mask covering bounds with a rounded rectangle
// of the given corner radius. Outside the rounding the mask is zero.
func RoundedMask(bounds image.Rectangle, radius float32) *image.Alpha {
	mask := image.NewAlpha(bounds)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	addRoundedRect(z, bounds.Sub(bounds.Min), radius)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// ApplyAlpha sets every pixel's alpha in dst to the mask value. Colors are
// scaled accordingly since dst is premultiplied; dst is expected to be opaque.
func ApplyAlpha(dst *image.RGBA, mask *image.Alpha) {
	src := image.NewRGBA(dst.Bounds())
	copy(src.Pix, dst.Pix)
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, mask.Bounds().Min, draw.Src)
}

// addRoundedRect appends a closed rounded-rectangle path to z. The radius is
// clamped to half the shorter side.
func addRoundedRect(z *vector.Rasterizer, rect image.Rectangle, radius float32) {
	rect = layout.Normalize(rect)
	x0, y0 := float32(rect.Min.X), float32(rect.Min.Y)
	x1, y1 := float32(rect.Max.X), float32(rect.Max.Y)
	radius = min(radius, (x1-x0)/2, (y1-y0)/2)
	if radius <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		return
	}
	k := radius * kappa
	z.MoveTo(x0+radius, y0)
	z.LineTo(x1-radius, y0)
	z.CubeTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	z.LineTo(x1, y1-radius)
	z.CubeTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	z.LineTo(x0+radius, y1)
	z.CubeTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	z.LineTo(x0, y0+radius)
	z.CubeTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	z.ClosePath()
}
