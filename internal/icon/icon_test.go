package icon

import (
	"fmt"
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/testshot/iconmaker/internal/render"
)

// recorder is a Drawer that only notes which primitives were called.
type recorder struct{ calls []string }

func (r *recorder) Size() (int, int) { return render.CanvasSize, render.CanvasSize }
func (r *recorder) FillVerticalGradient(from, to color.RGBA) {
	r.calls = append(r.calls, fmt.Sprintf("gradient %v %v", from, to))
}
func (r *recorder) ApplyRoundedMask(radius float32) {
	r.calls = append(r.calls, fmt.Sprintf("mask %.0f", radius))
}
func (r *recorder) FillRoundedRect(rect image.Rectangle, radius float32, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("rrect %v %.0f %v", rect, radius, c))
}
func (r *recorder) FillPolygon(points []image.Point, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("polygon %v %v", points, c))
}
func (r *recorder) StrokePolyline(points []image.Point, style render.StrokeStyle) {
	r.calls = append(r.calls, fmt.Sprintf("stroke %v %v %d", points, style.Color, style.Width))
}

func TestLayersPaintOrder(t *testing.T) {
	rec := &recorder{}
	for _, layer := range Layers() {
		layer.Draw(rec)
	}
	want := []string{
		"gradient {59 130 246 255} {30 64 175 255}",
		"mask 180",
		"rrect (256,192)-(768,832) 40 {148 163 184 255}",
		"rrect (264,200)-(760,824) 32 {226 232 240 255}",
		"polygon [(362,192) (362,160) (394,128) (630,128) (662,160) (662,192)] {100 116 139 255}",
		"rrect (394,128)-(630,176) 24 {71 85 105 255}",
		"stroke [(345,505) (445,625) (705,345)] {22 163 74 200} 80",
		"stroke [(340,500) (440,620) (700,340)] {34 197 94 255} 80",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls:\n%q\nwant:\n%q", rec.calls, want)
	}
}

func TestRenderDimensions(t *testing.T) {
	img := NewRenderer().Render()
	if got := img.Bounds(); got != image.Rect(0, 0, 1024, 1024) {
		t.Fatalf("bounds = %v, want 1024x1024", got)
	}
}

func TestRenderPixels(t *testing.T) {
	img := NewRenderer().Render()

	tests := []struct {
		name string
		at   image.Point
		want color.RGBA
	}{
		{"top left corner", image.Pt(0, 0), color.RGBA{}},
		{"top right corner", image.Pt(1023, 0), color.RGBA{}},
		{"bottom left corner", image.Pt(0, 1023), color.RGBA{}},
		{"bottom right corner", image.Pt(1023, 1023), color.RGBA{}},
		{"gradient top", image.Pt(512, 0), color.RGBA{R: 59, G: 130, B: 246, A: 255}},
		{"gradient beside board", image.Pt(100, 512), render.GradientRow(render.GradientStart, render.GradientEnd, 512, 1024)},
		{"board face", image.Pt(300, 700), render.BodyFill},
		{"board outline", image.Pt(260, 500), render.BodyOutline},
		{"clip", image.Pt(380, 180), render.ClipFill},
		{"clip highlight", image.Pt(512, 150), render.ClipHighlight},
		{"checkmark", image.Pt(570, 480), render.Check},
		{"checkmark joint", image.Pt(440, 610), render.Check},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestRenderShadowVisible(t *testing.T) {
	img := NewRenderer().Render()
	// Just past the lower-right edge of the long stroke: outside the main
	// pass, inside the offset shadow, over the board face.
	got := img.RGBAAt(601, 509)
	if got == render.BodyFill || got == render.Check {
		t.Fatalf("pixel (601,509) = %v, expected shadow", got)
	}
	if got.A != 0xFF {
		t.Errorf("shadow pixel alpha = %d, want 255", got.A)
	}
	if got.G <= got.R || got.G <= got.B {
		t.Errorf("shadow pixel %v is not green dominant", got)
	}
}

func TestRenderInteriorOpaque(t *testing.T) {
	img := NewRenderer().Render()
	// Everything farther than the corner rounding reaches is fully opaque.
	inner := image.Rect(60, 60, 964, 964)
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			if a := img.RGBAAt(x, y).A; a != 0xFF {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
	for x := 0; x < 1024; x++ {
		if a := img.RGBAAt(x, 512).A; a != 0xFF {
			t.Fatalf("pixel (%d,512) alpha = %d, want 255", x, a)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := NewRenderer().Render()
	b := NewRenderer().Render()
	if !reflect.DeepEqual(a.Pix, b.Pix) {
		t.Error("two renders differ")
	}
}

func TestLayerName(t *testing.T) {
	if got := layerName(Checkmark{}); got != "icon.Checkmark" {
		t.Errorf("layerName = %q", got)
	}
}
