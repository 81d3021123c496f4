package icon

import (
	"github.com/testshot/iconmaker/internal/render"
	"github.com/testshot/iconmaker/internal/render/layout"
)

// Background is the gradient square with rounded corners.
type Background struct{}

func (Background) Draw(d render.Drawer) {
	d.FillVerticalGradient(render.GradientStart, render.GradientEnd)
	d.ApplyRoundedMask(BackgroundRadius)
}

// Clipboard is the board, its outline and the clip on top.
type Clipboard struct{}

func (Clipboard) Draw(d render.Drawer) {
	// The outline is drawn inward: outer shape in the outline color, then
	// the inset face on top.
	d.FillRoundedRect(BodyRect, BodyRadius, render.BodyOutline)
	d.FillRoundedRect(layout.Inset(BodyRect, OutlineWidth), layout.InsetRadius(BodyRadius, OutlineWidth), render.BodyFill)

	d.FillPolygon(ClipPolygon, render.ClipFill)
	d.FillRoundedRect(HighlightRect, HighlightRadius, render.ClipHighlight)
}

// Checkmark is the green tick with a soft shadow under it.
type Checkmark struct{}

func (Checkmark) Draw(d render.Drawer) {
	d.StrokePolyline(layout.Offset(CheckPoints, ShadowOffset), render.StrokeStyle{
		Color: render.ShadowCheck,
		Width: CheckWidth,
		Cap:   render.LineCapButt,
		Join:  render.LineJoinRound,
	})
	d.StrokePolyline(CheckPoints, render.StrokeStyle{
		Color: render.Check,
		Width: CheckWidth,
		Cap:   render.LineCapButt,
		Join:  render.LineJoinRound,
	})
}
