package icon

import "image"

// Corner radius of the rounded-square background.
const BackgroundRadius = 180

// Clipboard body.
var BodyRect = image.Rect(256, 192, 768, 832)

const (
	BodyRadius   = 40
	OutlineWidth = 8
)

// Clip at the top of the board: a trapezoid with a rounded highlight on it.
var (
	ClipPolygon = []image.Point{
		{362, 192}, {362, 160}, {394, 128}, {630, 128}, {662, 160}, {662, 192},
	}
	HighlightRect = image.Rect(394, 128, 630, 176)
)

const HighlightRadius = 24

// Checkmark vertices, short stroke first.
var CheckPoints = []image.Point{{340, 500}, {440, 620}, {700, 340}}

// ShadowOffset moves the shadow pass down and to the right of the checkmark.
var ShadowOffset = image.Pt(5, 5)

const CheckWidth = 80
