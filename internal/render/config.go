package render

import "image/color"

// Global render configuration for colors and the canvas.
var (
	// Background gradient, top row to bottom row.
	GradientStart = color.RGBA{R: 59, G: 130, B: 246, A: 0xFF} // #3b82f6
	GradientEnd   = color.RGBA{R: 30, G: 64, B: 175, A: 0xFF}  // #1e40af

	// Clipboard.
	BodyFill      = color.RGBA{R: 226, G: 232, B: 240, A: 0xFF} // #e2e8f0
	BodyOutline   = color.RGBA{R: 148, G: 163, B: 184, A: 0xFF} // #94a3b8
	ClipFill      = color.RGBA{R: 100, G: 116, B: 139, A: 0xFF} // #64748b
	ClipHighlight = color.RGBA{R: 71, G: 85, B: 105, A: 0xFF}   // #475569

	// Checkmark. ShadowCheck is non-premultiplied; alpha 200 of 255.
	ShadowCheck = color.NRGBA{R: 22, G: 163, B: 74, A: 200} // #16a34a
	Check       = color.RGBA{R: 34, G: 197, B: 94, A: 0xFF}  // #22c55e
)

// CanvasSize is the side length of the square output image.
const CanvasSize = 1024
