package render

import "image/color"

// GradientRow returns the opaque color of row y in a vertical gradient of the
// given height. Channels are truncated, so row 0 is exactly "from".
func GradientRow(from, to color.RGBA, y, height int) color.RGBA {
	return color.RGBA{
		R: lerpChannel(from.R, to.R, y, height),
		G: lerpChannel(from.G, to.G, y, height),
		B: lerpChannel(from.B, to.B, y, height),
		A: 0xFF,
	}
}

func lerpChannel(from, to uint8, y, height int) uint8 {
	if height <= 0 {
		return from
	}
	delta := float64((int(to) - int(from)) * y)
	return uint8(float64(from) + delta/float64(height))
}
