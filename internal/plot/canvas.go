package plot

import "image/color"

// Canvas is a fixed-size render target. Implementations live next to the
// backend they draw with: raylib render textures, image.RGBA, SVG, Braille.
//
// Coordinates are canvas pixels. Implementations must tolerate non-finite or
// far off-canvas coordinates without panicking.
type Canvas interface {
	Size() (width, height int)
	Clear(col color.NRGBA)
	DrawLine(from, to Vec2, thick float64, col color.NRGBA)
	DrawPixel(x, y int, col color.NRGBA)
	DrawText(text string, at Vec2, size float64, col color.NRGBA)
}
