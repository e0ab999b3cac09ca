package lighting

// Color is a linear RGB color with float components (0.0 to 1.0).
type Color struct {
	R, G, B float32
}

// Common colors.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Hex creates a color from a 0xRRGGBB value.
func Hex(v uint32) Color {
	return Color{
		R: float32(v>>16&0xff) / 255.0,
		G: float32(v>>8&0xff) / 255.0,
		B: float32(v&0xff) / 255.0,
	}
}

// Scale returns the color multiplied by a factor.
func (c Color) Scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// IsBlack reports whether every component is zero.
func (c Color) IsBlack() bool {
	return c == Black
}

// Array returns the color as a float triple for uniform upload.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}
