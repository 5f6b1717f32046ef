package render

// Shade halves each colour channel and forces full alpha. It darkens faces
// hit on a horizontal grid line.
func Shade(c uint32) uint32 {
	return ((c & 0xFEFEFE) >> 1) | 0xFF000000
}

// ARGB packs channels into an ARGB8888 value.
func ARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels unpacks an ARGB8888 value.
func Channels(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}
