package render

// fillGray writes one opaque grayscale RGBA pixel for an intensity in
// [0, 1].
func fillGray(dst []byte, intensity float32) {
	v := grayByte(intensity)
	dst[0] = v
	dst[1] = v
	dst[2] = v
	dst[3] = 0xff
}

// grayByte quantizes an intensity to an 8-bit channel value.
func grayByte(intensity float32) byte {
	if intensity <= 0 {
		return 0
	}
	if intensity >= 1 {
		return 0xff
	}
	return byte(intensity*255 + 0.5)
}
