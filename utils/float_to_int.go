package utils

// Float32ToInt16 converts a float32 sample to 16-bit PCM. Input outside
// [-1, 1] is clamped first. Scaling by 32767 keeps +1.0 inside the int16
// range; the conversion truncates toward zero.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
