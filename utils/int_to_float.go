package utils

// Int16ToFloat32 converts a 16-bit PCM sample to float32 in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
