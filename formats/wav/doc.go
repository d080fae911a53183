// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading and writing WAV files in PCM 16-bit format.
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit (most common WAV format)
//   - Mono and stereo (multi-channel input is mixed down to mono)
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	samples, rate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder returns mono float32 samples in the range [-1.0, 1.0]
// together with the sample rate declared in the file. Non-seekable
// readers are buffered in memory before parsing.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create WAV files:
//
//	samples := []float32{0.1, -0.1, 0.2, -0.2}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// The function writes a complete mono 16-bit PCM WAV file with proper
// headers. Samples outside [-1, 1] are clamped.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrOnlyPCMSupported: Only PCM encoding is supported
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//
// Example:
//
//	samples, _, err := decoder.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples
//
// The WriteWAV16 function handles all format details automatically, and
// the decoder skips unknown chunks.
package wav
