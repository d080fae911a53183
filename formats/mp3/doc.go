// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// It provides a simple interface for reading MP3 audio as mono float32
// samples.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Any sample rate the codec allows
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	samples, rate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder drains the whole stream and returns samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// go-mp3 always emits 16-bit little-endian stereo PCM regardless of the
// source channel layout, so this package mixes the two channels down and
// returns mono samples. The sample rate depends on the MP3 file
// (typically 44.1kHz or 48kHz).
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - The whole stream is decoded into memory
package mp3
