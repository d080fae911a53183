// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg and .oga files)
//   - Variable bitrates
//   - Mono, stereo and surround layouts
//   - Various sample rates
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	samples, rate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The decoder reads the whole stream and returns mono float32 samples
// normalized to the range [-1.0, 1.0]. Multi-channel audio is mixed
// down by averaging the channels of each frame.
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - The whole stream is decoded into memory
//
// # Example: Vorbis to WAV Conversion
//
//	oggFile, _ := os.Open("input.ogg")
//	vorbisDecoder := vorbis.Decoder{}
//	samples, rate, _ := vorbisDecoder.Decode(oggFile)
//
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, rate, samples)
package vorbis
