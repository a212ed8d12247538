// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg
// Vorbis files. The decoder converts the library's float32 output to
// interleaved int16 PCM.
//
// # Decoding Ogg Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]int16, 4096)
//	n := source.WriteSamples(buf)
//
// The decoder returns an audio.SoundSource holding the entire decoded
// clip in memory, so it can be rewound and replayed by a mixer.
//
// # Output Format
//
// Vorbis decoder output:
//   - Sample format: interleaved int16 PCM
//   - Channels: As encoded in the file (typically 2)
//   - Sample rate: As encoded in the file
//
// # Limitations
//
// Note:
//   - Vorbis writing is not supported (decoding only)
//   - The whole stream is decoded up front
package vorbis
