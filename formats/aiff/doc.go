// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses the github.com/go-audio library to decode AIFF
// (Audio Interchange File Format) files, commonly produced on Apple
// platforms.
//
// # Supported Formats
//
// Currently supported:
//   - PCM 16-bit
//   - Mono, stereo and multi-channel layouts
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]int16, 4096)
//	n := source.WriteSamples(buf)
//
// The decoder returns an audio.SoundSource holding the entire clip in
// memory, so it can be rewound and replayed by a mixer.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - The whole stream is decoded up front
package aiff
