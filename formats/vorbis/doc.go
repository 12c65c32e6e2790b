// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Vorbis decodes to floating point; values are scaled to full-scale
// audio.Sample and clipped at ±1.0.
//
// # Decoding Vorbis Files
//
//	f, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]audio.Sample, audio.BlockSize)
//	n, err := src.ReadSamples(buf)
//
// ReadSamples only returns whole frames, so dst should hold at least one
// sample per channel.
//
// # Stream Properties
//
//   - Encoding: audio.EncodingVorbis
//   - Precision: 0, the codec has no integer sample size
//   - Length: from the last granule position, 0 when it cannot be read
//
// # Limitations
//
// Decoding only. Chained streams with changing channel layouts are not
// supported by the underlying decoder.
package vorbis
