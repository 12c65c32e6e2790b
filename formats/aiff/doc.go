// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding and
// encoding.
//
// This package uses github.com/go-audio/aiff. AIFF is Apple's standard
// uncompressed format: big-endian signed PCM with the sample rate stored as
// an 80-bit float. The codec handles those details; callers only see
// full-scale audio.Sample values.
//
// # Supported Formats
//
//   - Signed PCM at 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// Other sample sizes are rejected with ErrUnsupportedBitDepth. Compressed
// AIFF-C payloads are not decoded.
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]audio.Sample, audio.BlockSize)
//	n, err := src.ReadSamples(buf)
//
// # Encoding AIFF Files
//
// The encoder writes the source precision, or 16 bits when the source is a
// lossy codec:
//
//	w, err := aiff.Encoder{}.Encode(f, sig, enc)
//	_, err = w.WriteSamples(samples)
//	err = w.Close()
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: sample size is not 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: the COMM chunk could not be interpreted
package aiff
