// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces 16-bit stereo, so every decoded stream reports two
// channels and a precision of 16 regardless of the channel mode in the
// file. Mono files come out with both channels identical.
//
// # Decoding MP3 Files
//
//	f, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]audio.Sample, audio.BlockSize)
//	n, err := src.ReadSamples(buf)
//
// The decoder reports audio.EncodingMP3. Signal().Length is derived from the
// decoded size, which go-mp3 computes by scanning all frames up front when
// the input is seekable.
//
// # Limitations
//
//   - Decoding only; MP3 output is not supported
//   - MPEG-1 and MPEG-2 Layer III only
package mp3
