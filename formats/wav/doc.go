// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files.
//
// Decoding and encoding are delegated to github.com/go-audio/wav. Samples
// cross the package boundary as full-scale audio.Sample values, so a 16-bit
// file and a 24-bit file read into the same range.
//
// # Supported Formats
//
//   - Integer PCM (format tag 1, or WAVE_FORMAT_EXTENSIBLE)
//   - 8-bit unsigned, 16/24/32-bit signed
//   - Any channel count and sample rate
//
// IEEE float and compressed WAV variants are rejected with
// ErrUnsupportedWavFormat.
//
// # Decoding
//
//	f, _ := os.Open("in.wav")
//	r, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	buf := make([]audio.Sample, audio.BlockSize)
//	n, err := r.ReadSamples(buf)
//
// # Encoding
//
// The encoder keeps the input precision when it is one WAV can hold and
// falls back to 16 bits for lossy or unknown sources:
//
//	f, _ := os.Create("out.wav")
//	w, err := wav.Encoder{}.Encode(f, sig, audio.EncodingSigned)
//	_, err = w.WriteSamples(samples)
//	err = w.Close() // writes the final RIFF sizes
//
// Close must be called even for an empty stream; it is what makes the
// output a valid file.
package wav
