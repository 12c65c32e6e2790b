// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample model, codec interfaces and file
// streams that the rest of the module is built on.
//
// # Samples
//
// A Sample is a signed 32-bit value. Codecs left-justify their native
// values, so full scale is ±2^31 whatever the file's bit depth:
//
//	16-bit  0x4000      -> Sample 0x40000000
//	24-bit  0x400000    -> Sample 0x40000000
//	float   0.5         -> Sample 0x40000000
//
// Blocks of samples are interleaved: for stereo, L R L R ...
//
// # Codecs
//
// A Decoder turns an io.ReadSeeker into a Reader; an Encoder turns an
// io.WriteSeeker into a Writer. Neither closes the underlying file.
// Encoding reports how the container stores samples (signed PCM, MP3,
// Vorbis and so on) as both a name and a stable numeric id.
//
// # Registry
//
// The Registry maps file extensions to codecs:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.RegisterEncoder("wav", wav.Encoder{})
//	dec, ok := reg.Get(audio.FormatOf("take1.WAV"))
//
// Keys are case-insensitive and a leading dot is ignored. A format with a
// decoder but no encoder is read-only.
//
// # Streams
//
// A Stream pairs an open file with its codec. OpenRead and OpenWrite either
// return a fully open stream or release everything they acquired:
//
//	in, err := audio.OpenRead("in.wav", reg)
//	out, err := audio.OpenWrite("out.wav", in.Signal(), in.Encoding(), reg, audio.AcceptAll)
//
// Read only ever returns whole frames and reports the end of data as
// (0, nil). Write reports a codec that accepts fewer samples than offered
// as ErrShortWrite. Close is safe to call more than once.
package audio
