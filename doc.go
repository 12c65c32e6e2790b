// SPDX-License-Identifier: EPL-2.0

// Package soxe is a small streaming audio engine.
//
// An Engine converts audio files between container formats, trims silence
// from both ends of a recording and reports stream properties. Audio moves
// in bounded blocks from an input stream through an effects chain into an
// output stream, so files of any length run in constant memory.
//
// # Lifecycle
//
// An engine is created stopped. Convert and TrimSilence fail with
// ErrNotStarted until Start is called; Info works in any state. Start and
// Stop are idempotent and report StatusAlreadyStarted or
// StatusAlreadyStopped when there is nothing to do.
//
//	e := soxe.New(soxe.WithLogger(logger))
//	e.Start()
//	defer e.Stop()
//
//	if err := e.Convert("in.mp3", "out.wav"); err != nil {
//		return err
//	}
//	if err := e.TrimSilence("out.wav", "trimmed.wav", "0.5", "1%"); err != nil {
//		return err
//	}
//
// # Formats
//
// The format of a file is chosen from its extension, case-insensitively:
//   - WAV (.wav, .wave) read and write, via formats/wav
//   - AIFF (.aif, .aiff, .aifc) read and write, via formats/aiff
//   - MP3 (.mp3) read only, via formats/mp3
//   - Ogg Vorbis (.ogg, .oga) read only, via formats/vorbis
//
// Outputs keep the input's rate, channel count and precision. WithRegistry
// replaces the built-in codec set.
//
// # Errors
//
// Streams that cannot be opened are reported as *OpenError, incomplete
// output as *WriteError and invalid trim parameters as
// *effects.ConfigError. Every operation closes whatever it opened before
// returning.
//
// # Configuration
//
// Load reads engine defaults from YAML:
//
//	block_size: 4096
//	log_level: info
//	log_format: json
//	trim:
//	  mode: both
//	  min_duration: 0.1
//	  threshold: 1%
package soxe
