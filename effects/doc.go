// SPDX-License-Identifier: EPL-2.0

// Package effects runs blocks of samples through a fixed pipeline of
// stages.
//
// A Chain always starts with an Input, which pulls whole frames from a
// Source, and ends with an Output, which writes to a Sink. Processing
// effects sit in between and see every block in order:
//
//	in := effects.NewInput(src, audio.BlockSize)
//	out := effects.NewOutput(dst, "out.wav")
//	chain, err := effects.NewChain(sig, in, out, effects.NewSilence(cfg))
//	if err != nil {
//	    // a stage rejected its configuration
//	}
//	defer chain.Close()
//	err = chain.Flow()
//
// When the input is exhausted each processing effect is flushed in order
// and whatever it still held is passed through the stages after it. The
// first error from any stage stops the chain and is returned as a
// *FlowError naming that stage.
//
// # Silence
//
// Silence drops leading and trailing runs of quiet frames that last at
// least SilenceConfig.MinDuration. Silence in the middle of the stream is
// never removed. ParseThreshold and ParseDuration accept the notations
// common to audio tools ("1%", "-40dB", "0.5", "500ms").
package effects
