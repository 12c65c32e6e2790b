// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/soxe/audio"

// Effect is one stage of a chain.
//
// Process may return a slice that aliases the effect's own buffer; it is
// only valid until the next call on the same effect. A nil or empty result
// means the effect produced nothing for this block.
type Effect interface {
	// Name identifies the stage in errors and logs.
	Name() string
	// Configure validates parameters against the signal the chain carries.
	Configure(sig audio.Signal) error
	// Process consumes one block of interleaved samples.
	Process(block []audio.Sample) ([]audio.Sample, error)
	// Flush returns whatever the effect still holds at end of stream.
	Flush() ([]audio.Sample, error)
	// Close releases the effect. It does not close any stream.
	Close() error
}

// Source is the read side an Input pulls from. audio.Stream implements it.
type Source interface {
	// Read fills dst with whole frames; 0, nil means end of stream.
	Read(dst []audio.Sample) (int, error)
}

// Sink is the write side an Output pushes to. audio.Stream implements it.
type Sink interface {
	Write(src []audio.Sample) (int, error)
}
