// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/ik5/soxe/audio"
)

// Output is the chain's sink stage. Every block it processes is written in
// full or the write fails with a *WriteError.
type Output struct {
	sink  Sink
	path  string
	count int64
}

// NewOutput writes to sink; path only labels errors.
func NewOutput(sink Sink, path string) *Output {
	return &Output{sink: sink, path: path}
}

func (*Output) Name() string { return "output" }

// Count is the number of samples written so far.
func (o *Output) Count() int64 { return o.count }

func (*Output) Configure(audio.Signal) error { return nil }

func (o *Output) Process(block []audio.Sample) ([]audio.Sample, error) {
	if len(block) == 0 {
		return nil, nil
	}

	n, err := o.sink.Write(block)
	o.count += int64(n)
	if err != nil {
		return nil, &WriteError{Path: o.path, Err: err}
	}
	if n < len(block) {
		return nil, &WriteError{
			Path: o.path,
			Err:  fmt.Errorf("%w: %d of %d samples", audio.ErrShortWrite, n, len(block)),
		}
	}

	return nil, nil
}

func (*Output) Flush() ([]audio.Sample, error) { return nil, nil }
func (*Output) Close() error                   { return nil }
