// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"

	"github.com/ik5/soxe/audio"
)

// Stats counts samples moved by a chain.
type Stats struct {
	Read    int64
	Written int64
}

// Chain pulls blocks from an Input, threads them through its processing
// effects in order and pushes the result into an Output. A chain runs once.
type Chain struct {
	sig    audio.Signal
	in     *Input
	out    *Output
	stages []Effect

	used   bool
	closed bool
}

// NewChain configures in, every stage and out with sig. A configuration
// failure is returned as a *FlowError naming the stage, and every effect
// is closed.
func NewChain(sig audio.Signal, in *Input, out *Output, stages ...Effect) (*Chain, error) {
	c := &Chain{
		sig:    sig,
		in:     in,
		out:    out,
		stages: stages,
	}

	for _, e := range c.all() {
		if err := e.Configure(sig); err != nil {
			_ = c.Close()
			return nil, &FlowError{Stage: e.Name(), Err: err}
		}
	}

	return c, nil
}

func (c *Chain) all() []Effect {
	all := make([]Effect, 0, len(c.stages)+2)
	all = append(all, c.in)
	all = append(all, c.stages...)
	return append(all, c.out)
}

// Signal is the signal every stage was configured with.
func (c *Chain) Signal() audio.Signal { return c.sig }

// Flow runs the chain until the input is exhausted, then flushes the
// processing effects in order. The first failure stops the chain without
// flushing.
func (c *Chain) Flow() error {
	if c.used {
		return ErrChainUsed
	}
	c.used = true

	for {
		block, err := c.in.Process(nil)
		if err != nil {
			return &FlowError{Stage: c.in.Name(), Err: err}
		}
		if len(block) == 0 {
			break
		}

		if err := c.push(0, block); err != nil {
			return err
		}
	}

	for i, e := range c.stages {
		block, err := e.Flush()
		if err != nil {
			return &FlowError{Stage: e.Name(), Err: err}
		}
		if err := c.push(i+1, block); err != nil {
			return err
		}
	}

	return nil
}

// push feeds block through stages[from:] and then the output.
func (c *Chain) push(from int, block []audio.Sample) error {
	for _, e := range c.stages[from:] {
		if len(block) == 0 {
			return nil
		}

		out, err := e.Process(block)
		if err != nil {
			return &FlowError{Stage: e.Name(), Err: err}
		}
		block = out
	}

	if _, err := c.out.Process(block); err != nil {
		return &FlowError{Stage: c.out.Name(), Err: err}
	}
	return nil
}

// Stats reports samples read from the input and written to the output.
func (c *Chain) Stats() Stats {
	return Stats{Read: c.in.Count(), Written: c.out.Count()}
}

// Close closes every effect once, joining their errors.
func (c *Chain) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, e := range c.all() {
		if err := e.Close(); err != nil {
			errs = append(errs, &FlowError{Stage: e.Name(), Err: err})
		}
	}

	return errors.Join(errs...)
}
