// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strconv"

	"github.com/ik5/soxe/audio"
)

// Input is the chain's source stage. Process ignores its argument and
// returns the next block read from the source, empty at end of stream.
type Input struct {
	src       Source
	blockSize int
	buf       []audio.Sample
	count     int64
}

// NewInput reads from src in blocks of up to blockSize samples; a
// non-positive size selects audio.BlockSize.
func NewInput(src Source, blockSize int) *Input {
	if blockSize <= 0 {
		blockSize = audio.BlockSize
	}

	return &Input{src: src, blockSize: blockSize}
}

func (*Input) Name() string { return "input" }

// Count is the number of samples read so far.
func (i *Input) Count() int64 { return i.count }

func (i *Input) Configure(sig audio.Signal) error {
	if !sig.Valid() {
		return &ConfigError{
			Param:  "signal",
			Value:  fmt.Sprintf("%d Hz, %d channels", sig.Rate, sig.Channels),
			Reason: "rate and channels must be positive",
		}
	}

	// blocks hold whole frames only
	size := i.blockSize - i.blockSize%sig.Channels
	if size == 0 {
		return &ConfigError{
			Param:  "block size",
			Value:  strconv.Itoa(i.blockSize),
			Reason: fmt.Sprintf("smaller than one frame of %d channels", sig.Channels),
		}
	}
	i.buf = make([]audio.Sample, size)

	return nil
}

func (i *Input) Process([]audio.Sample) ([]audio.Sample, error) {
	if i.buf == nil {
		return nil, ErrNotConfigured
	}

	n, err := i.src.Read(i.buf)
	if err != nil {
		return nil, err
	}
	i.count += int64(n)

	return i.buf[:n], nil
}

func (*Input) Flush() ([]audio.Sample, error) { return nil, nil }

func (i *Input) Close() error {
	i.buf = nil
	return nil
}
