// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/utils"
)

const (
	// go-mp3 always decodes to 16-bit little-endian stereo
	outChannels  = 2
	outPrecision = 16
	bytesPerSamp = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec mp3Reader
	sig audio.Signal
	buf []byte

	// a byte left over when the decoder split a sample across reads
	carry    byte
	hasCarry bool
}

func (s *source) Signal() audio.Signal     { return s.sig }
func (s *source) Encoding() audio.Encoding { return audio.EncodingMP3 }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []audio.Sample) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * bytesPerSamp
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	off := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		off = 1
	}

	n, err := s.dec.Read(s.buf[off:])
	n += off

	samples := n / bytesPerSamp
	for i := range samples {
		val := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = utils.IntToSample(int(val), outPrecision)
	}
	if n%bytesPerSamp != 0 {
		s.carry = s.buf[n-1]
		s.hasCarry = true
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			return samples, io.EOF
		}
		return samples, fmt.Errorf("%w", err)
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Reader, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	var length int64
	if l := dec.Length(); l > 0 {
		length = l / bytesPerSamp
	}

	return &source{
		dec: dec,
		sig: audio.Signal{
			Rate:      dec.SampleRate(),
			Channels:  outChannels,
			Precision: outPrecision,
			Length:    length,
		},
		buf: make([]byte, audio.BlockSize*bytesPerSamp),
	}
}
