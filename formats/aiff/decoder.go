package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Reader
type source struct {
	dec      aiffReader
	sig      audio.Signal
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *source) Signal() audio.Signal     { return s.sig }
func (s *source) Encoding() audio.Encoding { return audio.EncodingSigned }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []audio.Sample) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil {
		s.intBuf = &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: s.sig.Channels, SampleRate: s.sig.Rate},
		}
	}
	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.IntToSample(v, s.bitDepth)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Reader, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if !validBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec: dec,
		sig: audio.Signal{
			Rate:      format.SampleRate,
			Channels:  format.NumChannels,
			Precision: bitDepth,
			Length:    int64(dec.NumSampleFrames) * int64(format.NumChannels),
		},
		bitDepth: bitDepth,
	}, nil
}

func validBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}
