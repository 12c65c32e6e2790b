package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	// Read fills an interleaved buffer and returns the number of values
	// written, not frames.
	Read([]float32) (int, error)
}

type source struct {
	dec    oggReader
	sig    audio.Signal
	floats []float32
}

func (s *source) Signal() audio.Signal     { return s.sig }
func (s *source) Encoding() audio.Encoding { return audio.EncodingVorbis }
func (s *source) Close() error             { return nil }

func (s *source) ReadSamples(dst []audio.Sample) (int, error) {
	// oggvorbis only hands out whole frames
	want := len(dst) - len(dst)%s.sig.Channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.floats) < want {
		s.floats = make([]float32, want)
	}
	s.floats = s.floats[:want]

	n, err := s.dec.Read(s.floats)
	for i, v := range s.floats[:n] {
		dst[i] = utils.Float32ToSample(v)
	}

	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Reader, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	channels := dec.Channels()

	return &source{
		dec: dec,
		sig: audio.Signal{
			Rate:     dec.SampleRate(),
			Channels: channels,
			// Length() is in frames and 0 when the stream cannot tell
			Length: dec.Length() * int64(channels),
		},
		floats: make([]float32, audio.BlockSize),
	}
}
