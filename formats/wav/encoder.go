// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/utils"
)

// defaultBitDepth is used when the signal does not carry a usable
// precision, e.g. when it was decoded from a lossy codec.
const defaultBitDepth = 16

// pcmWriter is an interface for wav.Encoder to allow testing
type pcmWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

type sink struct {
	enc      pcmWriter
	bitDepth int
	channels int
	intBuf   *goaudio.IntBuffer
	wrote    bool
}

func (s *sink) WriteSamples(src []audio.Sample) (int, error) {
	whole := len(src) - len(src)%s.channels
	if whole == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < whole {
		s.intBuf.Data = make([]int, whole)
	}
	s.intBuf.Data = s.intBuf.Data[:whole]

	for i, v := range src[:whole] {
		x := utils.SampleToInt(v, s.bitDepth)
		if s.bitDepth == 8 {
			x += 128
		}
		s.intBuf.Data[i] = x
	}

	if err := s.enc.Write(s.intBuf); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	s.wrote = true

	return whole, nil
}

func (s *sink) Close() error {
	// go-audio only emits the header on the first Write; an empty stream
	// still has to be a valid file
	if !s.wrote {
		s.intBuf.Data = s.intBuf.Data[:0]
		if err := s.enc.Write(s.intBuf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type Encoder struct{}

// Encode writes integer PCM at the signal's precision. Lossy or unknown
// precisions are written as 16-bit.
func (Encoder) Encode(w io.WriteSeeker, sig audio.Signal, enc audio.Encoding) (audio.Writer, error) {
	bitDepth := sig.Precision
	if bitDepth == 0 || enc.Lossy() {
		bitDepth = defaultBitDepth
	}
	if !validBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return &sink{
		enc:      gowav.NewEncoder(w, sig.Rate, bitDepth, sig.Channels, wavFormatPCM),
		bitDepth: bitDepth,
		channels: sig.Channels,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, 0, audio.BlockSize),
			Format:         &goaudio.Format{NumChannels: sig.Channels, SampleRate: sig.Rate},
			SourceBitDepth: bitDepth,
		},
	}, nil
}
