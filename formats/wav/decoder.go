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

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec      pcmReader
	sig      audio.Signal
	bitDepth int
	intBuf   *goaudio.IntBuffer
}

func (s *source) Signal() audio.Signal { return s.sig }
func (s *source) Close() error         { return nil }

func (s *source) Encoding() audio.Encoding {
	// 8-bit WAV data is unsigned, every other depth is signed
	if s.bitDepth == 8 {
		return audio.EncodingUnsigned
	}
	return audio.EncodingSigned
}

func (s *source) ReadSamples(dst []audio.Sample) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.intBuf.Data) < len(dst) {
		s.intBuf.Data = make([]int, len(dst))
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.bitDepth == 8 {
			v -= 128
		}
		dst[i] = utils.IntToSample(v, s.bitDepth)
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Reader, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if f := dec.WavAudioFormat; f != wavFormatPCM && f != wavFormatExtensible {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedWavFormat, f)
	}

	bitDepth := int(dec.BitDepth)
	if !validBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrUnsupportedWavLayout
	}

	format := dec.Format()

	return &source{
		dec: dec,
		sig: audio.Signal{
			Rate:      format.SampleRate,
			Channels:  format.NumChannels,
			Precision: bitDepth,
			Length:    dec.PCMLen() / int64(bitDepth/8),
		},
		bitDepth: bitDepth,
		intBuf: &goaudio.IntBuffer{
			Data:   make([]int, audio.BlockSize),
			Format: format,
		},
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
