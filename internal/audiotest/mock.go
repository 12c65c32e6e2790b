// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic streams and resource-tracking codecs
// for tests.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/utils"
)

// Format is the registry key under which Registry installs a Codec.
const Format = "mock"

// ErrInjected is returned by writers configured to fail.
var ErrInjected = errors.New("injected write failure")

// MockReader is a test helper that generates audio data. It implements
// audio.Reader.
type MockReader struct {
	sig       audio.Signal
	enc       audio.Encoding
	frames    int // total frames to generate
	generated int // frames generated so far
	waveform  func(frame int, channel int) float32

	Closes int
}

// NewMockReader creates a new mock reader producing frames frames.
// waveform generates sample values in [-1,1] given frame index and channel.
func NewMockReader(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockReader {
	return &MockReader{
		sig: audio.Signal{
			Rate:      sampleRate,
			Channels:  channels,
			Precision: 32,
			Length:    int64(frames) * int64(channels),
		},
		enc:      audio.EncodingSigned,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentReader creates a mock reader that generates silence (all zeros).
func NewSilentReader(sampleRate, channels, frames int) *MockReader {
	return NewMockReader(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineReader creates a mock reader that generates a sine wave of the
// given amplitude.
func NewSineReader(sampleRate, channels, frames int, frequency, amplitude float64) *MockReader {
	return NewMockReader(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(amplitude * math.Sin(2*math.Pi*frequency*t))
	})
}

// Segment is one piece of a piecewise-constant test signal.
type Segment struct {
	Seconds   float64
	Amplitude float32
}

// NewSegmentReader concatenates constant-amplitude segments, alternating
// the sign every frame so the signal has no DC offset.
func NewSegmentReader(sampleRate, channels int, segments ...Segment) *MockReader {
	bounds := make([]int, len(segments))
	total := 0
	for i, seg := range segments {
		total += int(math.Round(seg.Seconds * float64(sampleRate)))
		bounds[i] = total
	}

	return NewMockReader(sampleRate, channels, total, func(frame int, _ int) float32 {
		for i, end := range bounds {
			if frame < end {
				if frame%2 == 1 {
					return -segments[i].Amplitude
				}
				return segments[i].Amplitude
			}
		}
		return 0
	})
}

func (m *MockReader) Signal() audio.Signal     { return m.sig }
func (m *MockReader) Encoding() audio.Encoding { return m.enc }

func (m *MockReader) Close() error {
	m.Closes++
	return nil
}

// Reset rewinds the generator.
func (m *MockReader) Reset() {
	m.generated = 0
}

func (m *MockReader) ReadSamples(dst []audio.Sample) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	ch := m.sig.Channels
	framesToWrite := min(len(dst)/ch, m.frames-m.generated)
	for frame := range framesToWrite {
		for c := range ch {
			dst[frame*ch+c] = utils.Float32ToSample(m.waveform(m.generated+frame, c))
		}
	}
	m.generated += framesToWrite

	return framesToWrite * ch, nil
}

// MockWriter records every sample written to it. It implements audio.Writer.
type MockWriter struct {
	Sig     audio.Signal
	Samples []audio.Sample
	Writes  int
	Closes  int

	failAt int
	short  bool
}

func (w *MockWriter) WriteSamples(src []audio.Sample) (int, error) {
	w.Writes++
	if w.failAt > 0 && w.Writes >= w.failAt {
		if w.short {
			half := len(src) / 2
			w.Samples = append(w.Samples, src[:half]...)
			return half, nil
		}
		return 0, ErrInjected
	}

	w.Samples = append(w.Samples, src...)
	return len(src), nil
}

func (w *MockWriter) Close() error {
	w.Closes++
	return nil
}

// Codec is a decoder/encoder pair that ignores file contents and keeps
// every reader and writer it hands out, so tests can check that each one
// was closed.
type Codec struct {
	// NewReader builds the reader returned by each Decode call.
	NewReader func() *MockReader
	// FailAt makes the n-th write of every writer fail (0 disables).
	FailAt int
	// ShortWrite turns the failing write into a short write.
	ShortWrite bool
	// DecodeErr, when set, is returned by Decode.
	DecodeErr error

	Readers []*MockReader
	Writers []*MockWriter
}

func (c *Codec) Decode(io.ReadSeeker) (audio.Reader, error) {
	if c.DecodeErr != nil {
		return nil, c.DecodeErr
	}

	r := c.NewReader()
	c.Readers = append(c.Readers, r)
	return r, nil
}

func (c *Codec) Encode(_ io.WriteSeeker, sig audio.Signal, _ audio.Encoding) (audio.Writer, error) {
	w := &MockWriter{Sig: sig, failAt: c.FailAt, short: c.ShortWrite}
	c.Writers = append(c.Writers, w)
	return w, nil
}

// Closed reports whether every reader and writer handed out was closed
// exactly once.
func (c *Codec) Closed() bool {
	for _, r := range c.Readers {
		if r.Closes != 1 {
			return false
		}
	}
	for _, w := range c.Writers {
		if w.Closes != 1 {
			return false
		}
	}
	return true
}

// Registry returns a registry with c installed for the Format extension.
func Registry(c *Codec) *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(Format, c)
	reg.RegisterEncoder(Format, c)
	return reg
}
