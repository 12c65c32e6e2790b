package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/soxe/audio"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int     // in bytes
	length       int64
	maxRead      int // caps bytes per Read when > 0
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }
func (m *mockMP3Reader) Length() int64   { return m.length }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	raw := make([]byte, len(m.samples)*2)
	for i, s := range m.samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}

	if m.offset >= len(raw) {
		return 0, io.EOF
	}

	want := len(buf)
	if m.maxRead > 0 {
		want = min(want, m.maxRead)
	}
	n := copy(buf[:want], raw[m.offset:])
	m.offset += n

	if m.offset >= len(raw) {
		return n, io.EOF
	}
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not MP3 data")))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		length     int64
		wantLength int64
	}{
		{"known length", 4000, 2000},
		{"unknown length", -1, 0},
		{"zero length", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockMP3Reader{sampleRate: 44100, length: tt.length})

			sig := src.Signal()
			if sig.Rate != 44100 {
				t.Errorf("Rate = %d, want 44100", sig.Rate)
			}
			if sig.Channels != 2 {
				t.Errorf("Channels = %d, want 2", sig.Channels)
			}
			if sig.Precision != 16 {
				t.Errorf("Precision = %d, want 16", sig.Precision)
			}
			if sig.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", sig.Length, tt.wantLength)
			}
			if src.Encoding() != audio.EncodingMP3 {
				t.Errorf("Encoding() = %v, want %v", src.Encoding(), audio.EncodingMP3)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := newSource(&mockMP3Reader{sampleRate: 8000, samples: testSamples})

	dst := make([]audio.Sample, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	for i, v := range testSamples {
		want := audio.Sample(v) << 16
		if dst[i] != want {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: make([]int16, 100)})

	n, err := src.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples() error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: []int16{100, 200}})
	dst := make([]audio.Sample, 10)

	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("first ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 2 {
		t.Errorf("first ReadSamples() n = %d, want 2", n)
	}

	n, err = src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("second ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("second ReadSamples() n = %d, want 0", n)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, returnErrors: true})

	_, err := src.ReadSamples(make([]audio.Sample, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_ReadSamples_SplitSample(t *testing.T) {
	t.Parallel()

	testSamples := []int16{1000, -2000, 3000, -4000, 5000}
	// 3-byte reads split every other sample across two calls
	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: testSamples, maxRead: 3})

	var got []audio.Sample
	dst := make([]audio.Sample, 4)
	for range 20 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(testSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(testSamples))
	}
	for i, v := range testSamples {
		if got[i] != audio.Sample(v)<<16 {
			t.Errorf("sample %d = %d, want %d", i, got[i], audio.Sample(v)<<16)
		}
	}
}

func TestSource_ReadSamples_SmallReads(t *testing.T) {
	t.Parallel()

	totalSamples := 1000
	samples := make([]int16, totalSamples)
	for i := range samples {
		samples[i] = int16(i)
	}

	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: samples})
	dst := make([]audio.Sample, 10)
	totalRead := 0

	for {
		n, err := src.ReadSamples(dst)
		totalRead += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if totalRead != totalSamples {
		t.Errorf("total read = %d, want %d", totalRead, totalSamples)
	}
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: make([]int16, 20000)})
	initialCap := cap(src.buf)

	if _, err := src.ReadSamples(make([]audio.Sample, 10000)); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if cap(src.buf) <= initialCap {
		t.Errorf("buffer capacity = %d, want > %d", cap(src.buf), initialCap)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100})
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mock := &mockMP3Reader{sampleRate: 44100, samples: samples}
	src := newSource(mock)
	dst := make([]audio.Sample, audio.BlockSize)

	for b.Loop() {
		mock.offset = 0
		for {
			_, err := src.ReadSamples(dst)
			if err != nil {
				break
			}
		}
	}
}
