// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Sample is a full-scale signed PCM sample. Codec values of every bit depth
// are left-justified into 32 bits, so full scale is always ±2^31.
type Sample = int32

// BlockSize is the capacity, in samples, of the blocks moved between a
// stream and the effects chain. It bounds per-call memory while keeping
// codec calls large enough to amortize their overhead.
const BlockSize = 4096

// Signal describes the shape of a PCM stream.
type Signal struct {
	// Rate of the PCM stream in Hz.
	Rate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// Precision is the codec bit depth (8, 16, 24, 32). Zero when the codec
	// does not expose one.
	Precision int
	// Length is the total number of samples across all channels, or 0 when
	// the codec cannot tell.
	Length int64
}

// Valid reports whether the signal can carry audio.
func (s Signal) Valid() bool {
	return s.Rate > 0 && s.Channels > 0
}

// Frames returns Length expressed in frames (samples per channel).
func (s Signal) Frames() int64 {
	if s.Channels <= 0 {
		return 0
	}

	return s.Length / int64(s.Channels)
}

// Reader is the codec side of a read-mode stream.
type Reader interface {
	// Signal reports rate, channels, precision and length.
	Signal() Signal
	// Encoding of the decoded container.
	Encoding() Encoding
	// ReadSamples fills dst with interleaved samples. Returns the number of
	// samples written (not frames). When n == 0 with err == io.EOF, the
	// stream is finished.
	ReadSamples(dst []Sample) (n int, err error)
	// Close releases any codec resources. It does not close the file.
	Close() error
}

// Writer is the codec side of a write-mode stream.
type Writer interface {
	// WriteSamples encodes interleaved samples and returns how many were
	// accepted.
	WriteSamples(src []Sample) (n int, err error)
	// Close finalizes the container (headers, sizes). It does not close the
	// file.
	Close() error
}

// Decoder constructs a Reader from an input.
type Decoder interface {
	Decode(r io.ReadSeeker) (Reader, error)
}

// Encoder constructs a Writer for a signal.
type Encoder interface {
	Encode(w io.WriteSeeker, sig Signal, enc Encoding) (Writer, error)
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3",
// "ogg"). Keys are case-insensitive and may carry a leading dot.
type Registry struct {
	codecs   map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:   make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[formatKey(format)] = d
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[formatKey(format)] = e
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[formatKey(format)]
	return d, ok
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[formatKey(format)]
	return e, ok
}

// FormatOf returns the registry key for a file path: its extension,
// lower-cased and without the dot.
func FormatOf(path string) string {
	return formatKey(filepath.Ext(path))
}

func formatKey(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
