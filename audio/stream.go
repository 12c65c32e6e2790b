// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// maxStalls bounds consecutive empty, error-free codec reads before a
// stream gives up instead of spinning.
const maxStalls = 64

// Mode is the direction of a stream.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Stream is an open audio file: the file itself plus the codec reading or
// writing it. A Stream returned without error is fully open; Close
// releases both halves exactly once.
type Stream struct {
	mode  Mode
	path  string
	sig   Signal
	enc   Encoding
	count int64
	eof   bool

	file *os.File
	r    Reader
	w    Writer

	closed bool
}

// OpenRead opens path for reading using the decoder registered for its
// extension.
func OpenRead(path string, reg *Registry) (*Stream, error) {
	format := FormatOf(path)
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	r, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	sig := r.Signal()
	if !sig.Valid() {
		_ = r.Close()
		_ = f.Close()
		return nil, fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidSignal, sig.Rate, sig.Channels)
	}

	return &Stream{
		mode: ModeRead,
		path: path,
		sig:  sig,
		enc:  r.Encoding(),
		file: f,
		r:    r,
	}, nil
}

// OpenWrite creates path for writing with the encoder registered for its
// extension. accept is asked whether enc may be used for the output; a nil
// accept admits everything. A file created here is removed again if the
// codec cannot be set up.
func OpenWrite(path string, sig Signal, enc Encoding, reg *Registry, accept func(Encoding) bool) (*Stream, error) {
	if !sig.Valid() {
		return nil, fmt.Errorf("%w: rate=%d channels=%d", ErrInvalidSignal, sig.Rate, sig.Channels)
	}
	if accept != nil && !accept(enc) {
		return nil, fmt.Errorf("%w: %s", ErrEncodingRejected, enc)
	}

	format := FormatOf(path)
	e, ok := reg.GetEncoder(format)
	if !ok {
		if _, readable := reg.Get(format); readable {
			return nil, fmt.Errorf("%w: %q", ErrReadOnlyFormat, format)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := e.Encode(f, sig, enc)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	out := sig
	out.Length = 0

	return &Stream{
		mode: ModeWrite,
		path: path,
		sig:  out,
		enc:  enc,
		file: f,
		w:    w,
	}, nil
}

func (s *Stream) Mode() Mode         { return s.mode }
func (s *Stream) Path() string       { return s.path }
func (s *Stream) Signal() Signal     { return s.sig }
func (s *Stream) Encoding() Encoding { return s.enc }

// Count returns the samples read so far in read mode, or written so far in
// write mode.
func (s *Stream) Count() int64 { return s.count }

// Read fills dst with whole interleaved frames. It returns 0, nil once the
// stream is exhausted.
func (s *Stream) Read(dst []Sample) (int, error) {
	if s.mode != ModeRead {
		return 0, fmt.Errorf("%w: read on %s stream", ErrWrongMode, s.mode)
	}
	if s.closed {
		return 0, ErrStreamClosed
	}
	if s.eof {
		return 0, nil
	}

	ch := s.sig.Channels
	want := len(dst) - len(dst)%ch
	if want == 0 {
		return 0, ErrInvalidDstSize
	}

	total, stalls := 0, 0
	for total < want {
		n, err := s.r.ReadSamples(dst[total:want])
		total += n
		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", s.path, err)
		}
		if n == 0 {
			stalls++
			if stalls > maxStalls {
				return 0, fmt.Errorf("read %s: %w", s.path, io.ErrNoProgress)
			}
			continue
		}
		if total%ch == 0 {
			break
		}
	}

	// a trailing partial frame can only happen at end of data
	total -= total % ch
	s.count += int64(total)

	return total, nil
}

// Write encodes src. Accepting fewer samples than given is reported as
// ErrShortWrite.
func (s *Stream) Write(src []Sample) (int, error) {
	if s.mode != ModeWrite {
		return 0, fmt.Errorf("%w: write on %s stream", ErrWrongMode, s.mode)
	}
	if s.closed {
		return 0, ErrStreamClosed
	}
	if len(src) == 0 {
		return 0, nil
	}

	n, err := s.w.WriteSamples(src)
	s.count += int64(n)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", s.path, err)
	}
	if n < len(src) {
		return n, fmt.Errorf("write %s: %w: %d of %d samples", s.path, ErrShortWrite, n, len(src))
	}

	return n, nil
}

// Close finalizes the codec and closes the file. Only the first call does
// any work.
func (s *Stream) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	var codecErr error
	if s.r != nil {
		codecErr = s.r.Close()
	}
	if s.w != nil {
		codecErr = s.w.Close()
	}

	return errors.Join(codecErr, s.file.Close())
}
