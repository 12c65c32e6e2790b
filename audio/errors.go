// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat    = errors.New("unknown audio format")
	ErrReadOnlyFormat   = errors.New("audio format cannot be written")
	ErrInvalidSignal    = errors.New("signal must have a positive rate and channel count")
	ErrEncodingRejected = errors.New("encoding rejected for output")
	ErrShortWrite       = errors.New("short write")
	ErrStreamClosed     = errors.New("stream is closed")
	ErrWrongMode        = errors.New("operation not allowed in stream mode")
)
