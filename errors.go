// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"errors"
	"fmt"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/effects"
)

var (
	// ErrNotStarted is returned by operations that need a started engine.
	ErrNotStarted = errors.New("engine not started")

	// ErrSameFile is returned when input and output name the same file.
	ErrSameFile = errors.New("input and output are the same file")
)

// OpenError reports a stream that could not be opened.
type OpenError struct {
	Path string
	Mode audio.Mode
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s for %s: %v", e.Path, e.Mode, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports output that could not be written completely.
type WriteError = effects.WriteError
