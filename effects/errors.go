// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"errors"
	"fmt"
)

var (
	// ErrChainUsed is returned by Flow on a chain that already ran.
	ErrChainUsed = errors.New("effects chain already used")

	// ErrNotConfigured is returned when an effect processes samples
	// before Configure succeeded.
	ErrNotConfigured = errors.New("effect not configured")
)

// ConfigError reports an effect parameter that cannot be used.
type ConfigError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// WriteError reports a sink that failed or accepted fewer samples than it
// was given.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FlowError wraps the failure of one chain stage. Its message is the
// stage's diagnostic.
type FlowError struct {
	Stage string
	Err   error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *FlowError) Unwrap() error { return e.Err }
