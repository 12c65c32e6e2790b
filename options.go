// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/effects"
	"github.com/ik5/soxe/internal/observe"
	"github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger operations report to. Defaults to the logrus
// standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegistry replaces the codec registry Start would otherwise build
// with DefaultRegistry.
func WithRegistry(reg *audio.Registry) Option {
	return func(e *Engine) {
		e.reg = reg
	}
}

// WithBlockSize sets the number of samples moved per chain iteration.
func WithBlockSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.blockSize = n
		}
	}
}

// WithMetrics records operations on m instead of observe.DefaultMetrics.
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithTrimDefaults sets the parameters TrimSilence falls back to for
// empty arguments.
func WithTrimDefaults(cfg effects.SilenceConfig) Option {
	return func(e *Engine) {
		e.trim = cfg
	}
}

// WithEncodingFilter restricts the encodings an output may be opened
// with. The default admits every encoding.
func WithEncodingFilter(accept func(audio.Encoding) bool) Option {
	return func(e *Engine) {
		if accept != nil {
			e.accept = accept
		}
	}
}
