// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/effects"
	"github.com/ik5/soxe/internal/observe"
	"github.com/sirupsen/logrus"
)

// Engine runs audio operations. It is created stopped; Convert and
// TrimSilence need Start first, Info works in any state.
//
// Calls are synchronous. An Engine may be shared between goroutines, but
// each operation owns its streams and chain exclusively.
type Engine struct {
	mu      sync.Mutex
	started bool

	log       logrus.FieldLogger
	reg       *audio.Registry
	blockSize int
	metrics   *observe.Metrics
	trim      effects.SilenceConfig
	accept    func(audio.Encoding) bool
}

// New returns a stopped engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:       logrus.StandardLogger(),
		blockSize: audio.BlockSize,
		trim:      effects.DefaultSilenceConfig,
		accept:    audio.AcceptAll,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}

	return e
}

// Start moves the engine to the started state, resolving the codec
// registry on first use.
func (e *Engine) Start() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		e.log.WithFields(logrus.Fields{
			"function": "Start",
		}).Debug("Engine already started")
		return StatusAlreadyStarted
	}

	if e.reg == nil {
		e.reg = DefaultRegistry()
	}
	e.started = true

	e.log.WithFields(logrus.Fields{
		"function":   "Start",
		"block_size": e.blockSize,
	}).Info("Engine started")

	return StatusOK
}

// Stop moves the engine to the stopped state.
func (e *Engine) Stop() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		e.log.WithFields(logrus.Fields{
			"function": "Stop",
		}).Debug("Engine already stopped")
		return StatusAlreadyStopped
	}
	e.started = false

	e.log.WithFields(logrus.Fields{
		"function": "Stop",
	}).Info("Engine stopped")

	return StatusOK
}

// Started reports whether the engine is started.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.started
}

// snapshot returns the state and registry an operation works with.
func (e *Engine) snapshot() (bool, *audio.Registry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.reg == nil {
		e.reg = DefaultRegistry()
	}
	return e.started, e.reg
}

// Convert copies inputPath into outputPath. The output format follows the
// output's extension; its rate, channels and precision follow the input.
func (e *Engine) Convert(inputPath, outputPath string) error {
	err := e.transform("convert", inputPath, outputPath)

	// a failed write surfaces as the write error itself
	var writeErr *WriteError
	if errors.As(err, &writeErr) {
		return writeErr
	}
	return err
}

// TrimSilence removes leading and trailing silence from inputPath into
// outputPath. minDuration and threshold use the notations accepted by
// effects.ParseDuration and effects.ParseThreshold; an empty string keeps
// the engine's default.
func (e *Engine) TrimSilence(inputPath, outputPath, minDuration, threshold string) error {
	if !e.Started() {
		e.log.WithFields(logrus.Fields{
			"function": "TrimSilence",
			"input":    inputPath,
			"output":   outputPath,
		}).Warn("Engine not started")
		e.metrics.RecordOperation(context.Background(), "trim", observe.StatusError, 0)
		return ErrNotStarted
	}

	cfg := e.trim
	cfg.Mode = effects.TrimBoth

	var err error
	if minDuration != "" {
		if cfg.MinDuration, err = effects.ParseDuration(minDuration); err != nil {
			return e.rejectTrim(inputPath, outputPath, err)
		}
	}
	if threshold != "" {
		if cfg.Threshold, err = effects.ParseThreshold(threshold); err != nil {
			return e.rejectTrim(inputPath, outputPath, err)
		}
	}

	return e.Trim(inputPath, outputPath, cfg)
}

func (e *Engine) rejectTrim(inputPath, outputPath string, err error) error {
	e.log.WithFields(logrus.Fields{
		"function": "TrimSilence",
		"input":    inputPath,
		"output":   outputPath,
		"error":    err.Error(),
	}).Warn("Invalid trim parameters")
	e.metrics.RecordOperation(context.Background(), "trim", observe.StatusError, 0)

	return err
}

// Trim runs inputPath through a silence trimmer configured with cfg.
func (e *Engine) Trim(inputPath, outputPath string, cfg effects.SilenceConfig) error {
	if err := cfg.Validate(); err != nil {
		return e.rejectTrim(inputPath, outputPath, err)
	}

	return e.transform("trim", inputPath, outputPath, effects.NewSilence(cfg))
}

// transform streams inputPath through stages into outputPath. Both streams
// are closed on every path before it returns.
func (e *Engine) transform(op, inputPath, outputPath string, stages ...effects.Effect) (err error) {
	ctx := context.Background()
	log := e.log.WithFields(logrus.Fields{
		"function": op,
		"input":    inputPath,
		"output":   outputPath,
	})

	started, reg := e.snapshot()
	if !started {
		log.Warn("Engine not started")
		e.metrics.RecordOperation(ctx, op, observe.StatusError, 0)
		return ErrNotStarted
	}

	log.Debug("Operation starting")
	begin := time.Now()
	defer func() {
		status := observe.StatusOK
		if err != nil {
			status = observe.StatusError
			log.WithField("error", err.Error()).Warn("Operation failed")
		}
		e.metrics.RecordOperation(ctx, op, status, time.Since(begin))
	}()

	if samePath(inputPath, outputPath) {
		return &OpenError{Path: outputPath, Mode: audio.ModeWrite, Err: ErrSameFile}
	}

	in, err := audio.OpenRead(inputPath, reg)
	if err != nil {
		return &OpenError{Path: inputPath, Mode: audio.ModeRead, Err: err}
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			log.WithField("error", cerr.Error()).Warn("Closing input failed")
		}
	}()

	out, err := audio.OpenWrite(outputPath, in.Signal(), in.Encoding(), reg, e.accept)
	if err != nil {
		return &OpenError{Path: outputPath, Mode: audio.ModeWrite, Err: err}
	}
	defer func() {
		// closing finalizes the container, so it can still fail the write
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: outputPath, Err: cerr}
		}
	}()

	chain, err := effects.NewChain(in.Signal(), effects.NewInput(in, e.blockSize), effects.NewOutput(out, outputPath), stages...)
	if err != nil {
		return err
	}
	defer chain.Close()

	err = chain.Flow()

	stats := chain.Stats()
	e.metrics.RecordSamples(ctx, op, observe.DirectionIn, stats.Read)
	e.metrics.RecordSamples(ctx, op, observe.DirectionOut, stats.Written)

	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"samples_in":  stats.Read,
		"samples_out": stats.Written,
	}
	for _, s := range stages {
		if t, ok := s.(*effects.Silence); ok {
			fields["trimmed_leading"], fields["trimmed_trailing"] = t.Trimmed()
		}
	}
	log.WithFields(fields).Info("Operation complete")

	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
