// SPDX-License-Identifier: EPL-2.0

package soxe

import (
	"context"
	"time"

	"github.com/ik5/soxe/audio"
	"github.com/ik5/soxe/internal/observe"
	"github.com/sirupsen/logrus"
)

// Info describes an audio file.
type Info struct {
	Path         string
	SampleRate   int
	Channels     int
	Precision    int
	EncodingName string
	EncodingID   int
	// Samples is the total across all channels, 0 when the codec cannot
	// tell.
	Samples int64
	// Duration is in whole seconds, truncated.
	Duration int64
}

// Info opens path read-only and reports its stream properties. It does not
// require a started engine.
func (e *Engine) Info(path string) (info *Info, err error) {
	ctx := context.Background()
	log := e.log.WithFields(logrus.Fields{
		"function": "Info",
		"input":    path,
	})
	log.Debug("Reading stream info")

	begin := time.Now()
	defer func() {
		status := observe.StatusOK
		if err != nil {
			status = observe.StatusError
			log.WithField("error", err.Error()).Warn("Reading stream info failed")
		}
		e.metrics.RecordOperation(ctx, "info", status, time.Since(begin))
	}()

	_, reg := e.snapshot()
	s, err := audio.OpenRead(path, reg)
	if err != nil {
		return nil, &OpenError{Path: path, Mode: audio.ModeRead, Err: err}
	}
	defer s.Close()

	sig := s.Signal()
	enc := s.Encoding()

	return &Info{
		Path:         path,
		SampleRate:   sig.Rate,
		Channels:     sig.Channels,
		Precision:    sig.Precision,
		EncodingName: enc.String(),
		EncodingID:   enc.ID(),
		Samples:      sig.Length,
		Duration:     sig.Frames() / int64(sig.Rate),
	}, nil
}
