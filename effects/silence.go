// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/soxe/audio"
)

const fullScale = 1 << 31

// Mode selects which ends of a stream the trimmer works on.
type Mode int

const (
	TrimBoth Mode = iota
	TrimLeading
	TrimTrailing
)

var modeNames = map[Mode]string{
	TrimBoth:     "both",
	TrimLeading:  "leading",
	TrimTrailing: "trailing",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "both", "leading" and "trailing".
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return 0, &ConfigError{Param: "mode", Value: s, Reason: "want both, leading or trailing"}
}

// SilenceConfig parameterizes a Silence trimmer.
type SilenceConfig struct {
	Mode Mode
	// MinDuration is the shortest run of silence, in seconds, that is
	// trimmed at an end of the stream. Zero disables trimming.
	MinDuration float64
	// Threshold is the peak level, as a fraction of full scale, below
	// which a frame counts as silent.
	Threshold float64
}

// DefaultSilenceConfig trims runs of at least 0.1s below 1% at both ends.
var DefaultSilenceConfig = SilenceConfig{
	Mode:        TrimBoth,
	MinDuration: 0.1,
	Threshold:   0.01,
}

// Validate checks the parameters without a signal.
func (c SilenceConfig) Validate() error {
	if _, ok := modeNames[c.Mode]; !ok {
		return &ConfigError{Param: "mode", Value: c.Mode.String(), Reason: "unknown trim mode"}
	}
	if math.IsNaN(c.Threshold) || c.Threshold <= 0 || c.Threshold >= 1 {
		return &ConfigError{
			Param:  "threshold",
			Value:  strconv.FormatFloat(c.Threshold, 'g', -1, 64),
			Reason: "must be between 0 and 1, exclusive",
		}
	}
	if math.IsNaN(c.MinDuration) || math.IsInf(c.MinDuration, 0) || c.MinDuration < 0 {
		return &ConfigError{
			Param:  "min duration",
			Value:  strconv.FormatFloat(c.MinDuration, 'g', -1, 64),
			Reason: "must be a finite, non-negative number of seconds",
		}
	}
	return nil
}

type trimState int

const (
	leadingSilence trimState = iota
	passThrough
	trailingSilenceBuffering
)

// Silence removes runs of silence at the start and end of a stream.
//
// A frame is silent when its peak absolute sample across channels is below
// Threshold of full scale. A leading or trailing run is removed only when
// it lasts at least MinDuration; shorter runs, and silence between loud
// frames of any length, are kept.
type Silence struct {
	cfg SilenceConfig

	channels  int
	minFrames int64
	limit     float64
	state     trimState

	// held is the current run of silent frames not yet emitted
	held       []audio.Sample
	heldFrames int64
	// leadRun counts the leading run, which may outgrow held
	leadRun int64

	out []audio.Sample

	leading  int64
	trailing int64
}

func NewSilence(cfg SilenceConfig) *Silence {
	return &Silence{cfg: cfg}
}

func (*Silence) Name() string { return "silence" }

func (s *Silence) Configure(sig audio.Signal) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if !sig.Valid() {
		return &ConfigError{
			Param:  "signal",
			Value:  fmt.Sprintf("%d Hz, %d channels", sig.Rate, sig.Channels),
			Reason: "rate and channels must be positive",
		}
	}

	s.channels = sig.Channels
	s.minFrames = int64(math.Round(s.cfg.MinDuration * float64(sig.Rate)))
	s.limit = s.cfg.Threshold * fullScale

	s.state = passThrough
	if s.trimsLeading() {
		s.state = leadingSilence
	}
	s.held = s.held[:0]
	s.heldFrames, s.leadRun = 0, 0
	s.leading, s.trailing = 0, 0

	return nil
}

func (s *Silence) trimsLeading() bool {
	return s.minFrames > 0 && s.cfg.Mode != TrimTrailing
}

func (s *Silence) trimsTrailing() bool {
	return s.minFrames > 0 && s.cfg.Mode != TrimLeading
}

// Trimmed reports the frames removed at the start and at the end.
func (s *Silence) Trimmed() (leading, trailing int64) {
	return s.leading, s.trailing
}

func (s *Silence) silent(frame []audio.Sample) bool {
	var peak int64
	for _, v := range frame {
		a := int64(v)
		if a < 0 {
			a = -a
		}
		peak = max(peak, a)
	}
	return float64(peak) < s.limit
}

func (s *Silence) Process(block []audio.Sample) ([]audio.Sample, error) {
	if s.channels == 0 {
		return nil, ErrNotConfigured
	}

	s.out = s.out[:0]
	ch := s.channels
	for off := 0; off+ch <= len(block); off += ch {
		frame := block[off : off+ch]
		silent := s.silent(frame)

		switch s.state {
		case leadingSilence:
			if silent {
				s.leadRun++
				if s.leadRun < s.minFrames {
					s.held = append(s.held, frame...)
				} else {
					// long enough to go; stop buffering
					s.held = s.held[:0]
				}
				continue
			}

			if s.leadRun < s.minFrames {
				s.out = append(s.out, s.held...)
			} else {
				s.leading += s.leadRun
			}
			s.held = s.held[:0]
			s.leadRun = 0
			s.state = passThrough
			s.out = append(s.out, frame...)

		case passThrough, trailingSilenceBuffering:
			if !silent {
				s.out = append(s.out, s.held...)
				s.out = append(s.out, frame...)
				s.held = s.held[:0]
				s.heldFrames = 0
				s.state = passThrough
				continue
			}

			if !s.trimsTrailing() {
				s.out = append(s.out, frame...)
				continue
			}

			s.held = append(s.held, frame...)
			s.heldFrames++
			if s.heldFrames >= s.minFrames {
				s.state = trailingSilenceBuffering
			}
		}
	}

	return s.out, nil
}

func (s *Silence) Flush() ([]audio.Sample, error) {
	if s.channels == 0 {
		return nil, ErrNotConfigured
	}

	s.out = s.out[:0]
	switch s.state {
	case leadingSilence:
		// nothing but silence was seen
		s.leading += s.leadRun
		s.leadRun = 0
	case passThrough:
		s.out = append(s.out, s.held...)
	case trailingSilenceBuffering:
		s.trailing += s.heldFrames
	}
	s.held = s.held[:0]
	s.heldFrames = 0

	return s.out, nil
}

func (s *Silence) Close() error {
	s.held = nil
	s.out = nil
	return nil
}

// ParseThreshold reads a silence threshold as a plain fraction ("0.01"),
// a percentage ("1%") or a level in decibels ("-40dB", "-40d"). The result
// must lie strictly between 0 and 1.
func ParseThreshold(s string) (float64, error) {
	str := strings.TrimSpace(s)
	lower := strings.ToLower(str)

	var (
		v   float64
		err error
	)
	switch {
	case strings.HasSuffix(lower, "%"):
		v, err = strconv.ParseFloat(strings.TrimSpace(str[:len(str)-1]), 64)
		v /= 100
	case strings.HasSuffix(lower, "db"):
		v, err = strconv.ParseFloat(strings.TrimSpace(str[:len(str)-2]), 64)
		v = math.Pow(10, v/20)
	case strings.HasSuffix(lower, "d"):
		v, err = strconv.ParseFloat(strings.TrimSpace(str[:len(str)-1]), 64)
		v = math.Pow(10, v/20)
	default:
		v, err = strconv.ParseFloat(str, 64)
	}
	if err != nil {
		return 0, &ConfigError{Param: "threshold", Value: s, Reason: "not a number"}
	}

	if math.IsNaN(v) || v <= 0 || v >= 1 {
		return 0, &ConfigError{Param: "threshold", Value: s, Reason: "must be between 0 and 1, exclusive"}
	}
	return v, nil
}

// ParseDuration reads a duration in seconds ("0.5"), as a Go duration
// ("500ms", "1m2.5s") or as a clock time ("1:02.5", "0:01:02.5").
func ParseDuration(s string) (float64, error) {
	str := strings.TrimSpace(s)
	bad := func(reason string) (float64, error) {
		return 0, &ConfigError{Param: "min duration", Value: s, Reason: reason}
	}

	var secs float64
	switch {
	case str == "":
		return bad("empty")
	case strings.Contains(str, ":"):
		parts := strings.Split(str, ":")
		if len(parts) > 3 {
			return bad("too many fields")
		}
		for _, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil || v < 0 {
				return bad("not a clock time")
			}
			secs = secs*60 + v
		}
	case strings.IndexFunc(str, isUnitRune) >= 0:
		d, err := time.ParseDuration(str)
		if err != nil {
			return bad("not a duration")
		}
		secs = d.Seconds()
	default:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return bad("not a number")
		}
		secs = v
	}

	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return bad("must be a finite, non-negative number of seconds")
	}
	return secs, nil
}

func isUnitRune(r rune) bool {
	switch r {
	case 'h', 'm', 's', 'u', 'n', 'µ', 'μ':
		return true
	default:
		return false
	}
}
