// SPDX-License-Identifier: MIT

// Package config loads the tuning parameters of the heuristic, the
// propagator and logging from defaults, an optional YAML file and
// STEINER_ environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/steinercore/ascendprune"
	"github.com/katalvlaran/steinercore/propagate"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid parameters")

// Params is the full parameter set.
type Params struct {
	AscendPrune AscendPruneParams `koanf:"ascendprune"`
	Propagator  PropagatorParams  `koanf:"propagator"`
	Log         LogParams         `koanf:"log"`
}

// AscendPruneParams tune the heuristic call policy.
type AscendPruneParams struct {
	MaxFreq      bool    `koanf:"max_freq"`
	MinLPImprove float64 `koanf:"min_lp_improve"`
	DualAscent   bool    `koanf:"dual_ascent"`
	LocalSearch  bool    `koanf:"local_search"`
}

// PropagatorParams tune the reduced-cost propagator.
type PropagatorParams struct {
	MaxNWaitRounds     int     `koanf:"max_n_wait_rounds"`
	Aggressive         bool    `koanf:"aggressive"`
	ReductionWaitRatio float64 `koanf:"reduction_wait_ratio"`
}

// LogParams select the log level and format ("text" or "json").
type LogParams struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in parameters: the heuristic and propagator
// default settings, info level, text format.
func Default() Params {
	as, ps := ascendprune.DefaultSettings(), propagate.DefaultSettings()

	return Params{
		AscendPrune: AscendPruneParams{MaxFreq: as.MaxFreq, MinLPImprove: as.MinLPImprove},
		Propagator: PropagatorParams{
			MaxNWaitRounds:     ps.MaxNWaitRounds,
			Aggressive:         ps.Aggressive,
			ReductionWaitRatio: ps.ReductionWaitRatio,
		},
		Log: LogParams{Level: "info", Format: "text"},
	}
}

// Validate checks every field range.
func (p *Params) Validate() error {
	if p.AscendPrune.MinLPImprove < 0 || p.AscendPrune.MinLPImprove > 1 {
		return fmt.Errorf("%w: ascendprune.min_lp_improve=%g, want in [0,1]", ErrInvalid, p.AscendPrune.MinLPImprove)
	}
	if err := p.PropagatorSettings().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(p.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch p.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format=%q, want text or json", ErrInvalid, p.Log.Format)
	}

	return nil
}

// AscendPruneSettings returns the heuristic call policy.
func (p *Params) AscendPruneSettings() ascendprune.Settings {
	return ascendprune.Settings{
		MaxFreq:      p.AscendPrune.MaxFreq,
		MinLPImprove: p.AscendPrune.MinLPImprove,
	}
}

// AscendPruneOptions returns the Run options selected by the parameters.
func (p *Params) AscendPruneOptions() []ascendprune.Option {
	var opts []ascendprune.Option
	if p.AscendPrune.DualAscent {
		opts = append(opts, ascendprune.WithDualAscentCosts())
	}
	if p.AscendPrune.LocalSearch {
		opts = append(opts, ascendprune.WithLocalSearch())
	}

	return opts
}

// PropagatorSettings returns the propagator call policy.
func (p *Params) PropagatorSettings() propagate.Settings {
	return propagate.Settings{
		MaxNWaitRounds:     p.Propagator.MaxNWaitRounds,
		Aggressive:         p.Propagator.Aggressive,
		ReductionWaitRatio: p.Propagator.ReductionWaitRatio,
	}
}

// Logger builds a logger writing to stderr at the configured level.
func (p *Params) Logger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(p.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	if p.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
