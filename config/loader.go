// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment override. Sections are separated by
// a double underscore: STEINER_PROPAGATOR__AGGRESSIVE=true.
const EnvPrefix = "STEINER_"

// Loader merges the parameter sources.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile reads path as YAML. The file must exist.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a loader over defaults and the environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges defaults, the file and the environment, then validates.
func (l *Loader) Load() (*Params, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	if l.path != "" {
		if _, err := os.Stat(l.path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := l.k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %s: %w", l.path, err)
		}
	}
	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var p Params
	if err := l.k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// envKey maps STEINER_A__B_C to a.b_c.
func (l *Loader) envKey(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))

	return strings.ReplaceAll(key, "__", "."), value
}

func defaults() map[string]interface{} {
	d := Default()

	return map[string]interface{}{
		"ascendprune.max_freq":            d.AscendPrune.MaxFreq,
		"ascendprune.min_lp_improve":      d.AscendPrune.MinLPImprove,
		"ascendprune.dual_ascent":         d.AscendPrune.DualAscent,
		"ascendprune.local_search":        d.AscendPrune.LocalSearch,
		"propagator.max_n_wait_rounds":    d.Propagator.MaxNWaitRounds,
		"propagator.aggressive":           d.Propagator.Aggressive,
		"propagator.reduction_wait_ratio": d.Propagator.ReductionWaitRatio,
		"log.level":                       d.Log.Level,
		"log.format":                      d.Log.Format,
	}
}

// Load reads the parameters with an optional YAML file; an empty path
// uses defaults and the environment only.
func Load(path string) (*Params, error) {
	var opts []LoaderOption
	if path != "" {
		opts = append(opts, WithFile(path))
	}

	return NewLoader(opts...).Load()
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Params {
	p, err := Load(path)
	if err != nil {
		panic(err.Error())
	}

	return p
}
