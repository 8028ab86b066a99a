// Package config loads scheduling limits and scenario files from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/airside-scheduler/internal/algo"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// Limits models the tunable knobs of every scheduler. Durations use Go
// syntax in YAML ("8h", "15m").
type Limits struct {
	MaxDutyPerDay  Duration `yaml:"max_duty_per_day"`
	MinRest        Duration `yaml:"min_rest"`
	DelayIncrement Duration `yaml:"delay_increment"`
	DelayCeiling   Duration `yaml:"delay_ceiling"`
	HybridWeights  Weights  `yaml:"hybrid_weights"`
}

// Weights are the hybrid ordering weights; they must sum to 1.
type Weights struct {
	Priority   float64 `yaml:"priority"`
	Passengers float64 `yaml:"passengers"`
	Distance   float64 `yaml:"distance"`
}

// Default returns the documented defaults: 8h duty, 10h rest, 15m delay
// increment, 240m delay ceiling, 0.40/0.35/0.25 hybrid weights.
func Default() Limits {
	return Limits{
		MaxDutyPerDay:  Duration(8 * time.Hour),
		MinRest:        Duration(10 * time.Hour),
		DelayIncrement: Duration(15 * time.Minute),
		DelayCeiling:   Duration(240 * time.Minute),
		HybridWeights:  Weights{Priority: 0.40, Passengers: 0.35, Distance: 0.25},
	}
}

// Load reads a limits file. Missing fields fall back to defaults.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var l Limits
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Limits{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return Limits{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return l, nil
}

func (l *Limits) applyDefaults() {
	def := Default()
	if l.MaxDutyPerDay == 0 {
		l.MaxDutyPerDay = def.MaxDutyPerDay
	}
	if l.MinRest == 0 {
		l.MinRest = def.MinRest
	}
	if l.DelayIncrement == 0 {
		l.DelayIncrement = def.DelayIncrement
	}
	if l.DelayCeiling == 0 {
		l.DelayCeiling = def.DelayCeiling
	}
	if l.HybridWeights == (Weights{}) {
		l.HybridWeights = def.HybridWeights
	}
}

// Validate checks every knob.
func (l Limits) Validate() error {
	if err := l.DutyLimits().Validate(); err != nil {
		return err
	}
	return l.CapacityKnobs().Validate()
}

// DutyLimits converts to the core representation.
func (l Limits) DutyLimits() core.DutyLimits {
	return core.DutyLimits{MaxDuty: l.MaxDutyPerDay.D(), MinRest: l.MinRest.D()}
}

// CapacityKnobs converts to the capacity scheduler representation.
func (l Limits) CapacityKnobs() algo.CapacityKnobs {
	return algo.CapacityKnobs{
		DelayIncrement: l.DelayIncrement.D(),
		DelayCeiling:   l.DelayCeiling.D(),
		Weights: algo.HybridWeights{
			Priority:   l.HybridWeights.Priority,
			Passengers: l.HybridWeights.Passengers,
			Distance:   l.HybridWeights.Distance,
		},
	}
}
