package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "limits.yaml", `
max_duty_per_day: 10h
min_rest: 12h
delay_increment: 5m
delay_ceiling: 1h
hybrid_weights:
  priority: 0.5
  passengers: 0.3
  distance: 0.2
`)
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxDutyPerDay.D() != 10*time.Hour {
		t.Errorf("max duty = %v, want 10h", l.MaxDutyPerDay.D())
	}
	if l.MinRest.D() != 12*time.Hour {
		t.Errorf("min rest = %v, want 12h", l.MinRest.D())
	}
	if l.DelayIncrement.D() != 5*time.Minute {
		t.Errorf("delay increment = %v, want 5m", l.DelayIncrement.D())
	}
	if l.HybridWeights.Priority != 0.5 {
		t.Errorf("priority weight = %v, want 0.5", l.HybridWeights.Priority)
	}
}

func TestLoadPartialFallsBackToDefaults(t *testing.T) {
	path := writeFile(t, "limits.yaml", "max_duty_per_day: 9h\n")
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.MaxDutyPerDay.D() != 9*time.Hour {
		t.Errorf("max duty = %v, want 9h", l.MaxDutyPerDay.D())
	}
	def := Default()
	if l.MinRest != def.MinRest {
		t.Errorf("min rest = %v, want default %v", l.MinRest, def.MinRest)
	}
	if l.HybridWeights != def.HybridWeights {
		t.Errorf("weights = %v, want defaults", l.HybridWeights)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	path := writeFile(t, "limits.yaml", `
hybrid_weights:
  priority: 0.9
  passengers: 0.9
  distance: 0.9
`)
	if _, err := Load(path); err == nil {
		t.Error("weights summing to 2.7 should be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestDurationUnmarshal(t *testing.T) {
	t.Run("go syntax", func(t *testing.T) {
		path := writeFile(t, "limits.yaml", "min_rest: 90m\n")
		l, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if l.MinRest.D() != 90*time.Minute {
			t.Errorf("min rest = %v, want 90m", l.MinRest.D())
		}
	})
	t.Run("bare seconds", func(t *testing.T) {
		path := writeFile(t, "limits.yaml", "min_rest: 3600\n")
		l, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if l.MinRest.D() != time.Hour {
			t.Errorf("min rest = %v, want 1h", l.MinRest.D())
		}
	})
	t.Run("garbage", func(t *testing.T) {
		path := writeFile(t, "limits.yaml", "min_rest: soon\n")
		if _, err := Load(path); err == nil {
			t.Error("unparseable duration should error")
		}
	})
}

func TestConversions(t *testing.T) {
	l := Default()

	dl := l.DutyLimits()
	if dl.MaxDuty != 8*time.Hour || dl.MinRest != 10*time.Hour {
		t.Errorf("DutyLimits = %v", dl)
	}

	k := l.CapacityKnobs()
	if k.DelayIncrement != 15*time.Minute || k.DelayCeiling != 240*time.Minute {
		t.Errorf("CapacityKnobs = %v", k)
	}
	if err := k.Validate(); err != nil {
		t.Errorf("default knobs should validate: %v", err)
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: morning rush
crew_size: 4
limits:
  max_duty_per_day: 8h
  min_rest: 10h
flights:
  - id: FL1
    origin: LAX
    destination: JFK
    start: 2025-06-01T10:00:00Z
    occupancy: 15m
    priority: 1
    passengers: 180
    distance_km: 3970
    flight_duration: 5h30m
  - id: FL2
    origin: ORD
    destination: JFK
    start: 2025-06-01T10:10:00Z
    occupancy: 12m
`)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "morning rush" || sc.CrewSize != 4 {
		t.Errorf("scenario header = %q / %d", sc.Name, sc.CrewSize)
	}

	flights := sc.BuildFlights()
	if len(flights) != 2 {
		t.Fatalf("flights = %d, want 2", len(flights))
	}
	if flights[0].FlightDuration != 5*time.Hour+30*time.Minute {
		t.Errorf("FL1 flight duration = %v", flights[0].FlightDuration)
	}
	// Omitted priority falls back to the default.
	if flights[1].Priority != 5 {
		t.Errorf("FL2 priority = %d, want default 5", flights[1].Priority)
	}

	crew := sc.BuildCrew()
	if len(crew) != 4 {
		t.Errorf("crew = %d, want 4", len(crew))
	}
	if crew[0].Limits.MaxDuty != 8*time.Hour {
		t.Errorf("crew limits = %v", crew[0].Limits)
	}
}

func TestLoadScenarioRejectsBadBatches(t *testing.T) {
	tests := []struct {
		name, yaml string
	}{
		{"no flights", "name: x\ncrew_size: 2\n"},
		{"duplicate ids", `
crew_size: 1
flights:
  - {id: FL1, origin: A, destination: B, start: 2025-06-01T10:00:00Z, occupancy: 15m}
  - {id: FL1, origin: C, destination: B, start: 2025-06-01T11:00:00Z, occupancy: 15m}
`},
		{"negative crew", `
crew_size: -1
flights:
  - {id: FL1, origin: A, destination: B, start: 2025-06-01T10:00:00Z, occupancy: 15m}
`},
		{"zero occupancy", `
crew_size: 1
flights:
  - {id: FL1, origin: A, destination: B, start: 2025-06-01T10:00:00Z, occupancy: 0s}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "scenario.yaml", tt.yaml)
			if _, err := LoadScenario(path); err == nil {
				t.Error("want error")
			}
		})
	}
}
