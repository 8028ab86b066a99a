package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// ScenarioFlight is the YAML shape of one flight.
type ScenarioFlight struct {
	ID             string    `yaml:"id"`
	Origin         string    `yaml:"origin"`
	Destination    string    `yaml:"destination"`
	Start          time.Time `yaml:"start"`
	Occupancy      Duration  `yaml:"occupancy"`
	Priority       int       `yaml:"priority,omitempty"`
	Passengers     int       `yaml:"passengers,omitempty"`
	DistanceKM     float64   `yaml:"distance_km,omitempty"`
	FlightDuration Duration  `yaml:"flight_duration,omitempty"`
	Day            int       `yaml:"day,omitempty"`
}

// Scenario models a scheduling scenario file: a flight batch plus the
// crew pool size and limits to run it against.
type Scenario struct {
	Name     string           `yaml:"name"`
	CrewSize int              `yaml:"crew_size"`
	Limits   Limits           `yaml:"limits"`
	Flights  []ScenarioFlight `yaml:"flights"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	s.Limits.applyDefaults()
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.CrewSize < 0 {
		return fmt.Errorf("crew_size cannot be negative")
	}
	if err := s.Limits.Validate(); err != nil {
		return err
	}
	if len(s.Flights) == 0 {
		return fmt.Errorf("at least one flight is required")
	}
	return core.ValidateFlights(s.BuildFlights())
}

// BuildFlights converts the YAML flights to core models, filling default
// priorities.
func (s *Scenario) BuildFlights() []*core.Flight {
	out := make([]*core.Flight, 0, len(s.Flights))
	for _, sf := range s.Flights {
		priority := sf.Priority
		if priority == 0 {
			priority = core.PriorityDefault
		}
		out = append(out, &core.Flight{
			ID:             core.FlightID(sf.ID),
			Origin:         sf.Origin,
			Destination:    sf.Destination,
			Start:          sf.Start,
			Occupancy:      sf.Occupancy.D(),
			Priority:       priority,
			Passengers:     sf.Passengers,
			DistanceKM:     sf.DistanceKM,
			FlightDuration: sf.FlightDuration.D(),
			Day:            sf.Day,
		})
	}
	return out
}

// BuildCrew creates the scenario's crew pool.
func (s *Scenario) BuildCrew() []*core.CrewMember {
	return core.NewCrewPool(s.CrewSize, s.Limits.DutyLimits())
}
