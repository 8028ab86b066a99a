// Package core defines domain models for airside scheduling.
package core

import (
	"fmt"
	"time"
)

// FlightID is a unique flight identifier.
type FlightID string

// Priority bounds. Lower value means more urgent.
const (
	PriorityHighest = 1
	PriorityLowest  = 10
	PriorityDefault = 5
)

// Flight represents a flight that needs a runway slot and a crew member.
type Flight struct {
	ID          FlightID
	Origin      string
	Destination string
	Start       time.Time     // Start of the runway occupancy window
	Occupancy   time.Duration // Time to land and clear the runway
	Priority    int           // 1 = most urgent, 10 = least urgent
	Passengers  int
	DistanceKM  float64
	// FlightDuration overrides Occupancy for duty-hour accounting when set.
	FlightDuration time.Duration
	Day            int // Day index for multi-day scheduling

	Runway int           // Assigned runway, 1-based; 0 = unassigned
	Delay  time.Duration // Accumulated delay from constrained scheduling
}

// NewFlight creates a flight with defaults and validates it.
func NewFlight(id FlightID, origin, dest string, start time.Time, occupancy time.Duration) (*Flight, error) {
	f := &Flight{
		ID:          id,
		Origin:      origin,
		Destination: dest,
		Start:       start,
		Occupancy:   occupancy,
		Priority:    PriorityDefault,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks flight invariants.
func (f *Flight) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("flight: missing id")
	}
	if f.Occupancy <= 0 {
		return fmt.Errorf("flight %s: occupancy must be positive, got %v", f.ID, f.Occupancy)
	}
	if f.Priority < PriorityHighest || f.Priority > PriorityLowest {
		return fmt.Errorf("flight %s: priority must be between %d and %d, got %d",
			f.ID, PriorityHighest, PriorityLowest, f.Priority)
	}
	return nil
}

// End returns the end of the occupancy window. It is always derived from
// Start and Occupancy so it stays consistent after delays.
func (f *Flight) End() time.Time {
	return f.Start.Add(f.Occupancy)
}

// DutyDuration returns the time the flight counts against a crew member's
// duty limit: FlightDuration when set, otherwise the occupancy window.
func (f *Flight) DutyDuration() time.Duration {
	if f.FlightDuration > 0 {
		return f.FlightDuration
	}
	return f.Occupancy
}

// Assigned reports whether the flight has a runway.
func (f *Flight) Assigned() bool {
	return f.Runway > 0
}

// Shifted returns a copy of the flight delayed by d. The original is not
// modified.
func (f *Flight) Shifted(d time.Duration) *Flight {
	c := *f
	c.Start = f.Start.Add(d)
	c.Delay = f.Delay + d
	return &c
}

// Overlaps reports whether two occupancy windows conflict. Intervals are
// half-open: windows that only touch at a boundary do not conflict.
func (f *Flight) Overlaps(other *Flight) bool {
	return f.Start.Before(other.End()) && other.Start.Before(f.End())
}

// OverlapDuration returns how long two windows overlap, or zero.
func (f *Flight) OverlapDuration(other *Flight) time.Duration {
	if !f.Overlaps(other) {
		return 0
	}
	start := f.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := f.End()
	if other.End().Before(end) {
		end = other.End()
	}
	return end.Sub(start)
}

// Intervals overlap if a starts before b ends and b starts before a ends.
// This is the single conflict predicate shared by the coloring and the
// capacity-constrained schedulers.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WindowsOverlap reports whether two explicit [start, end) windows conflict.
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return intervalsOverlap(aStart, aEnd, bStart, bEnd)
}

func (f *Flight) String() string {
	runway := "unassigned"
	if f.Assigned() {
		runway = fmt.Sprintf("runway %d", f.Runway)
	}
	return fmt.Sprintf("%s: %s -> %s | %s - %s | %s",
		f.ID, f.Origin, f.Destination,
		f.Start.Format("15:04"), f.End().Format("15:04"), runway)
}

// ValidateFlights checks a whole batch, rejecting the request on the first
// malformed flight or duplicate id.
func ValidateFlights(flights []*Flight) error {
	seen := make(map[FlightID]bool, len(flights))
	for _, f := range flights {
		if f == nil {
			return fmt.Errorf("flight list contains nil entry")
		}
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.ID] {
			return fmt.Errorf("flight %s: duplicate id", f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}

// CloneFlights deep-copies a flight batch so schedulers can mutate runway
// and delay fields without aliasing the caller's data.
func CloneFlights(flights []*Flight) []*Flight {
	out := make([]*Flight, len(flights))
	for i, f := range flights {
		c := *f
		out[i] = &c
	}
	return out
}
