package algo

import (
	"fmt"
	"sort"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// CapacityKnobs are the tunable parameters of the capacity-constrained
// scheduler.
type CapacityKnobs struct {
	DelayIncrement time.Duration // Step by which a blocked flight is pushed back
	DelayCeiling   time.Duration // Max delay searched before force-assignment
	Weights        HybridWeights
}

// HybridWeights combine the three normalized ordering components. They
// should sum to 1.
type HybridWeights struct {
	Priority   float64
	Passengers float64
	Distance   float64
}

// DefaultCapacityKnobs returns the documented defaults: 15 minute
// increment, 240 minute ceiling, 0.40/0.35/0.25 hybrid weights.
func DefaultCapacityKnobs() CapacityKnobs {
	return CapacityKnobs{
		DelayIncrement: 15 * time.Minute,
		DelayCeiling:   240 * time.Minute,
		Weights:        HybridWeights{Priority: 0.40, Passengers: 0.35, Distance: 0.25},
	}
}

// Validate checks the knobs.
func (k CapacityKnobs) Validate() error {
	if k.DelayIncrement <= 0 {
		return fmt.Errorf("capacity knobs: delay increment must be positive, got %v", k.DelayIncrement)
	}
	if k.DelayCeiling < k.DelayIncrement {
		return fmt.Errorf("capacity knobs: delay ceiling %v below increment %v", k.DelayCeiling, k.DelayIncrement)
	}
	sum := k.Weights.Priority + k.Weights.Passengers + k.Weights.Distance
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("capacity knobs: hybrid weights must sum to 1, got %.3f", sum)
	}
	return nil
}

// CapacityResult is the outcome of scheduling onto a fixed runway pool.
type CapacityResult struct {
	Flights     []*core.Flight // All flights with realized times, runway and delay set
	NumRunways  int
	ByRunway    map[int][]*core.Flight
	Delayed     []*core.Flight // Flights with Delay > 0
	AtCeiling   []*core.Flight // Flights force-assigned past the delay ceiling
	TotalDelay  time.Duration
	OnTimeRatio float64
}

// AvgDelay returns the mean delay per delayed flight.
func (r *CapacityResult) AvgDelay() time.Duration {
	if len(r.Delayed) == 0 {
		return 0
	}
	return r.TotalDelay / time.Duration(len(r.Delayed))
}

// MaxDelay returns the largest realized delay.
func (r *CapacityResult) MaxDelay() time.Duration {
	var max time.Duration
	for _, f := range r.Delayed {
		if f.Delay > max {
			max = f.Delay
		}
	}
	return max
}

// CapacitySchedule assigns flights to a fixed pool of maxRunways runways,
// delaying flights by the configured increment when no runway is free.
// Every flight is eventually placed: past the delay ceiling it is
// force-assigned to the runway whose conflicting occupancy clears soonest.
// Input flights are never modified; the result holds copies.
func CapacitySchedule(flights []*core.Flight, maxRunways int, policy OrderPolicy, knobs CapacityKnobs) (*CapacityResult, error) {
	if maxRunways < 1 {
		return nil, ErrNoRunways
	}
	if err := knobs.Validate(); err != nil {
		return nil, err
	}
	if err := core.ValidateFlights(flights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlight, err)
	}

	res := &CapacityResult{
		NumRunways:  maxRunways,
		ByRunway:    make(map[int][]*core.Flight),
		OnTimeRatio: 1,
	}
	if len(flights) == 0 {
		return res, nil
	}

	ordered := core.CloneFlights(flights)
	scores := policyScores(ordered, policy, knobs.Weights)
	sort.SliceStable(ordered, func(i, j int) bool {
		if scores[ordered[i].ID] != scores[ordered[j].ID] {
			return scores[ordered[i].ID] < scores[ordered[j].ID]
		}
		return ordered[i].Start.Before(ordered[j].Start)
	})

	for _, f := range ordered {
		placed := placeOnTime(f, maxRunways, res.ByRunway)
		if placed == nil {
			placed = placeDelayed(f, maxRunways, res.ByRunway, knobs)
		}
		res.Flights = append(res.Flights, placed)
		res.ByRunway[placed.Runway] = append(res.ByRunway[placed.Runway], placed)
		if placed.Delay > 0 {
			res.Delayed = append(res.Delayed, placed)
			res.TotalDelay += placed.Delay
		}
		if placed.Delay > knobs.DelayCeiling {
			res.AtCeiling = append(res.AtCeiling, placed)
		}
	}

	res.OnTimeRatio = float64(len(res.Flights)-len(res.Delayed)) / float64(len(res.Flights))
	return res, nil
}

// placeOnTime returns the flight bound to the lowest free runway at its
// current window, or nil if every runway conflicts.
func placeOnTime(f *core.Flight, maxRunways int, byRunway map[int][]*core.Flight) *core.Flight {
	for r := 1; r <= maxRunways; r++ {
		if runwayFree(f, byRunway[r]) {
			c := *f
			c.Runway = r
			return &c
		}
	}
	return nil
}

// placeDelayed pushes the flight back by the increment until a runway
// frees up, then binds it. Past the ceiling it falls back to the runway
// whose conflicting occupancy clears soonest, ties to the lowest index.
func placeDelayed(f *core.Flight, maxRunways int, byRunway map[int][]*core.Flight, knobs CapacityKnobs) *core.Flight {
	for d := knobs.DelayIncrement; d <= knobs.DelayCeiling; d += knobs.DelayIncrement {
		shifted := f.Shifted(d)
		for r := 1; r <= maxRunways; r++ {
			if runwayFree(shifted, byRunway[r]) {
				shifted.Runway = r
				return shifted
			}
		}
	}

	// Force-assign: earliest instant each runway clears the flight's way.
	bestRunway := 1
	var bestStart time.Time
	for r := 1; r <= maxRunways; r++ {
		start := clearanceTime(f, byRunway[r])
		if r == 1 || start.Before(bestStart) {
			bestRunway, bestStart = r, start
		}
	}
	delayed := f.Shifted(bestStart.Sub(f.Start))
	delayed.Runway = bestRunway
	return delayed
}

// runwayFree reports whether the flight's current window avoids every
// flight already bound to the runway, at their realized times.
func runwayFree(f *core.Flight, assigned []*core.Flight) bool {
	for _, other := range assigned {
		if f.Overlaps(other) {
			return false
		}
	}
	return true
}

// clearanceTime returns the earliest start at or after the flight's own
// start where the runway has no conflicting occupancy. With a finite
// assignment list this is bounded by the latest end on the runway.
func clearanceTime(f *core.Flight, assigned []*core.Flight) time.Time {
	start := f.Start
	for changed := true; changed; {
		changed = false
		end := start.Add(f.Occupancy)
		for _, other := range assigned {
			if core.WindowsOverlap(start, end, other.Start, other.End()) && other.End().After(start) {
				start = other.End()
				changed = true
				break
			}
		}
	}
	return start
}

// policyScores computes the ordering score per flight. Lower score is
// scheduled first. Magnitude components are min-max normalized over the
// batch, inverted so fuller and longer flights come first.
func policyScores(flights []*core.Flight, policy OrderPolicy, w HybridWeights) map[core.FlightID]float64 {
	scores := make(map[core.FlightID]float64, len(flights))
	priority := normalize(flights, func(f *core.Flight) float64 { return float64(f.Priority) })
	passengers := normalize(flights, func(f *core.Flight) float64 { return float64(f.Passengers) })
	distance := normalize(flights, func(f *core.Flight) float64 { return f.DistanceKM })

	for _, f := range flights {
		switch policy {
		case OrderPassengers:
			scores[f.ID] = 1 - passengers[f.ID]
		case OrderDistance:
			scores[f.ID] = 1 - distance[f.ID]
		case OrderHybrid:
			scores[f.ID] = w.Priority*priority[f.ID] +
				w.Passengers*(1-passengers[f.ID]) +
				w.Distance*(1-distance[f.ID])
		default:
			scores[f.ID] = float64(f.Priority)
		}
	}
	return scores
}

// normalize min-max scales an attribute over the batch into 0..1. A
// constant attribute maps to 0 for every flight.
func normalize(flights []*core.Flight, attr func(*core.Flight) float64) map[core.FlightID]float64 {
	out := make(map[core.FlightID]float64, len(flights))
	if len(flights) == 0 {
		return out
	}
	min, max := attr(flights[0]), attr(flights[0])
	for _, f := range flights[1:] {
		v := attr(f)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	for _, f := range flights {
		if span == 0 {
			out[f.ID] = 0
		} else {
			out[f.ID] = (attr(f) - min) / span
		}
	}
	return out
}
