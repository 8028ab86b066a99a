package algo

import (
	"fmt"
	"sort"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// ColorResult is the outcome of minimum-runway scheduling.
type ColorResult struct {
	Runways       map[core.FlightID]int // 1-based runway per flight
	NumRunways    int
	ConflictPairs int
	ByRunway      map[int][]*core.Flight
}

// ColorSchedule assigns each flight a runway index such that no two
// overlapping flights share one, minimizing the number of runways used.
// The flights themselves are not modified; assignments live in the result.
func ColorSchedule(flights []*core.Flight, h Heuristic) (*ColorResult, error) {
	if err := core.ValidateFlights(flights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlight, err)
	}

	res := &ColorResult{
		Runways:  make(map[core.FlightID]int, len(flights)),
		ByRunway: make(map[int][]*core.Flight),
	}
	if len(flights) == 0 {
		return res, nil
	}

	g := core.BuildConflictGraph(flights)
	res.ConflictPairs = g.EdgeCount()

	var colors map[core.FlightID]int
	switch h {
	case HeuristicDegree:
		colors = colorWelshPowell(g)
	case HeuristicSaturation:
		colors = colorDSatur(g)
	default:
		colors = colorGreedy(g)
	}

	for id, c := range colors {
		res.Runways[id] = c
		if c > res.NumRunways {
			res.NumRunways = c
		}
	}
	for _, f := range flights {
		r := colors[f.ID]
		res.ByRunway[r] = append(res.ByRunway[r], f)
	}
	return res, nil
}

// smallestFreeColor returns the lowest color (from 1) unused by any
// colored neighbor.
func smallestFreeColor(g *core.ConflictGraph, id core.FlightID, colors map[core.FlightID]int) int {
	used := make(map[int]bool)
	for _, n := range g.Neighbors(id) {
		if c, ok := colors[n]; ok {
			used[c] = true
		}
	}
	c := 1
	for used[c] {
		c++
	}
	return c
}

// colorGreedy colors flights in input order.
func colorGreedy(g *core.ConflictGraph) map[core.FlightID]int {
	colors := make(map[core.FlightID]int, g.Len())
	for _, f := range g.Flights() {
		colors[f.ID] = smallestFreeColor(g, f.ID, colors)
	}
	return colors
}

// colorWelshPowell colors flights by descending conflict degree, ties
// broken by input order.
func colorWelshPowell(g *core.ConflictGraph) map[core.FlightID]int {
	order := make([]*core.Flight, g.Len())
	copy(order, g.Flights())
	sort.SliceStable(order, func(i, j int) bool {
		return g.Degree(order[i].ID) > g.Degree(order[j].ID)
	})

	colors := make(map[core.FlightID]int, g.Len())
	for _, f := range order {
		colors[f.ID] = smallestFreeColor(g, f.ID, colors)
	}
	return colors
}

// colorDSatur repeatedly colors the uncolored flight with the highest
// saturation, i.e. the most distinct colors among its colored neighbors.
// Ties break by raw degree, then input order.
func colorDSatur(g *core.ConflictGraph) map[core.FlightID]int {
	flights := g.Flights()
	colors := make(map[core.FlightID]int, len(flights))
	saturation := make(map[core.FlightID]map[int]bool, len(flights))
	uncolored := make(map[core.FlightID]bool, len(flights))
	for _, f := range flights {
		saturation[f.ID] = make(map[int]bool)
		uncolored[f.ID] = true
	}

	for len(uncolored) > 0 {
		var selected core.FlightID
		bestSat, bestDeg := -1, -1
		// Scanning in input order makes the final tie-break deterministic:
		// on equal saturation and degree the earlier flight wins.
		for _, f := range flights {
			if !uncolored[f.ID] {
				continue
			}
			sat := len(saturation[f.ID])
			deg := g.Degree(f.ID)
			if sat > bestSat || (sat == bestSat && deg > bestDeg) {
				bestSat, bestDeg = sat, deg
				selected = f.ID
			}
		}

		c := smallestFreeColor(g, selected, colors)
		colors[selected] = c
		delete(uncolored, selected)

		for _, n := range g.Neighbors(selected) {
			if uncolored[n] {
				saturation[n][c] = true
			}
		}
	}
	return colors
}

// ChromaticBounds returns bounds on the minimum number of runways: at
// least the largest point-in-time overlap is needed, and greedy coloring
// never exceeds max degree + 1. For interval conflicts the lower bound is
// in fact tight.
func ChromaticBounds(flights []*core.Flight) (lower, upper int) {
	if len(flights) == 0 {
		return 0, 0
	}

	type event struct {
		at    time.Time
		delta int
	}
	events := make([]event, 0, 2*len(flights))
	for _, f := range flights {
		events = append(events, event{f.Start, 1}, event{f.End(), -1})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].at.Equal(events[j].at) {
			// Ends before starts: touching windows do not overlap.
			return events[i].delta < events[j].delta
		}
		return events[i].at.Before(events[j].at)
	})
	open := 0
	for _, e := range events {
		open += e.delta
		if open > lower {
			lower = open
		}
	}

	g := core.BuildConflictGraph(flights)
	_, maxDeg := g.MaxDegree()
	return lower, maxDeg + 1
}

// ValidateColoring re-checks runway assignments recorded on the flights
// themselves and reports every conflicting pair sharing a runway.
func ValidateColoring(flights []*core.Flight) (bool, []string) {
	var violations []string
	for i := 0; i < len(flights); i++ {
		for j := i + 1; j < len(flights); j++ {
			a, b := flights[i], flights[j]
			if a.Overlaps(b) && a.Assigned() && a.Runway == b.Runway {
				violations = append(violations, fmt.Sprintf(
					"conflict: %s and %s both assigned to runway %d", a.ID, b.ID, a.Runway))
			}
		}
	}
	return len(violations) == 0, violations
}
