// Package algo implements the airside scheduling algorithms: minimum-runway
// coloring, capacity-constrained scheduling with delays, and duty-compliant
// crew assignment.
package algo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// Sentinel errors for requests that cannot be computed at all. Placement
// failure is never an error: it is carried in the result.
var (
	ErrInvalidFlight = errors.New("invalid flight")
	ErrEmptyCrewPool = errors.New("empty crew pool")
	ErrNoRunways     = errors.New("need at least one runway")
)

// Heuristic selects the vertex ordering for the coloring scheduler.
type Heuristic int

const (
	// HeuristicGreedy colors flights in input order.
	HeuristicGreedy Heuristic = iota
	// HeuristicDegree colors flights by descending conflict degree
	// (Welsh-Powell).
	HeuristicDegree
	// HeuristicSaturation repeatedly colors the flight with the most
	// distinct neighbor colors (DSatur). Recommended default.
	HeuristicSaturation
)

func (h Heuristic) String() string {
	return [...]string{"greedy", "welsh_powell", "dsatur"}[h]
}

// ParseHeuristic maps a heuristic name to its variant.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "greedy":
		return HeuristicGreedy, nil
	case "welsh_powell", "degree":
		return HeuristicDegree, nil
	case "dsatur", "saturation":
		return HeuristicSaturation, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q", name)
	}
}

// OrderPolicy selects the processing order for the capacity-constrained
// scheduler. Lower score is scheduled first.
type OrderPolicy int

const (
	// OrderPriority uses the raw priority value (1 = most urgent).
	OrderPriority OrderPolicy = iota
	// OrderPassengers schedules fuller flights first.
	OrderPassengers
	// OrderDistance schedules longer flights first.
	OrderDistance
	// OrderHybrid combines priority, passengers and distance with
	// configurable weights.
	OrderHybrid
)

func (p OrderPolicy) String() string {
	return [...]string{"priority_based", "passenger_first", "distance_first", "hybrid"}[p]
}

// ParseOrderPolicy maps a policy name to its variant.
func ParseOrderPolicy(name string) (OrderPolicy, error) {
	switch name {
	case "priority_based", "priority":
		return OrderPriority, nil
	case "passenger_first", "passengers":
		return OrderPassengers, nil
	case "distance_first", "distance":
		return OrderDistance, nil
	case "hybrid":
		return OrderHybrid, nil
	default:
		return 0, fmt.Errorf("unknown order policy %q", name)
	}
}

// Strategy selects which eligible crew member the duty scheduler picks.
type Strategy int

const (
	// StrategyLeastBusy picks the member with the least duty time so
	// far. Fairness-maximizing default.
	StrategyLeastBusy Strategy = iota
	// StrategyMostAvailable picks the member with the most remaining
	// duty time.
	StrategyMostAvailable
	// StrategyRoundRobin cycles through the pool, skipping ineligible
	// members without resetting the pointer.
	StrategyRoundRobin
)

func (s Strategy) String() string {
	return [...]string{"least_busy", "most_available", "round_robin"}[s]
}

// ParseStrategy maps a strategy name to its variant.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "least_busy":
		return StrategyLeastBusy, nil
	case "most_available":
		return StrategyMostAvailable, nil
	case "round_robin":
		return StrategyRoundRobin, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// sortByStart orders flights chronologically, keeping input order for
// equal starts.
func sortByStart(flights []*core.Flight) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Start.Before(flights[j].Start)
	})
}
