package core

import "sort"

// ConflictGraph is an undirected graph over flights where an edge joins
// two flights whose occupancy windows overlap.
type ConflictGraph struct {
	flights  []*Flight
	byID     map[FlightID]*Flight
	adjacent map[FlightID]map[FlightID]bool
	edges    int
}

// BuildConflictGraph tests every flight pair with the shared overlap
// predicate. O(n^2), which is fine at the documented scale. Flights are
// not modified.
func BuildConflictGraph(flights []*Flight) *ConflictGraph {
	g := &ConflictGraph{
		flights:  flights,
		byID:     make(map[FlightID]*Flight, len(flights)),
		adjacent: make(map[FlightID]map[FlightID]bool, len(flights)),
	}
	for _, f := range flights {
		g.byID[f.ID] = f
		g.adjacent[f.ID] = make(map[FlightID]bool)
	}
	for i := 0; i < len(flights); i++ {
		for j := i + 1; j < len(flights); j++ {
			if flights[i].Overlaps(flights[j]) {
				g.adjacent[flights[i].ID][flights[j].ID] = true
				g.adjacent[flights[j].ID][flights[i].ID] = true
				g.edges++
			}
		}
	}
	return g
}

// Flights returns the vertices in insertion order.
func (g *ConflictGraph) Flights() []*Flight {
	return g.flights
}

// FlightByID finds a flight by id.
func (g *ConflictGraph) FlightByID(id FlightID) *Flight {
	return g.byID[id]
}

// Neighbors returns the ids conflicting with id, sorted for determinism.
func (g *ConflictGraph) Neighbors(id FlightID) []FlightID {
	set := g.adjacent[id]
	out := make([]FlightID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasConflict reports whether two flights conflict.
func (g *ConflictGraph) HasConflict(a, b FlightID) bool {
	return g.adjacent[a][b]
}

// Degree returns the number of conflicts for a flight.
func (g *ConflictGraph) Degree(id FlightID) int {
	return len(g.adjacent[id])
}

// EdgeCount returns the total number of conflicting pairs.
func (g *ConflictGraph) EdgeCount() int {
	return g.edges
}

// Len returns the number of vertices.
func (g *ConflictGraph) Len() int {
	return len(g.flights)
}

// MaxDegree returns the most conflicted flight and its degree, or
// ("", 0) for an empty graph.
func (g *ConflictGraph) MaxDegree() (FlightID, int) {
	var maxID FlightID
	maxDeg := -1
	for _, f := range g.flights {
		if d := g.Degree(f.ID); d > maxDeg {
			maxDeg = d
			maxID = f.ID
		}
	}
	if maxDeg < 0 {
		return "", 0
	}
	return maxID, maxDeg
}

// AdjacencySets returns a copy of the adjacency structure keyed by
// flight id, with neighbor lists sorted.
func (g *ConflictGraph) AdjacencySets() map[FlightID][]FlightID {
	out := make(map[FlightID][]FlightID, len(g.adjacent))
	for id := range g.adjacent {
		out[id] = g.Neighbors(id)
	}
	return out
}
