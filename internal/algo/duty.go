package algo

import (
	"fmt"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// DutyResult is the outcome of duty-compliant crew assignment for one day.
type DutyResult struct {
	Assignments []core.Assignment
	Unassigned  []*core.Flight
	// Utilization maps crew id to duty time as a fraction of the daily
	// limit, for members with at least one assignment.
	Utilization    map[core.CrewID]float64
	CrewUsed       int
	ComplianceRate float64 // Assigned flights / total flights * 100
}

// dutyScheduler carries the per-run selection state. A fresh one is built
// for every call so concurrent runs never share state.
type dutyScheduler struct {
	crew      []*core.CrewMember
	strategy  Strategy
	rrPointer int // Round-robin cursor, advances without resetting
}

// DutySchedule assigns crew members to flights honoring per-member duty
// and rest limits. Flights are processed in chronological order, which is
// mandatory: eligibility depends on each member's cumulative state. A
// flight with no eligible member is reported unassigned and never retried.
// The pool is mutated in place; pass a fresh pool per run.
func DutySchedule(flights []*core.Flight, crew []*core.CrewMember, strategy Strategy) (*DutyResult, error) {
	if err := core.ValidateFlights(flights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlight, err)
	}
	if len(flights) > 0 && len(crew) == 0 {
		return nil, ErrEmptyCrewPool
	}

	s := &dutyScheduler{crew: crew, strategy: strategy}
	return s.run(flights), nil
}

func (s *dutyScheduler) run(flights []*core.Flight) *DutyResult {
	res := &DutyResult{
		Utilization:    make(map[core.CrewID]float64),
		ComplianceRate: 100,
	}
	if len(flights) == 0 {
		return res
	}

	ordered := core.CloneFlights(flights)
	sortByStart(ordered)

	for _, f := range ordered {
		member := s.selectMember(f)
		if member == nil {
			res.Unassigned = append(res.Unassigned, f)
			continue
		}
		d := f.DutyDuration()
		member.Assign(f.ID, f.Start.Add(d), d)
		res.Assignments = append(res.Assignments, core.NewAssignment(member.ID, f))
	}

	// Derive from this run's assignments: in multi-day use the pool's
	// Assigned history spans earlier days.
	used := make(map[core.CrewID]bool, len(res.Assignments))
	for _, a := range res.Assignments {
		used[a.CrewID] = true
	}
	for _, m := range s.crew {
		if used[m.ID] {
			res.CrewUsed++
			res.Utilization[m.ID] = m.Utilization()
		}
	}
	res.ComplianceRate = float64(len(res.Assignments)) / float64(len(ordered)) * 100
	return res
}

// selectMember returns the crew member to assign, or nil when no one is
// eligible.
func (s *dutyScheduler) selectMember(f *core.Flight) *core.CrewMember {
	d := f.DutyDuration()

	if s.strategy == StrategyRoundRobin {
		// Cyclic scan from the pointer, skipping ineligible members.
		// The pointer advances past the chosen member and is never reset.
		for i := 0; i < len(s.crew); i++ {
			m := s.crew[(s.rrPointer+i)%len(s.crew)]
			if m.CanFly(f.Start, d) {
				s.rrPointer = (s.rrPointer + i + 1) % len(s.crew)
				return m
			}
		}
		return nil
	}

	var best *core.CrewMember
	for _, m := range s.crew {
		if !m.CanFly(f.Start, d) {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		switch s.strategy {
		case StrategyMostAvailable:
			if m.RemainingDuty() > best.RemainingDuty() {
				best = m
			}
		default: // StrategyLeastBusy; ties keep the lower crew id
			if m.DutyTime < best.DutyTime {
				best = m
			}
		}
	}
	return best
}
