package algo

import (
	"fmt"
	"sort"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// MultiDayResult aggregates duty scheduling across several days.
type MultiDayResult struct {
	Days              map[int]*DutyResult
	AllAssignments    []core.Assignment
	Unassigned        []*core.Flight
	CrewUsed          int
	OverallCompliance float64 // Weighted by flights per day
	// DailyHours maps crew id to duty time per day.
	DailyHours map[core.CrewID]map[int]time.Duration
}

// MultiDaySchedule runs duty scheduling day by day. At each day boundary
// every member's cumulative duty time resets to zero, but the end of their
// last assignment carries over: rest requirements span day boundaries
// while duty-hour limits do not. The pool is mutated in place; pass a
// fresh pool per run.
func MultiDaySchedule(flights []*core.Flight, crew []*core.CrewMember, strategy Strategy) (*MultiDayResult, error) {
	if err := core.ValidateFlights(flights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlight, err)
	}
	if len(flights) > 0 && len(crew) == 0 {
		return nil, ErrEmptyCrewPool
	}

	res := &MultiDayResult{
		Days:              make(map[int]*DutyResult),
		DailyHours:        make(map[core.CrewID]map[int]time.Duration),
		OverallCompliance: 100,
	}
	if len(flights) == 0 {
		return res, nil
	}

	byDay := make(map[int][]*core.Flight)
	for _, f := range flights {
		byDay[f.Day] = append(byDay[f.Day], f)
	}
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	// One scheduler for the whole horizon: the round-robin pointer must
	// survive day boundaries, only the duty counters reset.
	s := &dutyScheduler{crew: crew, strategy: strategy}
	crewUsed := make(map[core.CrewID]bool)
	for _, day := range days {
		for _, m := range crew {
			m.ResetDay()
		}

		dayRes := s.run(byDay[day])

		res.Days[day] = dayRes
		res.AllAssignments = append(res.AllAssignments, dayRes.Assignments...)
		res.Unassigned = append(res.Unassigned, dayRes.Unassigned...)
		for _, a := range dayRes.Assignments {
			crewUsed[a.CrewID] = true
			if res.DailyHours[a.CrewID] == nil {
				res.DailyHours[a.CrewID] = make(map[int]time.Duration)
			}
			res.DailyHours[a.CrewID][day] += a.Duration()
		}
	}

	res.CrewUsed = len(crewUsed)
	res.OverallCompliance = float64(len(res.AllAssignments)) / float64(len(flights)) * 100
	return res, nil
}

// SortedDays returns the day indices present in the result in order.
// Day tags need not start at zero or be contiguous.
func (r *MultiDayResult) SortedDays() []int {
	days := make([]int, 0, len(r.Days))
	for d := range r.Days {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
