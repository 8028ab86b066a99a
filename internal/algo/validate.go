package algo

import (
	"fmt"
	"sort"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// ValidateAssignments independently re-derives every crew member's duty
// totals and rest gaps from an assignment list and reports each breach of
// the limits. It applies the same two predicates as the duty scheduler,
// so a scheduler's own output always validates clean; it exists for
// checking externally constructed or edited assignment lists.
//
// Duty totals are checked per day (assignments carry a day tag); rest
// gaps are checked across the full chronological sequence, including
// across day boundaries.
func ValidateAssignments(assignments []core.Assignment, maxDuty, minRest time.Duration) (bool, []string) {
	var violations []string

	byCrew := make(map[core.CrewID][]core.Assignment)
	for _, a := range assignments {
		byCrew[a.CrewID] = append(byCrew[a.CrewID], a)
	}
	crews := make([]core.CrewID, 0, len(byCrew))
	for id := range byCrew {
		crews = append(crews, id)
	}
	sort.Slice(crews, func(i, j int) bool { return crews[i] < crews[j] })

	for _, id := range crews {
		seq := byCrew[id]
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Start.Before(seq[j].Start) })

		// Duty totals per day.
		dayTotals := make(map[int]time.Duration)
		for _, a := range seq {
			prev := dayTotals[a.Day]
			if !core.WithinDutyLimit(prev, a.Duration(), maxDuty) {
				violations = append(violations, fmt.Sprintf(
					"crew %s day %d: duty time %v exceeds limit %v",
					id, a.Day, prev+a.Duration(), maxDuty))
			}
			dayTotals[a.Day] = prev + a.Duration()
		}

		// Rest gaps between consecutive assignments.
		for i := 1; i < len(seq); i++ {
			prev, next := seq[i-1], seq[i]
			if !core.RestSatisfied(prev.End, next.Start, minRest) {
				violations = append(violations, fmt.Sprintf(
					"crew %s: insufficient rest between %s and %s: %v < %v",
					id, prev.FlightID, next.FlightID, next.Start.Sub(prev.End), minRest))
			}
		}
	}

	return len(violations) == 0, violations
}
