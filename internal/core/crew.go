package core

import (
	"fmt"
	"time"
)

// CrewID is a unique crew member identifier.
type CrewID string

// DutyLimits are the regulatory limits applied to every crew member.
type DutyLimits struct {
	MaxDuty time.Duration // Max cumulative on-duty time per day
	MinRest time.Duration // Min rest between the end of one flight and the start of the next
}

// DefaultDutyLimits returns the FAA-style defaults: 8h duty, 10h rest.
func DefaultDutyLimits() DutyLimits {
	return DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 10 * time.Hour}
}

// Validate checks limits.
func (l DutyLimits) Validate() error {
	if l.MaxDuty <= 0 {
		return fmt.Errorf("duty limits: max duty must be positive, got %v", l.MaxDuty)
	}
	if l.MinRest < 0 {
		return fmt.Errorf("duty limits: min rest cannot be negative, got %v", l.MinRest)
	}
	return nil
}

// WithinDutyLimit reports whether adding d to an accumulated duty time
// stays within the limit. Shared by the duty scheduler and the validator.
func WithinDutyLimit(accumulated, d, limit time.Duration) bool {
	return accumulated+d <= limit
}

// RestSatisfied reports whether the gap between a previous assignment's
// end and the next start meets the rest requirement. A zero lastEnd means
// no prior assignment, which is always rest-eligible. Shared by the duty
// scheduler and the validator.
func RestSatisfied(lastEnd, start time.Time, minRest time.Duration) bool {
	if lastEnd.IsZero() {
		return true
	}
	return start.Sub(lastEnd) >= minRest
}

// CrewMember represents a pilot available for assignments.
type CrewMember struct {
	ID            CrewID
	Name          string
	Certification string
	Limits        DutyLimits

	Assigned []FlightID    // Flight ids assigned so far
	LastEnd  time.Time     // End of the most recent assignment; zero = none
	DutyTime time.Duration // Cumulative on-duty time in the current day
}

// CanFly checks whether the member can take a flight starting at start
// with the given duty duration.
func (c *CrewMember) CanFly(start time.Time, d time.Duration) bool {
	return WithinDutyLimit(c.DutyTime, d, c.Limits.MaxDuty) &&
		RestSatisfied(c.LastEnd, start, c.Limits.MinRest)
}

// Assign records a flight against the member's duty state. The caller is
// responsible for checking CanFly first.
func (c *CrewMember) Assign(id FlightID, end time.Time, d time.Duration) {
	c.Assigned = append(c.Assigned, id)
	c.LastEnd = end
	c.DutyTime += d
}

// RemainingDuty returns the duty time left in the current day.
func (c *CrewMember) RemainingDuty() time.Duration {
	if c.DutyTime >= c.Limits.MaxDuty {
		return 0
	}
	return c.Limits.MaxDuty - c.DutyTime
}

// Utilization returns DutyTime as a fraction of the daily limit, 0..1.
func (c *CrewMember) Utilization() float64 {
	if c.Limits.MaxDuty <= 0 {
		return 0
	}
	return float64(c.DutyTime) / float64(c.Limits.MaxDuty)
}

// AvailableAt returns the earliest instant the member may start another
// flight, or the zero time if available immediately.
func (c *CrewMember) AvailableAt() time.Time {
	if c.LastEnd.IsZero() {
		return time.Time{}
	}
	return c.LastEnd.Add(c.Limits.MinRest)
}

// ResetDay clears the cumulative duty counter for a new day. LastEnd is
// left untouched: rest requirements span day boundaries.
func (c *CrewMember) ResetDay() {
	c.DutyTime = 0
}

func (c *CrewMember) String() string {
	return fmt.Sprintf("%s (%s) | %s | flights: %d | duty: %v/%v",
		c.ID, c.Name, c.Certification, len(c.Assigned), c.DutyTime, c.Limits.MaxDuty)
}

var crewNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"White", "Harris", "Clark", "Lewis", "Lee", "Walker", "Hall", "Allen",
	"Young", "King", "Wright", "Scott", "Green", "Baker", "Adams", "Nelson",
}

// NewCrewPool generates a fresh pool of n crew members with the given
// limits. Each scheduling run should receive its own pool: members are
// mutated in place during a run.
func NewCrewPool(n int, limits DutyLimits) []*CrewMember {
	pool := make([]*CrewMember, 0, n)
	for i := 0; i < n; i++ {
		name := "Capt. " + crewNames[i%len(crewNames)]
		if i >= len(crewNames) {
			name = fmt.Sprintf("%s %d", name, i/len(crewNames)+1)
		}
		pool = append(pool, &CrewMember{
			ID:            CrewID(fmt.Sprintf("P%03d", i+1)),
			Name:          name,
			Certification: "ATP",
			Limits:        limits,
		})
	}
	return pool
}
