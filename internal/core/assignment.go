package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assignment binds one crew member to one flight. Start and End are
// copied from the flight at assignment time so later flight mutation
// cannot corrupt the record.
type Assignment struct {
	ID         uuid.UUID
	CrewID     CrewID
	FlightID   FlightID
	AssignedAt time.Time
	Start      time.Time
	End        time.Time
	Day        int
}

// NewAssignment creates an assignment record for a flight, copying its
// realized window.
func NewAssignment(crew CrewID, f *Flight) Assignment {
	return Assignment{
		ID:         uuid.New(),
		CrewID:     crew,
		FlightID:   f.ID,
		AssignedAt: time.Now(),
		Start:      f.Start,
		End:        f.Start.Add(f.DutyDuration()),
		Day:        f.Day,
	}
}

// Duration returns the on-duty time the assignment represents.
func (a Assignment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s -> %s | %s - %s",
		a.CrewID, a.FlightID, a.Start.Format("15:04"), a.End.Format("15:04"))
}
