package algo

import (
	"errors"
	"testing"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// mkDutyFlight builds a flight with an explicit duty duration.
func mkDutyFlight(id string, startMin int, duty time.Duration) *core.Flight {
	f := mkFlight(id, startMin, 15)
	f.FlightDuration = duty
	return f
}

func TestDutyScheduleRestViolation(t *testing.T) {
	// One pilot, two 2-hour flights 3 hours apart: the second would leave
	// only a 1-hour gap, far short of the 10-hour rest requirement.
	flights := []*core.Flight{
		mkDutyFlight("FL1", 0, 2*time.Hour),
		mkDutyFlight("FL2", 180, 2*time.Hour),
	}
	pool := core.NewCrewPool(1, core.DefaultDutyLimits())

	res, err := DutySchedule(flights, pool, StrategyLeastBusy)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Assignments) != 1 || res.Assignments[0].FlightID != "FL1" {
		t.Fatalf("assignments = %v, want only FL1", res.Assignments)
	}
	if len(res.Unassigned) != 1 || res.Unassigned[0].ID != "FL2" {
		t.Errorf("unassigned = %v, want FL2", res.Unassigned)
	}
	if res.ComplianceRate != 50 {
		t.Errorf("ComplianceRate = %v, want 50", res.ComplianceRate)
	}
	if res.CrewUsed != 1 {
		t.Errorf("CrewUsed = %d, want 1", res.CrewUsed)
	}
}

func TestDutyScheduleDutyLimit(t *testing.T) {
	// No rest requirement, 3h daily limit: the third 90-minute flight
	// would push the pilot to 4.5h and must go unassigned.
	limits := core.DutyLimits{MaxDuty: 3 * time.Hour, MinRest: 0}
	flights := []*core.Flight{
		mkDutyFlight("FL1", 0, 90*time.Minute),
		mkDutyFlight("FL2", 120, 90*time.Minute),
		mkDutyFlight("FL3", 240, 90*time.Minute),
	}
	pool := core.NewCrewPool(1, limits)

	res, err := DutySchedule(flights, pool, StrategyLeastBusy)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(res.Assignments))
	}
	if len(res.Unassigned) != 1 || res.Unassigned[0].ID != "FL3" {
		t.Errorf("unassigned = %v, want FL3", res.Unassigned)
	}
}

func TestDutyScheduleChronologicalOrder(t *testing.T) {
	// Input deliberately out of order: the scheduler must process by
	// start time, so the early flight wins the pilot's duty budget.
	limits := core.DutyLimits{MaxDuty: 2 * time.Hour, MinRest: 0}
	flights := []*core.Flight{
		mkDutyFlight("LATER", 300, 2*time.Hour),
		mkDutyFlight("EARLY", 0, 2*time.Hour),
	}
	pool := core.NewCrewPool(1, limits)

	res, err := DutySchedule(flights, pool, StrategyLeastBusy)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Assignments) != 1 || res.Assignments[0].FlightID != "EARLY" {
		t.Errorf("assignments = %v, want EARLY", res.Assignments)
	}
}

func TestDutyScheduleLeastBusy(t *testing.T) {
	// Two pilots, no rest requirement: least_busy alternates because the
	// pilot who just flew is always the busier one.
	limits := core.DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 0}
	flights := []*core.Flight{
		mkDutyFlight("FL1", 0, time.Hour),
		mkDutyFlight("FL2", 90, time.Hour),
		mkDutyFlight("FL3", 180, time.Hour),
		mkDutyFlight("FL4", 270, time.Hour),
	}
	pool := core.NewCrewPool(2, limits)

	res, err := DutySchedule(flights, pool, StrategyLeastBusy)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.CrewID{"P001", "P002", "P001", "P002"}
	for i, a := range res.Assignments {
		if a.CrewID != want[i] {
			t.Errorf("assignment %d: crew = %s, want %s", i, a.CrewID, want[i])
		}
	}
	if res.CrewUsed != 2 {
		t.Errorf("CrewUsed = %d, want 2", res.CrewUsed)
	}
}

func TestDutyScheduleMostAvailable(t *testing.T) {
	limits := core.DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 0}
	pool := core.NewCrewPool(2, limits)
	// P001 starts the day with 4h already logged.
	pool[0].DutyTime = 4 * time.Hour

	flights := []*core.Flight{mkDutyFlight("FL1", 0, time.Hour)}
	res, err := DutySchedule(flights, pool, StrategyMostAvailable)
	if err != nil {
		t.Fatal(err)
	}
	if res.Assignments[0].CrewID != "P002" {
		t.Errorf("crew = %s, want P002 (most remaining duty)", res.Assignments[0].CrewID)
	}
}

func TestDutyScheduleRoundRobin(t *testing.T) {
	limits := core.DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 0}
	flights := []*core.Flight{
		mkDutyFlight("FL1", 0, time.Hour),
		mkDutyFlight("FL2", 90, time.Hour),
		mkDutyFlight("FL3", 180, time.Hour),
		mkDutyFlight("FL4", 270, time.Hour),
	}
	pool := core.NewCrewPool(3, limits)

	res, err := DutySchedule(flights, pool, StrategyRoundRobin)
	if err != nil {
		t.Fatal(err)
	}
	// The pointer cycles and wraps without resetting.
	want := []core.CrewID{"P001", "P002", "P003", "P001"}
	for i, a := range res.Assignments {
		if a.CrewID != want[i] {
			t.Errorf("assignment %d: crew = %s, want %s", i, a.CrewID, want[i])
		}
	}
}

func TestDutyScheduleRoundRobinSkipsIneligible(t *testing.T) {
	limits := core.DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 0}
	pool := core.NewCrewPool(2, limits)
	// P001 has no duty budget left; round robin must skip to P002 both times.
	pool[0].DutyTime = 8 * time.Hour

	flights := []*core.Flight{
		mkDutyFlight("FL1", 0, time.Hour),
		mkDutyFlight("FL2", 90, time.Hour),
	}
	res, err := DutySchedule(flights, pool, StrategyRoundRobin)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range res.Assignments {
		if a.CrewID != "P002" {
			t.Errorf("assignment %d: crew = %s, want P002", i, a.CrewID)
		}
	}
}

func TestDutyScheduleErrors(t *testing.T) {
	t.Run("empty pool with flights", func(t *testing.T) {
		_, err := DutySchedule([]*core.Flight{mkDutyFlight("FL1", 0, time.Hour)}, nil, StrategyLeastBusy)
		if !errors.Is(err, ErrEmptyCrewPool) {
			t.Errorf("error = %v, want ErrEmptyCrewPool", err)
		}
	})
	t.Run("empty pool without flights", func(t *testing.T) {
		res, err := DutySchedule(nil, nil, StrategyLeastBusy)
		if err != nil {
			t.Fatalf("empty request should succeed, got %v", err)
		}
		if res.ComplianceRate != 100 {
			t.Errorf("ComplianceRate = %v, want 100", res.ComplianceRate)
		}
	})
	t.Run("invalid flight", func(t *testing.T) {
		bad := mkFlight("X", 0, 15)
		bad.ID = ""
		pool := core.NewCrewPool(1, core.DefaultDutyLimits())
		if _, err := DutySchedule([]*core.Flight{bad}, pool, StrategyLeastBusy); !errors.Is(err, ErrInvalidFlight) {
			t.Errorf("error = %v, want ErrInvalidFlight", err)
		}
	})
}

func TestDutyScheduleUtilization(t *testing.T) {
	limits := core.DutyLimits{MaxDuty: 8 * time.Hour, MinRest: 0}
	pool := core.NewCrewPool(2, limits)
	flights := []*core.Flight{mkDutyFlight("FL1", 0, 4*time.Hour)}

	res, err := DutySchedule(flights, pool, StrategyLeastBusy)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Utilization["P001"]; got != 0.5 {
		t.Errorf("P001 utilization = %v, want 0.5", got)
	}
	if _, ok := res.Utilization["P002"]; ok {
		t.Error("idle crew should not appear in utilization")
	}
}
