// Command airside runs the runway and crew scheduling algorithms on a
// scenario and prints comparative summaries.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/algo"
	"github.com/elektrokombinacija/airside-scheduler/internal/config"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
	"github.com/elektrokombinacija/airside-scheduler/internal/gen"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (default: generated demo)")
	limitsPath := flag.String("limits", "", "YAML limits file overriding scenario/default limits")
	seed := flag.Int64("seed", 1, "seed for the generated demo scenario")
	flag.Parse()

	flights, crew, limits := loadScenario(*scenarioPath, *limitsPath, *seed)

	fmt.Println("=== Airside Scheduler ===")
	fmt.Printf("Scenario: %d flights, %d crew, max duty %v, min rest %v\n\n",
		len(flights), len(crew), limits.MaxDutyPerDay.D(), limits.MinRest.D())

	runColoring(flights)
	runCapacity(flights, limits)
	runDuty(flights, crew, limits)
	runMultiDay(flights, limits)
}

func loadScenario(scenarioPath, limitsPath string, seed int64) ([]*core.Flight, []*core.CrewMember, config.Limits) {
	limits := config.Default()
	if limitsPath != "" {
		var err error
		limits, err = config.Load(limitsPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if scenarioPath != "" {
		sc, err := config.LoadScenario(scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		if limitsPath == "" {
			limits = sc.Limits
		}
		return sc.BuildFlights(), sc.BuildCrew(), limits
	}

	p := gen.DefaultParams()
	p.Seed = seed
	flights := gen.Flights(p)
	crew := core.NewCrewPool(6, limits.DutyLimits())
	return flights, crew, limits
}

func runColoring(flights []*core.Flight) {
	fmt.Println("--- Minimum runways (graph coloring) ---")
	heuristics := []algo.Heuristic{algo.HeuristicGreedy, algo.HeuristicDegree, algo.HeuristicSaturation}
	for _, h := range heuristics {
		start := time.Now()
		res, err := algo.ColorSchedule(flights, h)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-12s runways=%d conflicts=%d time=%v\n",
			h, res.NumRunways, res.ConflictPairs, time.Since(start))
	}
	fmt.Println()
}

func runCapacity(flights []*core.Flight, limits config.Limits) {
	const maxRunways = 2
	fmt.Printf("--- Constrained scheduling (%d runways) ---\n", maxRunways)
	policies := []algo.OrderPolicy{algo.OrderPriority, algo.OrderPassengers, algo.OrderDistance, algo.OrderHybrid}
	for _, p := range policies {
		res, err := algo.CapacitySchedule(flights, maxRunways, p, limits.CapacityKnobs())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  %-16s on-time=%.1f%% delayed=%d total-delay=%v max-delay=%v\n",
			p, res.OnTimeRatio*100, len(res.Delayed), res.TotalDelay, res.MaxDelay())
	}
	fmt.Println()
}

func runDuty(flights []*core.Flight, crew []*core.CrewMember, limits config.Limits) {
	// Single-day run over the first day's flights.
	var day0 []*core.Flight
	for _, f := range flights {
		if f.Day == 0 {
			day0 = append(day0, f)
		}
	}

	fmt.Printf("--- Crew assignment (day 0, %d flights) ---\n", len(day0))
	strategies := []algo.Strategy{algo.StrategyLeastBusy, algo.StrategyMostAvailable, algo.StrategyRoundRobin}
	for _, s := range strategies {
		pool := core.NewCrewPool(len(crew), limits.DutyLimits())
		res, err := algo.DutySchedule(day0, pool, s)
		if err != nil {
			log.Fatal(err)
		}
		valid, violations := algo.ValidateAssignments(res.Assignments, limits.MaxDutyPerDay.D(), limits.MinRest.D())
		fmt.Printf("  %-15s assigned=%d unassigned=%d compliance=%.1f%% crew-used=%d valid=%v\n",
			s, len(res.Assignments), len(res.Unassigned), res.ComplianceRate, res.CrewUsed, valid)
		for _, v := range violations {
			fmt.Printf("    violation: %s\n", v)
		}
	}
	fmt.Println()
}

func runMultiDay(flights []*core.Flight, limits config.Limits) {
	fmt.Println("--- Multi-day crew assignment ---")
	pool := core.NewCrewPool(8, limits.DutyLimits())
	res, err := algo.MultiDaySchedule(flights, pool, algo.StrategyLeastBusy)
	if err != nil {
		log.Fatal(err)
	}

	for _, day := range res.SortedDays() {
		dayRes := res.Days[day]
		fmt.Printf("  day %d: assigned=%d unassigned=%d compliance=%.1f%%\n",
			day, len(dayRes.Assignments), len(dayRes.Unassigned), dayRes.ComplianceRate)
	}
	valid, _ := algo.ValidateAssignments(res.AllAssignments, limits.MaxDutyPerDay.D(), limits.MinRest.D())
	fmt.Printf("  overall: compliance=%.1f%% crew-used=%d valid=%v\n",
		res.OverallCompliance, res.CrewUsed, valid)
}
