// Command airsidevis provides a GUI Gantt view of runway schedules.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/airside-scheduler/internal/config"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
	"github.com/elektrokombinacija/airside-scheduler/internal/gen"
	"github.com/elektrokombinacija/airside-scheduler/internal/vis"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (default: generated demo)")
	seed := flag.Int64("seed", 1, "seed for the generated demo")
	runways := flag.Int("runways", 2, "initial runway capacity")
	flag.Parse()

	flights, limits, err := loadFlights(*scenarioPath, *seed)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Airside Scheduler"),
			app.Size(unit.Dp(1400), unit.Dp(900)),
		)

		application := vis.NewApp(flights, *runways, limits.CapacityKnobs())
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadFlights(scenarioPath string, seed int64) ([]*core.Flight, config.Limits, error) {
	if scenarioPath != "" {
		sc, err := config.LoadScenario(scenarioPath)
		if err != nil {
			return nil, config.Limits{}, err
		}
		return sc.BuildFlights(), sc.Limits, nil
	}

	p := gen.DefaultParams()
	p.Seed = seed
	p.Days = 1
	return gen.Flights(p), config.Default(), nil
}
