// Package gen produces deterministic flight batches for demos, benchmarks
// and tests.
package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/core"
)

// Params control flight generation.
type Params struct {
	Seed          int64
	Destination   string
	Days          int // 1 for a single-day batch
	FlightsPerDay int
	Base          time.Time // First departure window opens here
	SpreadHours   int       // Flights spread over this many hours per day
}

// DefaultParams returns a small reproducible multi-day setup.
func DefaultParams() Params {
	return Params{
		Seed:          1,
		Destination:   "JFK",
		Days:          3,
		FlightsPerDay: 15,
		Base:          time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC),
		SpreadHours:   16,
	}
}

var airports = []string{
	"JFK", "LAX", "ORD", "DFW", "ATL", "SFO", "MIA", "BOS", "SEA", "DEN",
	"LAS", "PHX", "IAH", "MCO", "EWR", "MSP", "DTW", "PHL", "LGA", "BWI",
}

// Route classes with passenger and distance ranges.
type routeClass struct {
	name           string
	minPax, maxPax int
	minKM, maxKM   float64
}

var routeClasses = []routeClass{
	{"short", 50, 150, 200, 1000},
	{"medium", 120, 250, 1000, 3000},
	{"long", 200, 400, 3000, 8000},
}

// Flights generates the configured batch. The same params always produce
// the same flights.
func Flights(p Params) []*core.Flight {
	rng := rand.New(rand.NewSource(p.Seed))
	if p.Days < 1 {
		p.Days = 1
	}

	var out []*core.Flight
	n := 0
	for day := 0; day < p.Days; day++ {
		dayBase := p.Base.AddDate(0, 0, day)
		for i := 0; i < p.FlightsPerDay; i++ {
			n++
			class := routeClasses[rng.Intn(len(routeClasses))]
			origin := airports[rng.Intn(len(airports))]
			for origin == p.Destination {
				origin = airports[rng.Intn(len(airports))]
			}

			offset := time.Duration(rng.Intn(p.SpreadHours*60)) * time.Minute
			occupancy := time.Duration(10+rng.Intn(11)) * time.Minute
			distance := class.minKM + rng.Float64()*(class.maxKM-class.minKM)

			out = append(out, &core.Flight{
				ID:          core.FlightID(fmt.Sprintf("FL%04d", n)),
				Origin:      origin,
				Destination: p.Destination,
				Start:       dayBase.Add(offset),
				Occupancy:   occupancy,
				Priority:    1 + rng.Intn(10),
				Passengers:  class.minPax + rng.Intn(class.maxPax-class.minPax+1),
				DistanceKM:  distance,
				// Rough cruise estimate at 800 km/h plus turnaround.
				FlightDuration: time.Duration(distance/800*float64(time.Hour)) + 30*time.Minute,
				Day:            day,
			})
		}
	}
	return out
}

// SingleDay is shorthand for a one-day batch of n flights.
func SingleDay(seed int64, n int, base time.Time) []*core.Flight {
	p := DefaultParams()
	p.Seed = seed
	p.Days = 1
	p.FlightsPerDay = n
	p.Base = base
	return Flights(p)
}
