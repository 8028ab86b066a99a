// Package main provides a benchmark runner for the scheduling algorithms.
// Runs every coloring heuristic and ordering policy over generated flight
// batches and collects metrics.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/airside-scheduler/internal/algo"
	"github.com/elektrokombinacija/airside-scheduler/internal/config"
	"github.com/elektrokombinacija/airside-scheduler/internal/core"
	"github.com/elektrokombinacija/airside-scheduler/internal/gen"
)

// BenchmarkResult stores results from a single algorithm run.
type BenchmarkResult struct {
	Timestamp     string
	CommitHash    string
	GoVersion     string
	OS            string
	Arch          string
	Instance      string
	NumFlights    int
	Algorithm     string
	RuntimeMs     float64
	NumRunways    int
	Conflicts     int
	OnTimePct     float64
	TotalDelayM   float64
	CompliancePct float64
}

// AlgoMetrics holds per-algorithm aggregated metrics.
type AlgoMetrics struct {
	Name            string
	TotalRuns       int
	TotalRuntimeMs  float64
	TotalRunways    int
	TotalOnTimePct  float64
	TotalDelayM     float64
	TotalCompliance float64
}

var heuristics = []algo.Heuristic{
	algo.HeuristicGreedy,
	algo.HeuristicDegree,
	algo.HeuristicSaturation,
}

var policies = []algo.OrderPolicy{
	algo.OrderPriority,
	algo.OrderPassengers,
	algo.OrderDistance,
	algo.OrderHybrid,
}

var strategies = []algo.Strategy{
	algo.StrategyLeastBusy,
	algo.StrategyMostAvailable,
	algo.StrategyRoundRobin,
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func baseResult(instance string, numFlights int, name string) *BenchmarkResult {
	return &BenchmarkResult{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		CommitHash: getGitCommit(),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Instance:   instance,
		NumFlights: numFlights,
		Algorithm:  name,
	}
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"instance", "num_flights", "algorithm",
		"runtime_ms", "num_runways", "conflicts", "on_time_pct", "total_delay_min",
		"compliance_pct",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Instance, fmt.Sprintf("%d", r.NumFlights), r.Algorithm,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%d", r.NumRunways),
			fmt.Sprintf("%d", r.Conflicts), fmt.Sprintf("%.1f", r.OnTimePct),
			fmt.Sprintf("%.1f", r.TotalDelayM), fmt.Sprintf("%.1f", r.CompliancePct),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(results []*BenchmarkResult) {
	metrics := make(map[string]*AlgoMetrics)
	for _, r := range results {
		m, ok := metrics[r.Algorithm]
		if !ok {
			m = &AlgoMetrics{Name: r.Algorithm}
			metrics[r.Algorithm] = m
		}
		m.TotalRuns++
		m.TotalRuntimeMs += r.RuntimeMs
		m.TotalRunways += r.NumRunways
		m.TotalOnTimePct += r.OnTimePct
		m.TotalDelayM += r.TotalDelayM
		m.TotalCompliance += r.CompliancePct
	}

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-18s %6s %12s %10s %9s %12s %11s\n",
		"Algorithm", "Runs", "Avg Time(ms)", "AvgRunways", "OnTime%", "AvgDelay(m)", "Compliance%")
	fmt.Println(strings.Repeat("-", 84))

	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := metrics[name]
		n := float64(m.TotalRuns)
		fmt.Printf("%-18s %6d %12.2f %10.2f %8.1f%% %12.1f %10.1f%%\n",
			m.Name, m.TotalRuns, m.TotalRuntimeMs/n, float64(m.TotalRunways)/n,
			m.TotalOnTimePct/n, m.TotalDelayM/n, m.TotalCompliance/n)
	}
}

func main() {
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	seeds := flag.Int("seeds", 5, "Number of seeds per instance size")
	maxRunways := flag.Int("runways", 2, "Runway capacity for constrained runs")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	sizes := []int{10, 25, 50, 100, 200}
	limits := config.Default()
	knobs := limits.CapacityKnobs()
	base := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	var results []*BenchmarkResult
	for _, size := range sizes {
		for seed := int64(1); seed <= int64(*seeds); seed++ {
			instance := fmt.Sprintf("n%d-s%d", size, seed)
			flights := gen.SingleDay(seed, size, base)

			for _, h := range heuristics {
				r := baseResult(instance, size, h.String())
				start := time.Now()
				res, err := algo.ColorSchedule(flights, h)
				r.RuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s %s: %v\n", instance, h, err)
					continue
				}
				r.NumRunways = res.NumRunways
				r.Conflicts = res.ConflictPairs
				results = append(results, r)
				if *verbose {
					fmt.Printf("%s %-12s runways=%d %.2fms\n", instance, h, res.NumRunways, r.RuntimeMs)
				}
			}

			for _, s := range strategies {
				r := baseResult(instance, size, s.String())
				pool := core.NewCrewPool(size/4+1, limits.DutyLimits())
				start := time.Now()
				res, err := algo.DutySchedule(flights, pool, s)
				r.RuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s %s: %v\n", instance, s, err)
					continue
				}
				r.CompliancePct = res.ComplianceRate
				results = append(results, r)
				if *verbose {
					fmt.Printf("%s %-15s compliance=%.1f%% %.2fms\n", instance, s, r.CompliancePct, r.RuntimeMs)
				}
			}

			for _, p := range policies {
				r := baseResult(instance, size, p.String())
				start := time.Now()
				res, err := algo.CapacitySchedule(flights, *maxRunways, p, knobs)
				r.RuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s %s: %v\n", instance, p, err)
					continue
				}
				r.NumRunways = *maxRunways
				r.OnTimePct = res.OnTimeRatio * 100
				r.TotalDelayM = res.TotalDelay.Minutes()
				results = append(results, r)
				if *verbose {
					fmt.Printf("%s %-16s on-time=%.1f%% %.2fms\n", instance, p, r.OnTimePct, r.RuntimeMs)
				}
			}
		}
	}

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d results to %s\n", len(results), *outputFile)
	printSummary(results)
}
