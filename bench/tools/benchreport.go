// Package main parses `go test -bench` output into a JSON report.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// BenchResult represents a single benchmark result with its metrics.
type BenchResult struct {
	Name     string             `json:"name"`
	Category string             `json:"category,omitempty"` // "standard" or "scale"
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchReport represents a whole benchmark run.
type BenchReport struct {
	Timestamp  string        `json:"timestamp"`
	GoVersion  string        `json:"go_version,omitempty"`
	SystemInfo string        `json:"system_info,omitempty"`
	Results    []BenchResult `json:"results"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Scale benchmarks run once and report their own rate metrics, so the
// derived ops_per_sec is skipped for them.
var scaleBenchmarks = map[string]bool{
	"SortMillionElements": true,
	"TableMillionEntries": true,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run benchreport.go <benchmark_output_file> [report_file]")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}
	content := string(data)

	report := BenchReport{
		Timestamp: time.Now().Format(time.RFC3339),
		Results:   []BenchResult{},
	}

	if sysMatch := regexp.MustCompile(`goos:.+goarch:.+`).FindString(content); sysMatch != "" {
		report.SystemInfo = strings.TrimSpace(sysMatch)
	}
	if verMatch := regexp.MustCompile(`go\d+\.\d+(?:\.\d+)?`).FindString(content); verMatch != "" {
		report.GoVersion = verMatch
	}

	benchRegex := regexp.MustCompile(`Benchmark([\w/,]+?)(?:-\d+)?\s+(\d+)\s+(\d+\.?\d*)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)
	for _, matches := range benchRegex.FindAllStringSubmatch(content, -1) {
		name := matches[1]
		ops, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		metrics := map[string]float64{
			"operations": float64(ops),
			"ns_per_op":  nsPerOp,
		}
		category := "standard"
		if scaleBenchmarks[name] {
			category = "scale"
		} else if nsPerOp > 0 {
			metrics["ops_per_sec"] = 1_000_000_000 / nsPerOp
		}

		if len(matches) > 4 && matches[4] != "" {
			bytesPerOp, _ := strconv.Atoi(matches[4])
			metrics["bytes_per_op"] = float64(bytesPerOp)
		}
		if len(matches) > 5 && matches[5] != "" {
			allocsPerOp, _ := strconv.Atoi(matches[5])
			metrics["allocs_per_op"] = float64(allocsPerOp)
		}

		report.Results = append(report.Results, BenchResult{
			Name:     name,
			Category: category,
			Metrics:  metrics,
		})
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	outFile := "benchmark_report.json"
	if len(os.Args) >= 3 {
		outFile = os.Args[2]
	}
	if err := os.WriteFile(outFile, jsonData, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report written to: %s\n", outFile)
}
