// Package main provides a performance benchmarking tool for the studentrisk CLI.
// It measures command execution times across different roster sizes,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - studentrisk binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated rosters and model files
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Roster   string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	Runs        int
	RosterSizes []int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     5 * time.Minute,
		Runs:        4,
		RosterSizes: []int{100, 1000, 10000, 100000},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the studentrisk binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if studentrisk is available
	if _, err := exec.LookPath("studentrisk"); err != nil {
		return fmt.Errorf("studentrisk binary not found in PATH")
	}

	if _, err := os.Stat(config.WorkDir); os.IsNotExist(err) {
		return fmt.Errorf("work directory not found at %s", config.WorkDir)
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured roster sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d roster sizes, %v timeout, %d runs each\n",
		len(config.RosterSizes), config.Timeout, config.Runs)

	for _, size := range config.RosterSizes {
		roster := fmt.Sprintf("students_%d", size)
		fmt.Printf("Benchmarking %s\n", roster)

		dataPath := filepath.Join(config.WorkDir, roster+".csv")
		modelPath := filepath.Join(config.WorkDir, roster+".json")

		// Generate the roster for this size
		genCmd := exec.Command("studentrisk", "sample", "--data", dataPath, "--count", fmt.Sprintf("%d", size))
		if output, err := genCmd.CombinedOutput(); err != nil {
			fmt.Printf("Warning: failed to generate %s: %v\nOutput: %s\n", roster, err, string(output))
			continue
		}

		// Rank benchmark
		args := fmt.Sprintf("--data %s", dataPath)
		result := runBenchmarkSuite(config, roster, "rank", "risk ranking", args)
		results = append(results, result)

		// Train benchmark
		args = fmt.Sprintf("--data %s --model %s", dataPath, modelPath)
		result = runBenchmarkSuite(config, roster, "train", "model training", args)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs the cold and warm benchmark phases for a command
func runBenchmarkSuite(config BenchmarkConfig, roster, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s (%d runs)\n", description, roster, config.Runs)

	coldTime, warmTimes := runBenchmark(config, command, extraArgs)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Roster:   roster,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a studentrisk command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, command, extraArgs string) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, "--backend", "none"}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("studentrisk", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	if command == "train" {
		completionPhrase = "Training completed in"
	} else {
		completionPhrase = "Ranking completed in"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/studentrisk_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"roster", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Roster, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "rank", "Risk Ranking:")
	printCommandSummary(results, "train", "Model Training:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-14s: Cold: %s, Warm: %s\n", result.Roster, result.ColdTime, result.WarmTime)
		}
	}
}
