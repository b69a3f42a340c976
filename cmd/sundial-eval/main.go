package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/saaga0h/sundial/pkg/config"
)

// sundial-eval evaluates the configured schedule at a single instant and
// prints the result as JSON. Useful for inspecting a schedule file and for
// wiring into shell pipelines; it opens no connections and exits immediately.
func main() {
	at := pflag.String("at", "", "Instant to evaluate (RFC3339, default now)")

	cfg := config.NewConfig()
	cfg.LoadFromEnv()
	cfg.LoadFromFlags()

	sched, err := cfg.Schedule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Schedule error: %v\n", err)
		os.Exit(1)
	}

	instant := time.Now()
	if *at != "" {
		instant, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --at instant: %v\n", err)
			os.Exit(1)
		}
	}

	result := sched.Evaluate(instant)
	phase, progress := sched.Phase(instant)

	output := map[string]interface{}{
		"at":          instant.Format(time.RFC3339),
		"temperature": result.Temperature,
		"brightness":  result.Brightness,
		"phase":       string(phase),
		"progress":    progress,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
		os.Exit(1)
	}
}
