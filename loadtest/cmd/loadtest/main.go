// Package main は 負荷試験ツールのエントリーポイントを提供します。
package main

import (
	"fmt"
	"os"

	"github.com/amakane-hakari/capset/loadtest/attacker"
	"github.com/amakane-hakari/capset/loadtest/config"
	"github.com/amakane-hakari/capset/loadtest/scenario"
)

func main() {
	cfg := config.Load()

	fmt.Printf("[INFO] base-url=%s rate=%d duration=%s read-ratio=%.2f lowest-ratio=%.2f remove-ratio=%.2f keys=%d read-only=%v\n",
		cfg.BaseURL, cfg.Rate, cfg.Duration, cfg.ReadRatio, cfg.LowestRatio, cfg.RemoveRatio, cfg.Keys, cfg.ReadOnly)

	gen := scenario.NewGenerator(
		cfg.BaseURL,
		cfg.Keys,
		cfg.ReadRatio,
		cfg.LowestRatio,
		cfg.RemoveRatio,
		cfg.ReadOnly,
	)

	r := attacker.Runner{
		Rate:     cfg.Rate,
		Duration: cfg.Duration,
		Timeout:  cfg.Timeout,
		Name:     cfg.Name,
		Output:   cfg.Output,
	}

	if _, err := r.Run(gen.Targeter()); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
