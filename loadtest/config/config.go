package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BaseURL     string
	Keys        int
	ReadRatio   float64
	LowestRatio float64
	RemoveRatio float64
	Rate        int
	Duration    time.Duration
	Output      string
	Timeout     time.Duration
	Name        string
	ReadOnly    bool
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	var c Config

	defaultBase := envOr("LT_BASE_URL", "http://localhost:8080")
	defaultKeys := parseIntEnv("LT_KEYS", 5000)
	defaultRead := parseFloatEnv("LT_READ_RATIO", 0.8)
	defaultLowest := parseFloatEnv("LT_LOWEST_RATIO", 0.2)
	defaultRemove := parseFloatEnv("LT_REMOVE_RATIO", 0.1)
	defaultRate := parseIntEnv("LT_RATE", 100)
	defaultDuration := envOr("LT_DURATION", "30s")
	defaultOutput := envOr("LT_OUTPUT", "vegeta_results.bin")
	defaultTimeout := envOr("LT_TIMEOUT", "5s")
	defaultName := envOr("LT_NAME", "mixed")
	readOnly := os.Getenv("LT_READ_ONLY") == "1" || os.Getenv("LT_READ_ONLY") == "true"

	dur, _ := time.ParseDuration(defaultDuration)
	to, _ := time.ParseDuration(defaultTimeout)

	flag.StringVar(&c.BaseURL, "base-url", defaultBase, "Base URL of the capped set server")
	flag.IntVar(&c.Keys, "keys", defaultKeys, "Number of distinct identifiers to exercise")
	flag.Float64Var(&c.ReadRatio, "read-ratio", defaultRead, "Ratio of read operations")
	flag.Float64Var(&c.LowestRatio, "lowest-ratio", defaultLowest, "Ratio of reads that hit /lowest")
	flag.Float64Var(&c.RemoveRatio, "remove-ratio", defaultRemove, "Ratio of writes that are DELETEs")
	flag.IntVar(&c.Rate, "rate", defaultRate, "Rate limit for requests")
	flag.DurationVar(&c.Duration, "duration", dur, "Duration of the load test")
	flag.StringVar(&c.Output, "output", defaultOutput, "Output file for raw results")
	flag.DurationVar(&c.Timeout, "timeout", to, "Request timeout")
	flag.StringVar(&c.Name, "name", defaultName, "Name of the load test")
	flag.BoolVar(&c.ReadOnly, "read-only", readOnly, "Disable write requests")

	flag.Parse()
	return &c
}
