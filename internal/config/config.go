package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetFloat parses key as a finite float64, falling back on absence, parse
// failure, NaN or Inf.
func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		log.Printf("config: invalid float %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

// GetDuration parses key with time.ParseDuration, falling back on absence or parse failure.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return d
}

// GetInt parses key as an int, falling back on absence or parse failure.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return n
}
