package services

import (
	"os"
	"strconv"
	"time"
)

// FetchDelay is the simulated network latency applied to fetch-style reads.
// Tests construct services with zero delay.
type FetchDelay time.Duration

func FetchDelayFromEnv() FetchDelay {
	ms := 400
	if v := os.Getenv("FETCH_DELAY_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			ms = parsed
		}
	}
	return FetchDelay(time.Duration(ms) * time.Millisecond)
}
