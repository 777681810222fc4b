package config

import (
	"fmt"
	"os"
	"strconv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile is the path engine logs are additionally written to; empty when
// MINES_LOG_FILE is not set.
func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

// Seed reads MINES_SEED. ok is false when the variable is not set.
func Seed() (seed uint64, ok bool, err error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("unable to parse MINES_SEED: %w", err)
	}
	return seed, true, nil
}
