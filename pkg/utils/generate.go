package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// GenerateBookingRef creates a human-readable booking reference.
// Format: MP-YYYYMMDD-HHMMSS-NNNN
func GenerateBookingRef(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("MP-%s-%s-%s", datePart, timePart, randomPart)
}

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
