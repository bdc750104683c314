package worker

import (
	"fmt"
	"math"
)

// EstimateAttempts returns the number of attempts needed for a 50%
// chance of matching a pattern with the given total constrained length,
// assuming uniform symbols over the 58-character alphabet.
func EstimateAttempts(patternLen int) int64 {
	if patternLen <= 0 {
		return 1
	}
	probability := 1.0 / math.Pow(58, float64(patternLen))
	return int64(math.Ln2 / probability)
}

// FormatAttempts renders an attempt count with a K/M/B suffix.
func FormatAttempts(attempts int64) string {
	switch {
	case attempts >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(attempts)/1_000_000_000)
	case attempts >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(attempts)/1_000_000)
	case attempts >= 1_000:
		return fmt.Sprintf("%.2fK", float64(attempts)/1_000)
	default:
		return fmt.Sprintf("%d", attempts)
	}
}
