package backoff

import "time"

// Exponential returns the retry delay for the given attempt number
// (1-based): base * 2^(attempt-1). Attempt values below 1 are treated as 1.
func Exponential(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
	}
	return d
}
