package allocator

import "math"

// All sizing functions use floating-point percentages and round down, so
// that a seed produces the same counts as earlier generations did.

// ProgressPointCount returns the number of progress-point items:
// floor((2*starting + included) * pct/100), at least 1.
func ProgressPointCount(starting, included, pct int) int {
	multiplier := float64(pct) / 100.0
	songCount := starting*2 + included
	return max(1, int(math.Floor(float64(songCount)*multiplier)))
}

// WinThreshold returns how many progress points are needed to win:
// floor(points * pct/100), at least 1.
func WinThreshold(points, pct int) int {
	multiplier := float64(pct) / 100.0
	return max(1, int(math.Floor(float64(points)*multiplier)))
}

// LocationCount returns floor((starting + included) * (1 + extraPct/100)),
// raised to included + points when smaller.
func LocationCount(starting, included, extraPct, points int) int {
	multiplier := 1 + float64(extraPct)/100.0
	count := int(math.Floor(float64(starting+included) * multiplier))
	return max(count, included+points)
}
