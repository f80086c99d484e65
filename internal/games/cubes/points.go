package cubes

import "math"

// Points scores the removal of n cubes at once: nothing for fewer than two,
// otherwise the sum of floor(5*(m-1) + 1.6^m) for m in [2, n), at least 2.
// The sum saturates at math.MaxInt, which groups of 92 and more reach.
//
//	n:      2  3   4   5   6
//	points: 2  7  21  42  72
func Points(n int) int {
	if n < 2 {
		return 0
	}

	total := 0.0
	for m := 2; m < n; m++ {
		total += math.Floor(5*float64(m-1) + math.Pow(1.6, float64(m)))
		if total >= math.MaxInt {
			return math.MaxInt
		}
	}
	return max(2, int(total))
}

// addPoints adds p to score, saturating at math.MaxInt.
func addPoints(score, p int) int {
	if score > math.MaxInt-p {
		return math.MaxInt
	}
	return score + p
}
