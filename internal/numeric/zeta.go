package numeric

import "math"

// Zeta evaluates the Riemann zeta function for real s > 1 by direct
// summation with an Euler–Maclaurin tail correction. The pole at s=1 and
// inputs outside the convergence region report ok=false.
func Zeta(s float64) (float64, bool) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 1 {
		return math.NaN(), false
	}
	const terms = 64
	sum := 0.0
	for k := 1; k <= terms; k++ {
		sum += math.Pow(float64(k), -s)
	}
	n := float64(terms)
	// Tail: integral term, half-correction, and the first Bernoulli term.
	sum += math.Pow(n, 1-s) / (s - 1)
	sum -= 0.5 * math.Pow(n, -s)
	sum += s / 12 * math.Pow(n, -s-1)
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return math.NaN(), false
	}
	return sum, true
}
