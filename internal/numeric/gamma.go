// Package numeric holds the leaf numeric kernels the engine calls into:
// special-function evaluation and root location. Every function here
// returns explicit failure information; nothing panics on bad input.
package numeric

import "math"

// Lanczos coefficients for g=7, n=9.
var lanczos = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma evaluates the gamma function. Poles (zero and negative integers)
// and non-finite inputs report ok=false.
func Gamma(x float64) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN(), false
	}
	if x <= 0 && x == math.Trunc(x) {
		return math.NaN(), false
	}
	if x < 0.5 {
		// Reflection formula.
		g, ok := Gamma(1 - x)
		if !ok {
			return math.NaN(), false
		}
		return math.Pi / (math.Sin(math.Pi*x) * g), true
	}
	x -= 1
	a := lanczos[0]
	t := x + 7.5
	for i := 1; i < 9; i++ {
		a += lanczos[i] / (x + float64(i))
	}
	v := math.Sqrt(2*math.Pi) * math.Pow(t, x+0.5) * math.Exp(-t) * a
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN(), false
	}
	return v, true
}
