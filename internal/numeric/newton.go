package numeric

import (
	"math"
	"sort"
)

// ScanConfig bounds a root scan.
type ScanConfig struct {
	SearchRange   float64 // roots are sought in [-SearchRange, SearchRange]
	Tolerance     float64 // |f(x)| below this counts as a root
	MaxIterations int     // Newton iteration budget per seed
	Seeds         int     // number of evenly spaced starting points
}

// Normalized fills zero or negative fields with the default budget.
func (cfg ScanConfig) Normalized() ScanConfig {
	if cfg.SearchRange <= 0 {
		cfg.SearchRange = 100
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1e-10
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 100
	}
	if cfg.Seeds <= 0 {
		cfg.Seeds = 200
	}
	return cfg
}

// RootScan locates real roots of f via Newton's method from evenly spaced
// seeds, deduplicating nearby hits. The returned slice is sorted; an empty
// slice means no root was located within the budget, which is not a proof
// of nonexistence.
func RootScan(f, df func(float64) float64, cfg ScanConfig) []float64 {
	cfg = cfg.Normalized()
	var roots []float64
	for i := 0; i <= cfg.Seeds; i++ {
		x := -cfg.SearchRange + 2*cfg.SearchRange*float64(i)/float64(cfg.Seeds)
		for iter := 0; iter < cfg.MaxIterations; iter++ {
			fx := f(x)
			if math.IsNaN(fx) {
				break
			}
			if math.Abs(fx) < cfg.Tolerance {
				dup := false
				for _, r := range roots {
					if math.Abs(r-x) < cfg.Tolerance*100 {
						dup = true
						break
					}
				}
				if !dup {
					roots = append(roots, x)
				}
				break
			}
			dfx := df(x)
			if math.IsNaN(dfx) || math.Abs(dfx) < 1e-15 {
				break
			}
			x -= fx / dfx
			if math.Abs(x) > cfg.SearchRange*10 {
				break
			}
		}
	}
	sort.Float64s(roots)
	return roots
}
