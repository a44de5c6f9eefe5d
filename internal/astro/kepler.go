package astro

import "math"

const (
	keplerTolerance     = 1e-12
	keplerMaxIterations = 50
)

// SolveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly E via Newton-Raphson, with M in radians. The iteration cap bounds
// running time instead of raising: 50 steps always converge for the
// eccentricities in the element table (e < 0.25).
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	e := meanAnomaly // initial guess E = M
	for i := 0; i < keplerMaxIterations; i++ {
		delta := (e - eccentricity*math.Sin(e) - meanAnomaly) / (1 - eccentricity*math.Cos(e))
		e -= delta
		if math.Abs(delta) < keplerTolerance {
			break
		}
	}
	return e
}
