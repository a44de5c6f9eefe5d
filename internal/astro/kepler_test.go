package astro

import (
	"math"
	"testing"
)

func TestSolveKepler_CircularOrbit(t *testing.T) {
	// For e=0 the eccentric anomaly equals the mean anomaly.
	m := 1.0
	e := SolveKepler(m, 0.0)
	if math.Abs(e-m) > 1e-10 {
		t.Errorf("Expected E=M for circular orbit, got E=%f M=%f", e, m)
	}
}

func TestSolveKepler_Eccentric(t *testing.T) {
	m := 1.0
	ecc := 0.5
	e := SolveKepler(m, ecc)
	residual := e - ecc*math.Sin(e) - m
	if math.Abs(residual) > 1e-10 {
		t.Errorf("Kepler residual too large: %g", residual)
	}
}

func TestSolveKepler_ResidualAcrossRange(t *testing.T) {
	// The solver must satisfy M = E - e*sin(E) to 1e-9 over the whole
	// domain it is used in, and well beyond the table's e < 0.25.
	for m := 0.0; m < 2*math.Pi; m += 0.25 {
		for ecc := 0.0; ecc < 0.95; ecc += 0.05 {
			e := SolveKepler(m, ecc)
			residual := math.Abs(e - ecc*math.Sin(e) - m)
			if residual > 1e-9 {
				t.Errorf("Residual %g for M=%f e=%f", residual, m, ecc)
			}
		}
	}
}
