package astro

import (
	"math"
	"testing"
)

func TestDegreesToSign(t *testing.T) {
	cases := []struct {
		degrees    float64
		wantSign   string
		wantWithin float64
	}{
		{15.0, "aries", 15.0},
		{45.0, "taurus", 15.0},
		{350.0, "pisces", 20.0},
		{370.0, "aries", 10.0},
		{-10.0, "pisces", 20.0},
		{0.0, "aries", 0.0},
		{330.0, "pisces", 0.0},
	}
	for _, c := range cases {
		pos := DegreesToSign(c.degrees)
		if pos.Sign != c.wantSign {
			t.Errorf("DegreesToSign(%f).Sign = %s, want %s", c.degrees, pos.Sign, c.wantSign)
		}
		if math.Abs(pos.Degrees-c.wantWithin) > 0.01 {
			t.Errorf("DegreesToSign(%f).Degrees = %f, want %f", c.degrees, pos.Degrees, c.wantWithin)
		}
	}
}

func TestDegreesToSign_WrapBoundary(t *testing.T) {
	// Negative longitudes smaller than the float64 ULP at 360 normalize
	// to exactly 360 after the wrap; they must land in aries, not panic.
	for _, x := range []float64{-1e-16, -1e-300, math.Nextafter(0, -1), 360, -360, 720} {
		pos := DegreesToSign(x)
		if pos.Sign != "aries" {
			t.Errorf("DegreesToSign(%g).Sign = %s, want aries", x, pos.Sign)
		}
		if pos.Degrees != 0 {
			t.Errorf("DegreesToSign(%g).Degrees = %g, want 0", x, pos.Degrees)
		}
		if pos.TotalDegrees != 0 {
			t.Errorf("DegreesToSign(%g).TotalDegrees = %g, want 0", x, pos.TotalDegrees)
		}
	}
}

func TestDegreesToSign_Periodicity(t *testing.T) {
	// Adding whole turns must never change the sign.
	for _, x := range []float64{0, 12.5, 29.999, 182.4, 359.9} {
		base := DegreesToSign(x)
		for k := -3; k <= 3; k++ {
			shifted := DegreesToSign(x + float64(k)*360)
			if shifted.Sign != base.Sign {
				t.Errorf("Sign changed for %f + %d*360: %s vs %s", x, k, shifted.Sign, base.Sign)
			}
		}
	}
}

func TestDegreesToSign_TotalDegreesRange(t *testing.T) {
	for _, x := range []float64{-720.5, -1, 0, 359.999, 360, 1000} {
		pos := DegreesToSign(x)
		if pos.TotalDegrees < 0 || pos.TotalDegrees >= 360 {
			t.Errorf("TotalDegrees out of range for input %f: %f", x, pos.TotalDegrees)
		}
		if pos.Degrees < 0 || pos.Degrees >= 30 {
			t.Errorf("Degrees within sign out of range for input %f: %f", x, pos.Degrees)
		}
	}
}
