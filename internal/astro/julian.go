package astro

import "math"

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
	J2000 = 2451545.0
)

// ToJulianDay converts a calendar date and time to a Julian Day Number.
// The algorithm is valid across the Julian/Gregorian boundary; January and
// February count as months 13 and 14 of the previous year. Hour may be
// fractional (and outside 0-23 after a timezone shift).
func ToJulianDay(year, month, day int, hour, minute float64) float64 {
	y := float64(year)
	m := float64(month)
	if month <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	dayFraction := (hour + minute/60) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + dayFraction + b - 1524.5
}

// JulianCenturies returns Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// normalizeDegrees maps any angle onto [0, 360).
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// For negative inputs below the ULP at 360, d+360 rounds to exactly
	// 360, which would index past pisces.
	if d >= 360 {
		d = 0
	}
	return d
}

// round2 rounds display values to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
