package astro

import "math"

// SunLongitude computes the Sun's apparent geocentric ecliptic longitude in
// degrees using the equation of center plus a small nutation/aberration
// correction (Meeus).
func SunLongitude(jd float64) float64 {
	t := JulianCenturies(jd)

	meanLon := normalizeDegrees(280.46646 + 36000.76983*t + 0.0003032*t*t)
	meanAnomaly := normalizeDegrees(357.52911 + 35999.05029*t - 0.0001537*t*t)
	m := meanAnomaly * deg2rad

	center := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	trueLon := normalizeDegrees(meanLon + center)

	omega := 125.04 - 1934.136*t
	apparent := trueLon - 0.00569 - 0.00478*math.Sin(omega*deg2rad)

	return normalizeDegrees(apparent)
}
