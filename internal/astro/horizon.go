package astro

import "math"

// Obliquity returns the mean obliquity of the ecliptic in degrees (Laskar
// short form).
func Obliquity(jd float64) float64 {
	t := JulianCenturies(jd)
	return 23.4392911 - 0.0130042*t - 1.64e-7*t*t + 5.036e-7*t*t*t
}

// LocalSiderealTime returns the local sidereal time in degrees for a Julian
// Day and an observer's geographic longitude (east positive).
func LocalSiderealTime(jd, longitude float64) float64 {
	t := JulianCenturies(jd)
	gmst := normalizeDegrees(280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*t*t -
		t*t*t/38710000)
	return normalizeDegrees(gmst + longitude)
}

// Ascendant returns the ecliptic longitude of the eastern horizon point from
// local sidereal time, geographic latitude and obliquity, all in degrees.
func Ascendant(lst, latitude, obliquity float64) float64 {
	lstRad := lst * deg2rad
	latRad := latitude * deg2rad
	oblRad := obliquity * deg2rad

	y := -math.Cos(lstRad)
	x := math.Sin(oblRad)*math.Tan(latRad) + math.Cos(oblRad)*math.Sin(lstRad)

	return normalizeDegrees(math.Atan2(y, x) * rad2deg)
}

// Midheaven returns the ecliptic longitude culminating overhead (Medium
// Coeli) from local sidereal time and obliquity, in degrees.
func Midheaven(lst, obliquity float64) float64 {
	lstRad := lst * deg2rad
	oblRad := obliquity * deg2rad

	mc := math.Atan2(math.Sin(lstRad), math.Cos(lstRad)*math.Cos(oblRad)) * rad2deg
	return normalizeDegrees(mc)
}
