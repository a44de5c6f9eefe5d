package astro

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownBody reports a body id with no entry in the element table.
	ErrUnknownBody = errors.New("no orbital elements for body")

	// ErrEarthObserver reports an attempt to compute Earth's geocentric
	// longitude; Earth is the observer and has none relative to itself.
	ErrEarthObserver = errors.New("cannot compute geocentric longitude of earth")
)

// HeliocentricLongitude computes a body's heliocentric ecliptic longitude in
// degrees at the given Julian Day, projecting from the orbital plane onto the
// ecliptic through the ascending node.
func HeliocentricLongitude(body string, jd float64) (float64, error) {
	el, ok := orbitalElements[body]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}

	t := JulianCenturies(jd)

	meanLon := normalizeDegrees(el.L0 + el.L1*t)
	ecc := el.E0 + el.E1*t
	perihelion := normalizeDegrees(el.P0 + el.P1*t)
	node := normalizeDegrees(el.W0 + el.W1*t)
	inclination := el.I0 + el.I1*t

	meanAnomaly := normalizeDegrees(meanLon-perihelion) * deg2rad
	eccAnomaly := SolveKepler(meanAnomaly, ecc)

	trueAnomaly := math.Atan2(
		math.Sqrt(1-ecc*ecc)*math.Sin(eccAnomaly),
		math.Cos(eccAnomaly)-ecc,
	) * rad2deg

	// Longitude in the orbital plane, measured from the ascending node.
	planeLon := normalizeDegrees(trueAnomaly + perihelion - node)

	planeLonRad := planeLon * deg2rad
	inclRad := inclination * deg2rad

	eclipticLon := normalizeDegrees(math.Atan2(
		math.Sin(planeLonRad)*math.Cos(inclRad),
		math.Cos(planeLonRad),
	)*rad2deg + node)

	return eclipticLon, nil
}

// helioPolar returns a body's heliocentric longitude (degrees, planar
// approximation with zero ecliptic latitude) and radius vector (AU).
func helioPolar(el OrbitalElements, t float64) (lonDeg, radius float64) {
	meanLon := normalizeDegrees(el.L0 + el.L1*t)
	ecc := el.E0 + el.E1*t
	perihelion := normalizeDegrees(el.P0 + el.P1*t)

	meanAnomaly := normalizeDegrees(meanLon-perihelion) * deg2rad
	eccAnomaly := SolveKepler(meanAnomaly, ecc)

	trueAnomaly := math.Atan2(
		math.Sqrt(1-ecc*ecc)*math.Sin(eccAnomaly),
		math.Cos(eccAnomaly)-ecc,
	) * rad2deg

	lonDeg = normalizeDegrees(trueAnomaly + perihelion)
	radius = el.A * (1 - ecc*math.Cos(eccAnomaly))
	return lonDeg, radius
}

// GeocentricLongitude computes a planet's ecliptic longitude as seen from
// Earth by differencing the 2-D heliocentric Cartesian positions of the
// planet and Earth in the ecliptic plane. Adequate for sign and house
// placement; not for declination-sensitive work.
func GeocentricLongitude(body string, jd float64) (float64, error) {
	if body == "earth" {
		return 0, ErrEarthObserver
	}
	el, ok := orbitalElements[body]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBody, body)
	}

	t := JulianCenturies(jd)

	earthLon, earthR := helioPolar(orbitalElements["earth"], t)
	planetLon, planetR := helioPolar(el, t)

	x := planetR*math.Cos(planetLon*deg2rad) - earthR*math.Cos(earthLon*deg2rad)
	y := planetR*math.Sin(planetLon*deg2rad) - earthR*math.Sin(earthLon*deg2rad)

	return normalizeDegrees(math.Atan2(y, x) * rad2deg), nil
}

// isRetrograde detects apparent backward motion by differencing geocentric
// longitudes one day either side of jd along the shortest arc. The Sun and
// Moon are never retrograde by convention.
func isRetrograde(body string, jd float64) (bool, error) {
	if body == "sun" || body == "moon" {
		return false, nil
	}

	before, err := GeocentricLongitude(body, jd-1)
	if err != nil {
		return false, err
	}
	after, err := GeocentricLongitude(body, jd+1)
	if err != nil {
		return false, err
	}

	diff := after - before
	if diff > 180 {
		diff -= 360
	}
	if diff < -180 {
		diff += 360
	}
	return diff < 0, nil
}
