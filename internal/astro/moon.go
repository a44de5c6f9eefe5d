package astro

import "math"

// moonTerm is one periodic term of the lunar longitude series: coefficient in
// 1e-6 degrees times sin(d*D + m*M + mp*Mp + f*F).
type moonTerm struct {
	coeff       float64
	d, m, mp, f float64
}

// moonLongitudeTerms are the principal longitude terms of the lunar theory
// (Meeus Table 47.A, truncated to 24 terms). All terms must be present; the
// sum is accurate to a few arc minutes, which is ample for sign placement.
var moonLongitudeTerms = []moonTerm{
	{6288774, 0, 0, 1, 0},
	{1274027, 2, 0, -1, 0},
	{658314, 2, 0, 0, 0},
	{213618, 0, 0, 2, 0},
	{-185116, 0, 1, 0, 0},
	{-114332, 0, 0, 0, 2},
	{58793, 2, 0, -2, 0},
	{57066, 2, -1, -1, 0},
	{53322, 2, 0, 1, 0},
	{45758, 2, -1, 0, 0},
	{-40923, 0, 1, -1, 0},
	{-34720, 1, 0, 0, 0},
	{-30383, 0, 1, 1, 0},
	{15327, 2, 0, 0, -2},
	{-12528, 0, 0, 1, 2},
	{10980, 0, 0, 1, -2},
	{10675, 4, 0, -1, 0},
	{10034, 0, 0, 3, 0},
	{8548, 4, 0, -2, 0},
	{-7888, 2, 1, -1, 0},
	{-6766, 2, 1, 0, 0},
	{-5163, 1, 0, -1, 0},
	{4987, 1, 1, 0, 0},
	{4036, 2, -1, 1, 0},
}

// MoonLongitude computes the Moon's geocentric ecliptic longitude in degrees
// from the four fundamental arguments and the truncated longitude series.
func MoonLongitude(jd float64) float64 {
	t := JulianCenturies(jd)

	// Moon's mean longitude.
	lp := normalizeDegrees(218.3164477 +
		481267.88123421*t -
		0.0015786*t*t +
		t*t*t/538841 -
		t*t*t*t/65194000)

	// Mean elongation of the Moon from the Sun.
	d := normalizeDegrees(297.8501921 +
		445267.1114034*t -
		0.0018819*t*t +
		t*t*t/545868 -
		t*t*t*t/113065000)

	// Sun's mean anomaly.
	m := normalizeDegrees(357.5291092 +
		35999.0502909*t -
		0.0001536*t*t +
		t*t*t/24490000)

	// Moon's mean anomaly.
	mp := normalizeDegrees(134.9633964 +
		477198.8675055*t +
		0.0087414*t*t +
		t*t*t/69699 -
		t*t*t*t/14712000)

	// Moon's argument of latitude.
	f := normalizeDegrees(93.2720950 +
		483202.0175233*t -
		0.0036539*t*t -
		t*t*t/3526000 +
		t*t*t*t/863310000)

	dRad, mRad, mpRad, fRad := d*deg2rad, m*deg2rad, mp*deg2rad, f*deg2rad

	var sum float64
	for _, term := range moonLongitudeTerms {
		sum += term.coeff * math.Sin(term.d*dRad+term.m*mRad+term.mp*mpRad+term.f*fRad)
	}

	// Terms are in units of 1e-6 degrees.
	return normalizeDegrees(lp + sum/1e6)
}
