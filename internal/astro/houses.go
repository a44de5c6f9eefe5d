package astro

// EqualHouseCusps returns the twelve house cusp longitudes of the equal house
// system: the ascendant plus 30° per house, each normalized to [0, 360).
func EqualHouseCusps(ascendant float64) []float64 {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = normalizeDegrees(ascendant + float64(i)*30)
	}
	return cusps
}

// HouseForLongitude returns the house number (1-12) containing an ecliptic
// longitude. Each house spans [cusp, nextCusp); the pair wrapping past 360°
// is handled separately. Exactly one house matches any normalized longitude;
// the trailing return is a defensive default.
func HouseForLongitude(longitude float64, cusps []float64) int {
	for i := 0; i < 12; i++ {
		cusp := cusps[i]
		next := cusps[(i+1)%12]

		if next > cusp {
			if longitude >= cusp && longitude < next {
				return i + 1
			}
		} else {
			if longitude >= cusp || longitude < next {
				return i + 1
			}
		}
	}
	return 1
}
