package astro

// sunSignBoundary marks the first calendar day of a sign using traditional
// (not astronomically computed) boundaries.
type sunSignBoundary struct {
	sign       string
	startMonth int
	startDay   int
}

var sunSignBoundaries = []sunSignBoundary{
	{"capricorn", 1, 1},
	{"aquarius", 1, 20},
	{"pisces", 2, 19},
	{"aries", 3, 21},
	{"taurus", 4, 20},
	{"gemini", 5, 21},
	{"cancer", 6, 21},
	{"leo", 7, 23},
	{"virgo", 8, 23},
	{"libra", 9, 23},
	{"scorpio", 10, 23},
	{"sagittarius", 11, 22},
	{"capricorn", 12, 22},
}

// CalculateSunSign determines the sun sign for a month and day using the
// traditional calendar boundaries, without computing the Sun's longitude.
func CalculateSunSign(month, day int) string {
	for i := len(sunSignBoundaries) - 1; i >= 0; i-- {
		b := sunSignBoundaries[i]
		if month > b.startMonth || (month == b.startMonth && day >= b.startDay) {
			return b.sign
		}
	}
	return "capricorn"
}
