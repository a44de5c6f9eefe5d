package astro

import "github.com/julianstephens/arcana/internal/models"

// SignOrder lists the twelve zodiac signs in ecliptic order starting at the
// vernal equinox (0° = start of aries).
var SignOrder = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// DegreesToSign converts an ecliptic longitude (any real number of degrees)
// into a sign plus degrees within that sign.
func DegreesToSign(totalDegrees float64) models.SignPosition {
	deg := normalizeDegrees(totalDegrees)
	signIndex := int(deg / 30)
	return models.SignPosition{
		Sign:         SignOrder[signIndex],
		Degrees:      deg - float64(signIndex)*30,
		TotalDegrees: deg,
	}
}
