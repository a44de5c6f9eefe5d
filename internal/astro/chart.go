package astro

import (
	"fmt"

	"github.com/julianstephens/arcana/internal/models"
)

// geocentricPlanets are the bodies computed through the Kepler pipeline, in
// chart order. Sun and Moon use their closed-form series instead.
var geocentricPlanets = []string{
	"mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune", "pluto",
}

// Birth-input defaults are a contract, not a fallback: callers may omit
// everything but year and month and still get a structurally valid chart.
const (
	defaultDay    = 1
	defaultHour   = 12
	defaultMinute = 0
)

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// ComputeChart calculates a complete natal chart from birth data. It is a
// pure function: identical inputs produce identical charts.
func ComputeChart(birth models.BirthData, definitions []models.AspectDefinition) (*models.NatalChart, error) {
	day := intOr(birth.Day, defaultDay)
	hour := intOr(birth.Hour, defaultHour)
	minute := intOr(birth.Minute, defaultMinute)
	latitude := floatOr(birth.Latitude, 0)
	longitude := floatOr(birth.Longitude, 0)
	timezone := floatOr(birth.Timezone, 0)

	// Shift local time to UT; ToJulianDay accepts out-of-range hours.
	utHour := float64(hour) - timezone

	jd := ToJulianDay(birth.Year, birth.Month, day, utHour, float64(minute))

	obliquity := Obliquity(jd)
	lst := LocalSiderealTime(jd, longitude)

	ascDeg := Ascendant(lst, latitude, obliquity)
	mcDeg := Midheaven(lst, obliquity)
	cusps := EqualHouseCusps(ascDeg)

	sun := buildPosition("sun", SunLongitude(jd), cusps, false)
	moon := buildPosition("moon", MoonLongitude(jd), cusps, false)

	positions := []models.PlanetPosition{sun, moon}
	for _, planet := range geocentricPlanets {
		lon, err := GeocentricLongitude(planet, jd)
		if err != nil {
			return nil, fmt.Errorf("computing %s: %w", planet, err)
		}
		retro, err := isRetrograde(planet, jd)
		if err != nil {
			return nil, fmt.Errorf("retrograde check for %s: %w", planet, err)
		}
		positions = append(positions, buildPosition(planet, lon, cusps, retro))
	}

	chart := &models.NatalChart{
		Sun:        positions[0],
		Moon:       positions[1],
		Mercury:    positions[2],
		Venus:      positions[3],
		Mars:       positions[4],
		Jupiter:    positions[5],
		Saturn:     positions[6],
		Uranus:     positions[7],
		Neptune:    positions[8],
		Pluto:      positions[9],
		Ascendant:  DegreesToSign(ascDeg),
		Midheaven:  DegreesToSign(mcDeg),
		Aspects:    CalculateAspects(positions, definitions),
		HouseCusps: cusps,
	}
	return chart, nil
}

// buildPosition places a longitude into sign and house. Display degrees are
// rounded to two decimals; the house lookup uses the unrounded longitude.
func buildPosition(planet string, longitude float64, cusps []float64, retrograde bool) models.PlanetPosition {
	signPos := DegreesToSign(longitude)
	return models.PlanetPosition{
		Planet:       planet,
		Sign:         signPos.Sign,
		Degrees:      round2(signPos.Degrees),
		TotalDegrees: round2(signPos.TotalDegrees),
		House:        HouseForLongitude(signPos.TotalDegrees, cusps),
		Retrograde:   retrograde,
	}
}
