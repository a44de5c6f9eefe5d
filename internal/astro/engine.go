package astro

import (
	"github.com/julianstephens/arcana/internal/models"
)

// DefaultRevealOrder is the fixed order an astrology reading walks through.
// "ascendant" is a synthetic chart point, not an orbital body.
var DefaultRevealOrder = []string{
	"sun", "moon", "ascendant", "mercury", "venus", "mars",
	"jupiter", "saturn", "uranus", "neptune", "pluto",
}

// Engine is a stateless astrology reading engine: all session state lives in
// models.AstrologyReading values and every transition returns a new value.
// The aspect definitions are fixed at construction and never mutated, so one
// Engine may serve any number of concurrent readings.
type Engine struct {
	aspects []models.AspectDefinition
}

func NewEngine(aspects []models.AspectDefinition) *Engine {
	return &Engine{aspects: aspects}
}

// Reveal pairs a chart point id with its position data.
type Reveal struct {
	Planet   string
	Position models.PlanetPosition
}

// Synthesis is a projection of the whole chart for summary rendering.
type Synthesis struct {
	SunSign   string                           `json:"sun_sign"`
	MoonSign  string                           `json:"moon_sign"`
	Ascendant string                           `json:"ascendant"`
	Planets   map[string]models.PlanetPosition `json:"planets"`
	Aspects   []models.ChartAspect             `json:"aspects"`
}

// StartReading computes the natal chart and returns a fresh reading state
// with nothing revealed.
func (e *Engine) StartReading(birth models.BirthData) (models.AstrologyReading, error) {
	chart, err := ComputeChart(birth, e.aspects)
	if err != nil {
		return models.AstrologyReading{}, err
	}
	return models.AstrologyReading{
		BirthData:       birth,
		Chart:           chart,
		RevealedPlanets: []string{},
		RevealedHouses:  []string{},
		Feedback:        []models.FeedbackEntry{},
	}, nil
}

// NextReveal returns the first chart point in the default order that has not
// been revealed yet, or nil when the reading is exhausted.
func (e *Engine) NextReveal(state models.AstrologyReading) *Reveal {
	revealed := make(map[string]bool, len(state.RevealedPlanets))
	for _, id := range state.RevealedPlanets {
		revealed[id] = true
	}
	for _, id := range DefaultRevealOrder {
		if !revealed[id] {
			pos, ok := ChartPosition(state.Chart, id)
			if !ok {
				continue
			}
			return &Reveal{Planet: id, Position: pos}
		}
	}
	return nil
}

// RecordFeedback appends one feedback entry and marks planetID revealed,
// returning a new state value. It deliberately does not require planetID to
// match the last NextReveal result; the chart is shared, not copied.
func (e *Engine) RecordFeedback(state models.AstrologyReading, planetID string, entry models.FeedbackEntry) models.AstrologyReading {
	revealed := make([]string, 0, len(state.RevealedPlanets)+1)
	revealed = append(revealed, state.RevealedPlanets...)
	revealed = append(revealed, planetID)

	feedback := make([]models.FeedbackEntry, 0, len(state.Feedback)+1)
	feedback = append(feedback, state.Feedback...)
	feedback = append(feedback, entry)

	return models.AstrologyReading{
		BirthData:       state.BirthData,
		Chart:           state.Chart,
		RevealedPlanets: revealed,
		RevealedHouses:  state.RevealedHouses,
		Feedback:        feedback,
	}
}

// IsComplete reports whether every item of the default reveal order has been
// revealed.
func (e *Engine) IsComplete(state models.AstrologyReading) bool {
	return len(state.RevealedPlanets) >= len(DefaultRevealOrder)
}

// GetSynthesis summarizes the chart. Unlike the tarot and I Ching engines it
// has no completeness requirement; it is a pure projection.
func (e *Engine) GetSynthesis(state models.AstrologyReading) Synthesis {
	chart := state.Chart
	planets := map[string]models.PlanetPosition{
		"sun":     chart.Sun,
		"moon":    chart.Moon,
		"mercury": chart.Mercury,
		"venus":   chart.Venus,
		"mars":    chart.Mars,
		"jupiter": chart.Jupiter,
		"saturn":  chart.Saturn,
		"uranus":  chart.Uranus,
		"neptune": chart.Neptune,
		"pluto":   chart.Pluto,
	}
	return Synthesis{
		SunSign:   chart.Sun.Sign,
		MoonSign:  chart.Moon.Sign,
		Ascendant: chart.Ascendant.Sign,
		Planets:   planets,
		Aspects:   chart.Aspects,
	}
}

// ChartPosition maps a chart point id to its position. The ascendant and
// midheaven are synthesized as pseudo-planets with fixed houses 1 and 10.
func ChartPosition(chart *models.NatalChart, id string) (models.PlanetPosition, bool) {
	switch id {
	case "sun":
		return chart.Sun, true
	case "moon":
		return chart.Moon, true
	case "mercury":
		return chart.Mercury, true
	case "venus":
		return chart.Venus, true
	case "mars":
		return chart.Mars, true
	case "jupiter":
		return chart.Jupiter, true
	case "saturn":
		return chart.Saturn, true
	case "uranus":
		return chart.Uranus, true
	case "neptune":
		return chart.Neptune, true
	case "pluto":
		return chart.Pluto, true
	case "ascendant":
		return models.PlanetPosition{
			Planet:       "ascendant",
			Sign:         chart.Ascendant.Sign,
			Degrees:      chart.Ascendant.Degrees,
			TotalDegrees: chart.Ascendant.TotalDegrees,
			House:        1,
		}, true
	case "midheaven":
		return models.PlanetPosition{
			Planet:       "midheaven",
			Sign:         chart.Midheaven.Sign,
			Degrees:      chart.Midheaven.Degrees,
			TotalDegrees: chart.Midheaven.TotalDegrees,
			House:        10,
		}, true
	}
	return models.PlanetPosition{}, false
}
