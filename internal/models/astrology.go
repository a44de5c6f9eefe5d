package models

// BirthData is the input to a natal chart computation. Year and month are
// required; every other field defaults at chart time (day=1, hour=12,
// minute=0, latitude=0, longitude=0, timezone=0). Negative years are BCE in
// astronomical numbering (year 0 = 1 BCE).
type BirthData struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Day       *int     `json:"day,omitempty"`
	Hour      *int     `json:"hour,omitempty"`
	Minute    *int     `json:"minute,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  *float64 `json:"timezone,omitempty"`
}

// SignPosition locates an ecliptic longitude within the zodiac.
// TotalDegrees is in [0,360); Degrees is the remainder within the sign.
type SignPosition struct {
	Sign         string  `json:"sign"`
	Degrees      float64 `json:"degrees"`
	TotalDegrees float64 `json:"total_degrees"`
}

// PlanetPosition is a SignPosition plus chart placement for one body.
type PlanetPosition struct {
	Planet       string  `json:"planet"`
	Sign         string  `json:"sign"`
	Degrees      float64 `json:"degrees"`
	TotalDegrees float64 `json:"total_degrees"`
	House        int     `json:"house"`
	Retrograde   bool    `json:"retrograde"`
}

type AspectNature string

const (
	AspectHarmonious  AspectNature = "harmonious"
	AspectChallenging AspectNature = "challenging"
	AspectNeutral     AspectNature = "neutral"
)

// AspectDefinition is one entry of the externally supplied aspect table.
type AspectDefinition struct {
	Name    string       `json:"name"`
	Symbol  string       `json:"symbol"`
	Degrees float64      `json:"degrees"`
	Orb     float64      `json:"orb"`
	Nature  AspectNature `json:"nature"`
}

// ChartAspect is a matched angular relationship between two planets.
type ChartAspect struct {
	Planet1       string       `json:"planet1"`
	Planet2       string       `json:"planet2"`
	AspectName    string       `json:"aspect_name"`
	AspectSymbol  string       `json:"aspect_symbol"`
	ExactDegrees  float64      `json:"exact_degrees"`
	ActualDegrees float64      `json:"actual_degrees"`
	Orb           float64      `json:"orb"`
	Nature        AspectNature `json:"nature"`
}

// NatalChart is the complete computed chart. It is a pure value: the same
// BirthData always produces an identical chart, and nothing mutates it after
// assembly.
type NatalChart struct {
	Sun        PlanetPosition `json:"sun"`
	Moon       PlanetPosition `json:"moon"`
	Mercury    PlanetPosition `json:"mercury"`
	Venus      PlanetPosition `json:"venus"`
	Mars       PlanetPosition `json:"mars"`
	Jupiter    PlanetPosition `json:"jupiter"`
	Saturn     PlanetPosition `json:"saturn"`
	Uranus     PlanetPosition `json:"uranus"`
	Neptune    PlanetPosition `json:"neptune"`
	Pluto      PlanetPosition `json:"pluto"`
	Ascendant  SignPosition   `json:"ascendant"`
	Midheaven  SignPosition   `json:"midheaven"`
	Aspects    []ChartAspect  `json:"aspects"`
	HouseCusps []float64      `json:"house_cusps"`
}

// AstrologyReading is the immutable state of one astrology session. Each
// feedback step produces a new value; the chart is shared across steps, never
// copied.
type AstrologyReading struct {
	BirthData       BirthData       `json:"birth_data"`
	Chart           *NatalChart     `json:"chart"`
	RevealedPlanets []string        `json:"revealed_planets"`
	RevealedHouses  []string        `json:"revealed_houses"`
	Feedback        []FeedbackEntry `json:"feedback"`
}
