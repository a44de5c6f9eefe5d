package tui

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/arcana/internal/astro"
	"github.com/julianstephens/arcana/internal/data"
	"github.com/julianstephens/arcana/internal/iching"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/storage"
	"github.com/julianstephens/arcana/internal/tarot"
	"github.com/julianstephens/arcana/internal/tui/components/readinglist"
	"github.com/julianstephens/arcana/internal/tui/components/revealview"
)

type SessionState int

const (
	StateMenu SessionState = iota
	StateIntake
	StateOverview
	StateRevealing
	StateSynthesis
	StateBrowse
	StateViewReading
	StateConfirmDelete
)

// menu entry order; the last two are not reading systems.
var menuEntries = []string{
	"Astrology - natal chart",
	"Tarot - card spread",
	"I Ching - coin oracle",
	"Past readings",
	"Quit",
}

const (
	menuAstrology = iota
	menuTarot
	menuIChing
	menuBrowse
	menuQuit
)

// IntakeForm backs the huh form for a new reading. Numeric fields stay
// strings until validated; empty means "use the default".
type IntakeForm struct {
	Year      string
	Month     string
	Day       string
	Hour      string
	Minute    string
	Latitude  string
	Longitude string
	Timezone  string

	SpreadID  string
	Reversals bool

	Question string
}

// Engines bundles the shared table set with the three reading engines.
type Engines struct {
	Tables *data.Tables
	Astro  *astro.Engine
	Tarot  *tarot.Engine
	IChing *iching.Engine
}

type Model struct {
	store   storage.Provider
	engines Engines

	state     SessionState
	keys      KeyMap
	help      help.Model
	menuIndex int
	system    models.ReadingSystem

	form   *huh.Form
	intake *IntakeForm

	// reading is the live session envelope; it is re-saved after every
	// feedback entry so an interrupted session survives.
	reading models.Reading

	revealView     revealview.Model
	readingList    readinglist.Model
	currentElement string

	readingToDeleteID string
	err               error
	quitting          bool
	width             int
	height            int
}

func NewModel(store storage.Provider, engines Engines) Model {
	readings, err := store.GetAllReadings()
	if err != nil {
		readings = []models.Reading{}
	}
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].CreatedAt.After(readings[j].CreatedAt)
	})

	return Model{
		store:       store,
		engines:     engines,
		state:       StateMenu,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		revealView:  revealview.New(0, 0),
		readingList: readinglist.New(readings, 0, 0),
	}
}

// newIntakeForm builds the per-system intake form. Tarot defaults come from
// the stored settings.
func (m *Model) newIntakeForm(system models.ReadingSystem) (*huh.Form, *IntakeForm) {
	intake := &IntakeForm{}

	switch system {
	case models.SystemAstrology:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Birth year").Value(&intake.Year).Validate(requireInt),
				huh.NewInput().Title("Birth month (1-12)").Value(&intake.Month).Validate(requireInt),
				huh.NewInput().Title("Day of month").Placeholder("1").Value(&intake.Day).Validate(optionalInt),
				huh.NewInput().Title("Hour (0-23, local)").Placeholder("12").Value(&intake.Hour).Validate(optionalInt),
				huh.NewInput().Title("Minute").Placeholder("0").Value(&intake.Minute).Validate(optionalInt),
			),
			huh.NewGroup(
				huh.NewInput().Title("Latitude").Placeholder("0").Value(&intake.Latitude).Validate(optionalFloat),
				huh.NewInput().Title("Longitude").Placeholder("0").Value(&intake.Longitude).Validate(optionalFloat),
				huh.NewInput().Title("UTC offset (hours)").Placeholder("0").Value(&intake.Timezone).Validate(optionalFloat),
			),
		), intake

	case models.SystemTarot:
		settings, err := m.store.GetSettings()
		if err != nil {
			settings = storage.DefaultSettings()
		}
		intake.SpreadID = settings.DefaultSpread
		intake.Reversals = settings.AllowReversals

		ids := m.engines.Tables.SpreadIDs()
		options := make([]huh.Option[string], 0, len(ids))
		for _, id := range ids {
			spread, _ := m.engines.Tables.Spread(id)
			options = append(options, huh.NewOption(spread.Name, id))
		}

		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("What is your question?").Value(&intake.Question),
				huh.NewSelect[string]().Title("Spread").Options(options...).Value(&intake.SpreadID),
				huh.NewConfirm().Title("Allow reversed cards?").Value(&intake.Reversals),
			),
		), intake

	default:
		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("What is your question?").Value(&intake.Question),
			),
		), intake
	}
}

// newReading wraps per-system state in a fresh persistence envelope.
func newReading(system models.ReadingSystem) models.Reading {
	now := time.Now().UTC()
	return models.Reading{
		ID:        uuid.NewString(),
		System:    system,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var errNotANumber = errors.New("enter a number")

func requireInt(s string) error {
	_, err := strconv.Atoi(s)
	if err != nil {
		return errNotANumber
	}
	return nil
}

func optionalInt(s string) error {
	if s == "" {
		return nil
	}
	return requireInt(s)
}

func optionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errNotANumber
	}
	return nil
}
