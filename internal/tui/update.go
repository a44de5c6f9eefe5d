package tui

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/arcana/internal/constants"
	"github.com/julianstephens/arcana/internal/models"
	"github.com/julianstephens/arcana/internal/tui/components/readinglist"
	"github.com/julianstephens/arcana/internal/validation"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.revealView.SetSize(msg.Width-4, msg.Height-8)
		m.readingList.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case readinglist.OpenReadingMsg:
		m.reading = msg.Reading
		m.showSavedReading(msg.Reading)
		m.state = StateViewReading
		return m, nil

	case readinglist.DeleteReadingMsg:
		m.readingToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateMenu:
		return m.updateMenu(msg)
	case StateIntake:
		return m.updateIntake(msg)
	case StateOverview:
		return m.updateOverview(msg)
	case StateRevealing:
		return m.updateRevealing(msg)
	case StateSynthesis:
		return m.updateSynthesis(msg)
	case StateBrowse:
		return m.updateBrowse(msg)
	case StateViewReading:
		return m.updateViewReading(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.menuIndex = (m.menuIndex - 1 + len(menuEntries)) % len(menuEntries)
	case key.Matches(keyMsg, m.keys.Down):
		m.menuIndex = (m.menuIndex + 1) % len(menuEntries)
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Enter):
		m.err = nil
		switch m.menuIndex {
		case menuAstrology:
			return m.beginIntake(models.SystemAstrology)
		case menuTarot:
			return m.beginIntake(models.SystemTarot)
		case menuIChing:
			return m.beginIntake(models.SystemIChing)
		case menuBrowse:
			m.refreshReadings()
			m.state = StateBrowse
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) beginIntake(system models.ReadingSystem) (tea.Model, tea.Cmd) {
	m.system = system
	m.form, m.intake = m.newIntakeForm(system)
	m.state = StateIntake
	return m, m.form.Init()
}

func (m Model) updateIntake(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.startReading()
	case huh.StateAborted:
		m.state = StateMenu
		return m, nil
	}
	return m, cmd
}

// startReading validates the intake, runs the engine, and persists the fresh
// session before the first reveal.
func (m Model) startReading() (tea.Model, tea.Cmd) {
	question := m.intake.Question
	if result := validation.New().ValidateQuestion(question); question != "" && result.HasIssues() {
		m.err = fmt.Errorf("%s", result.FormatReport())
		m.state = StateMenu
		return m, nil
	}

	reading := newReading(m.system)

	switch m.system {
	case models.SystemAstrology:
		birth, err := m.intake.birthData()
		if err != nil {
			m.err = err
			m.state = StateMenu
			return m, nil
		}
		state, err := m.engines.Astro.StartReading(birth)
		if err != nil {
			m.err = err
			m.state = StateMenu
			return m, nil
		}
		reading.Astrology = &state

	case models.SystemTarot:
		state, err := m.engines.Tarot.StartReading(m.intake.SpreadID, question, m.intake.Reversals)
		if err != nil {
			m.err = err
			m.state = StateMenu
			return m, nil
		}
		reading.Tarot = &state

	case models.SystemIChing:
		state, err := m.engines.IChing.StartReading(question)
		if err != nil {
			m.err = err
			m.state = StateMenu
			return m, nil
		}
		reading.IChing = &state
	}

	m.reading = reading
	if err := m.store.SaveReading(m.reading); err != nil {
		m.err = fmt.Errorf("failed to save reading: %w", err)
		m.state = StateMenu
		return m, nil
	}

	if m.system == models.SystemIChing {
		m.showCastOverview()
		m.state = StateOverview
		return m, nil
	}
	return m.presentNextReveal()
}

// birthData converts the string intake into a BirthData, leaving omitted
// fields nil so the chart applies its defaults.
func (f *IntakeForm) birthData() (models.BirthData, error) {
	year, err := strconv.Atoi(f.Year)
	if err != nil {
		return models.BirthData{}, fmt.Errorf("invalid year: %q", f.Year)
	}
	month, err := strconv.Atoi(f.Month)
	if err != nil {
		return models.BirthData{}, fmt.Errorf("invalid month: %q", f.Month)
	}

	birth := models.BirthData{Year: year, Month: month}
	for _, field := range []struct {
		raw  string
		dest **int
	}{
		{f.Day, &birth.Day},
		{f.Hour, &birth.Hour},
		{f.Minute, &birth.Minute},
	} {
		if field.raw == "" {
			continue
		}
		v, err := strconv.Atoi(field.raw)
		if err != nil {
			return models.BirthData{}, fmt.Errorf("invalid number: %q", field.raw)
		}
		*field.dest = &v
	}
	for _, field := range []struct {
		raw  string
		dest **float64
	}{
		{f.Latitude, &birth.Latitude},
		{f.Longitude, &birth.Longitude},
		{f.Timezone, &birth.Timezone},
	} {
		if field.raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return models.BirthData{}, fmt.Errorf("invalid number: %q", field.raw)
		}
		*field.dest = &v
	}

	input := validation.BirthInput{
		Year: birth.Year, Month: birth.Month, Day: birth.Day,
		Hour: birth.Hour, Minute: birth.Minute,
		Latitude: birth.Latitude, Longitude: birth.Longitude, Timezone: birth.Timezone,
	}
	if result := validation.New().ValidateBirthData(input); result.HasIssues() {
		return models.BirthData{}, fmt.Errorf("%s", result.FormatReport())
	}
	return birth, nil
}

func (m Model) updateOverview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.revealView, cmd = m.revealView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Enter):
		return m.presentNextReveal()
	case key.Matches(keyMsg, m.keys.Back):
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.revealView, cmd = m.revealView.Update(msg)
	return m, cmd
}

func (m Model) updateRevealing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.revealView, cmd = m.revealView.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "1", "2", "3":
		idx := int(keyMsg.String()[0] - '1')
		return m.recordFeedback(constants.FeedbackOptions[idx])
	}
	if key.Matches(keyMsg, m.keys.Back) {
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.revealView, cmd = m.revealView.Update(msg)
	return m, cmd
}

// recordFeedback applies one resonance rating to the current element,
// persists the updated session, and moves on.
func (m Model) recordFeedback(resonance string) (tea.Model, tea.Cmd) {
	entry := models.FeedbackEntry{
		Element:   m.currentElement,
		Text:      resonance,
		Timestamp: time.Now().UTC(),
	}

	switch m.system {
	case models.SystemAstrology:
		state := m.engines.Astro.RecordFeedback(*m.reading.Astrology, m.currentElement, entry)
		m.reading.Astrology = &state
	case models.SystemTarot:
		state := m.engines.Tarot.RecordFeedback(*m.reading.Tarot, entry)
		m.reading.Tarot = &state
	case models.SystemIChing:
		state := m.engines.IChing.RecordFeedback(*m.reading.IChing, entry)
		m.reading.IChing = &state
	}

	m.reading.UpdatedAt = time.Now().UTC()
	if err := m.store.SaveReading(m.reading); err != nil {
		m.err = fmt.Errorf("failed to save reading: %w", err)
		m.state = StateMenu
		return m, nil
	}
	return m.presentNextReveal()
}

// presentNextReveal shows the next unrevealed element, or the synthesis when
// the reading is complete.
func (m Model) presentNextReveal() (tea.Model, tea.Cmd) {
	switch m.system {
	case models.SystemAstrology:
		if reveal := m.engines.Astro.NextReveal(*m.reading.Astrology); reveal != nil {
			m.currentElement = reveal.Planet
			m.showChartReveal(reveal)
			m.state = StateRevealing
			return m, nil
		}
	case models.SystemTarot:
		if reveal := m.engines.Tarot.NextReveal(*m.reading.Tarot); reveal != nil {
			m.currentElement = reveal.Card.Card.ID
			m.showCardReveal(reveal)
			m.state = StateRevealing
			return m, nil
		}
	case models.SystemIChing:
		if reveal := m.engines.IChing.NextReveal(*m.reading.IChing); reveal != nil {
			m.currentElement = fmt.Sprintf("line_%d", reveal.LinePosition)
			m.showLineReveal(reveal)
			m.state = StateRevealing
			return m, nil
		}
	}

	m.showSynthesis()
	m.state = StateSynthesis
	return m, nil
}

func (m Model) updateSynthesis(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.revealView, cmd = m.revealView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Enter), key.Matches(keyMsg, m.keys.Back):
		m.state = StateMenu
		return m, nil
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.revealView, cmd = m.revealView.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.state = StateMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.readingList, cmd = m.readingList.Update(msg)
	return m, cmd
}

func (m Model) updateViewReading(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.revealView, cmd = m.revealView.Update(msg)
		return m, cmd
	}

	if key.Matches(keyMsg, m.keys.Back) || key.Matches(keyMsg, m.keys.Enter) {
		m.state = StateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.revealView, cmd = m.revealView.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if err := m.store.DeleteReading(m.readingToDeleteID); err != nil {
			m.err = err
		}
		m.readingToDeleteID = ""
		m.refreshReadings()
		m.state = StateBrowse
	case "n", "esc":
		m.readingToDeleteID = ""
		m.state = StateBrowse
	}
	return m, nil
}

func (m *Model) refreshReadings() {
	readings, err := m.store.GetAllReadings()
	if err != nil {
		m.err = err
		return
	}
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].CreatedAt.After(readings[j].CreatedAt)
	})
	m.readingList.SetReadings(readings)
}
