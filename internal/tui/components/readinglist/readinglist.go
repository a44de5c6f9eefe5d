package readinglist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/arcana/internal/models"
)

type OpenReadingMsg struct {
	Reading models.Reading
}

type DeleteReadingMsg struct {
	ID string
}

type Item struct {
	Reading models.Reading
}

func (i Item) Title() string {
	switch i.Reading.System {
	case models.SystemAstrology:
		if c := i.Reading.Astrology; c != nil && c.Chart != nil {
			return fmt.Sprintf("Chart: %s sun, %s rising", c.Chart.Sun.Sign, c.Chart.Ascendant.Sign)
		}
		return "Chart"
	case models.SystemTarot:
		if t := i.Reading.Tarot; t != nil {
			return t.Spread.Name
		}
		return "Tarot"
	case models.SystemIChing:
		if h := i.Reading.IChing; h != nil {
			return fmt.Sprintf("Hexagram %d: %s", h.Hexagram.Number, h.Hexagram.EnglishName)
		}
		return "I Ching"
	}
	return string(i.Reading.System)
}

func (i Item) Description() string {
	desc := i.Reading.CreatedAt.Local().Format("2006-01-02 15:04")
	question := ""
	switch {
	case i.Reading.Tarot != nil:
		question = i.Reading.Tarot.Question
	case i.Reading.IChing != nil:
		question = i.Reading.IChing.Question
	}
	if question != "" {
		desc += " | " + question
	}
	return desc
}

func (i Item) FilterValue() string { return i.Title() + " " + i.Description() }

type KeyMap struct {
	Open   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(readings []models.Reading, width, height int) Model {
	items := make([]list.Item, len(readings))
	for i, r := range readings {
		items[i] = Item{Reading: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Past Readings"
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		k := DefaultKeyMap()
		return []key.Binding{k.Open, k.Delete}
	}

	return Model{list: l, keys: DefaultKeyMap()}
}

func (m *Model) SetReadings(readings []models.Reading) {
	items := make([]list.Item, len(readings))
	for i, r := range readings {
		items[i] = Item{Reading: r}
	}
	m.list.SetItems(items)
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Selected() (models.Reading, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Reading{}, false
	}
	return item.Reading, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(keyMsg, m.keys.Open):
			if reading, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenReadingMsg{Reading: reading} }
			}
		case key.Matches(keyMsg, m.keys.Delete):
			if reading, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteReadingMsg{ID: reading.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
