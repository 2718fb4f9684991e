package dayview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/schedule"
)

type AddActivityMsg struct{}

type DeleteActivityMsg struct {
	Activity models.ScheduledActivity
}

type AdvanceStatusMsg struct {
	Activity models.ScheduledActivity
}

type CycleMoodMsg struct {
	Activity models.ScheduledActivity
}

type Item struct {
	Activity   models.ScheduledActivity
	Conflicted bool
	Elapsed    bool
}

func statusGlyph(s models.Status) string {
	switch s {
	case models.StatusInProgress:
		return "◐"
	case models.StatusDone:
		return "✓"
	case models.StatusCancelled:
		return "✗"
	default:
		return "○"
	}
}

func moodGlyph(m models.Mood) string {
	switch m {
	case models.MoodHappy:
		return "😊"
	case models.MoodRelaxed:
		return "😌"
	case models.MoodEnergetic:
		return "⚡"
	case models.MoodFocused:
		return "🎯"
	case models.MoodCreative:
		return "🎨"
	case models.MoodSocial:
		return "👥"
	default:
		return ""
	}
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s %s", statusGlyph(i.Activity.Status), i.Activity.Name)
	if i.Conflicted {
		title = "⚠ " + title
	}
	return title
}

func (i Item) Description() string {
	end := schedule.AddDuration(i.Activity.Time, i.Activity.Duration)
	desc := fmt.Sprintf("%s – %s | %dm", schedule.FormatAmPm(i.Activity.Time), schedule.FormatAmPm(end), i.Activity.Duration)
	if glyph := moodGlyph(i.Activity.Mood); glyph != "" {
		desc += " | " + glyph
	}
	if i.Conflicted {
		desc += " | overlaps another activity"
	}
	if i.Elapsed {
		desc += " | past"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Activity.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Status key.Binding
	Mood   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "advance status"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle mood"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(day models.Day, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = string(day)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally by the parent model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Status, keys.Mood}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Status, keys.Mood}
	}

	return Model{list: l, keys: keys}
}

// SetActivities replaces the list contents. Activities should already be in
// chronological order; conflicted holds ids flagged by the conflict scan and
// elapsed the ids whose start time has passed on a dated day.
func (m *Model) SetActivities(activities []models.ScheduledActivity, conflicted, elapsed map[string]bool) {
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a, Conflicted: conflicted[a.ID], Elapsed: elapsed[a.ID]}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddActivityMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteActivityMsg{Activity: i.Activity} }
			}
		case key.Matches(msg, m.keys.Status):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return AdvanceStatusMsg{Activity: i.Activity} }
			}
		case key.Matches(msg, m.keys.Mood):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return CycleMoodMsg{Activity: i.Activity} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing planned yet.\n  Press 'a' to add an activity."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
