package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/planner"
	"github.com/weekendly/weekendly/internal/tui/components/dayview"
)

type SessionState int

const (
	StateBrowsing SessionState = iota
	StateAdding
	StateConfirmDelete
)

// AddFormModel backs the huh add form.
type AddFormModel struct {
	TemplateID string
	Time       string
	Mood       string
}

type Model struct {
	planner       *planner.Planner
	state         SessionState
	day           models.Day
	keys          KeyMap
	help          help.Model
	dayViews      map[models.Day]dayview.Model
	form          *huh.Form
	addForm       *AddFormModel
	toDelete      *models.ScheduledActivity
	statusMessage string
	quitting      bool
	width         int
	height        int
}

func NewModel(p *planner.Planner) Model {
	views := map[models.Day]dayview.Model{
		models.DaySaturday: dayview.New(models.DaySaturday, 0, 0),
		models.DaySunday:   dayview.New(models.DaySunday, 0, 0),
	}

	m := Model{
		planner:  p,
		state:    StateBrowsing,
		day:      models.DaySaturday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		dayViews: views,
	}
	m.refresh()
	return m
}

// refresh reloads both day views from the planner.
func (m *Model) refresh() {
	for _, day := range models.Days {
		conflicted := make(map[string]bool)
		for _, c := range m.planner.Conflicts(day) {
			conflicted[c.First.ID] = true
			conflicted[c.Second.ID] = true
		}
		view := m.dayViews[day]
		view.SetActivities(m.planner.DayActivities(day), conflicted, m.planner.Elapsed(day))
		m.dayViews[day] = view
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Add, m.keys.Delete, m.keys.Status, m.keys.Mood, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down},
		{m.keys.Add, m.keys.Delete, m.keys.Status, m.keys.Mood},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) summaryLine() string {
	stats := m.planner.Stats()
	ds := stats.Days[m.day]
	line := fmt.Sprintf("%d activities, %dm planned", ds.Count, ds.DurationMin)
	if ds.Conflicts > 0 {
		line += fmt.Sprintf(", ⚠ %d conflicts", ds.Conflicts)
	}
	if m.statusMessage != "" {
		line += "  |  " + m.statusMessage
	}
	return line
}
