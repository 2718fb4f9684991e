package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/weekendly/weekendly/internal/catalog"
	"github.com/weekendly/weekendly/internal/models"
	"github.com/weekendly/weekendly/internal/tui/components/dayview"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for day, view := range m.dayViews {
			view.SetSize(msg.Width-4, msg.Height-6)
			m.dayViews[day] = view
		}
		return m, nil

	case dayview.AddActivityMsg:
		return m.startAddForm()

	case dayview.DeleteActivityMsg:
		activity := msg.Activity
		m.toDelete = &activity
		m.state = StateConfirmDelete
		return m, nil

	case dayview.AdvanceStatusMsg:
		next, err := m.planner.AdvanceStatus(m.day, msg.Activity.ID)
		if err != nil {
			m.statusMessage = fmt.Sprintf("⚠ %v", err)
		} else {
			m.statusMessage = fmt.Sprintf("%s → %s", msg.Activity.Name, next)
		}
		m.refresh()
		return m, nil

	case dayview.CycleMoodMsg:
		if err := m.planner.SetMood(m.day, msg.Activity.ID, nextMood(msg.Activity.Mood)); err != nil {
			m.statusMessage = fmt.Sprintf("⚠ %v", err)
		}
		m.refresh()
		return m, nil
	}

	switch m.state {
	case StateAdding:
		return m.updateAddForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
			if m.day == models.DaySaturday {
				m.day = models.DaySunday
			} else {
				m.day = models.DaySaturday
			}
			m.statusMessage = ""
			return m, nil
		}
	}

	view, cmd := m.dayViews[m.day].Update(msg)
	m.dayViews[m.day] = view
	return m, cmd
}

func nextMood(current models.Mood) models.Mood {
	for i, mood := range models.Moods {
		if mood == current {
			return models.Moods[(i+1)%len(models.Moods)]
		}
	}
	return models.Moods[0]
}

func (m Model) startAddForm() (tea.Model, tea.Cmd) {
	// Slots that have already passed on a dated day are not offered; a day
	// wholly in the past has nothing left to schedule.
	slots := m.planner.TimeSlotLabels(m.day)
	if len(slots) == 0 {
		m.statusMessage = fmt.Sprintf("⚠ %s has already passed", m.day)
		return m, nil
	}

	form := &AddFormModel{Mood: string(models.MoodHappy)}

	templateOptions := make([]huh.Option[string], 0, len(catalog.Builtin()))
	for _, t := range catalog.Builtin() {
		templateOptions = append(templateOptions, huh.NewOption(fmt.Sprintf("%s (%dm)", t.Name, t.Duration), t.ID))
	}
	timeOptions := make([]huh.Option[string], 0, len(slots)+1)
	timeOptions = append(timeOptions, huh.NewOption("first free slot", ""))
	for _, s := range slots {
		timeOptions = append(timeOptions, huh.NewOption(s, s))
	}
	moodOptions := make([]huh.Option[string], 0, len(models.Moods))
	for _, mood := range models.Moods {
		moodOptions = append(moodOptions, huh.NewOption(string(mood), string(mood)))
	}

	m.addForm = form
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Activity").
				Options(templateOptions...).
				Value(&form.TemplateID),
			huh.NewSelect[string]().
				Title("Start time").
				Options(timeOptions...).
				Value(&form.Time),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions...).
				Value(&form.Mood),
		),
	)
	m.state = StateAdding
	return m, m.form.Init()
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateBrowsing
		m.form = nil
		m.addForm = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitAddForm()
		m.state = StateBrowsing
		m.form = nil
		m.addForm = nil
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitAddForm() {
	template, ok := catalog.Find(m.addForm.TemplateID)
	if !ok {
		m.statusMessage = fmt.Sprintf("⚠ unknown template %q", m.addForm.TemplateID)
		return
	}

	var added models.ScheduledActivity
	var err error
	if m.addForm.Time == "" {
		added, err = m.planner.AddSmart(template, m.day, "")
	} else {
		added, err = m.planner.Add(template, m.day, m.addForm.Time, models.Mood(m.addForm.Mood), "")
	}
	if err != nil {
		m.statusMessage = fmt.Sprintf("⚠ %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("Added %s at %s", added.Name, added.Time)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.planner.Remove(m.day, m.toDelete.ID); err != nil {
			m.statusMessage = fmt.Sprintf("⚠ %v", err)
		} else {
			m.statusMessage = fmt.Sprintf("Deleted %s", m.toDelete.Name)
		}
		m.toDelete = nil
		m.state = StateBrowsing
		m.refresh()
	case "n", "N", "esc", "q":
		m.toDelete = nil
		m.state = StateBrowsing
	}
	return m, nil
}
