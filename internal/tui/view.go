package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/weekendly/weekendly/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateAdding:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.dayViews[m.day].View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		summaryStyle.Render(m.summaryLine()),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, day := range models.Days {
		title := map[models.Day]string{
			models.DaySaturday: "Saturday",
			models.DaySunday:   "Sunday",
		}[day]
		if m.day == day {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.toDelete != nil {
		name = m.toDelete.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %s?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
