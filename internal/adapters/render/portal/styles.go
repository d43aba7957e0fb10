package portal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/medportal-cli/internal/domain"
)

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	label     lipgloss.Style
	meta      lipgloss.Style
	scheduled lipgloss.Style
	completed lipgloss.Style
	cancelled lipgloss.Style
	you       lipgloss.Style
	assistant lipgloss.Style
	pending   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		scheduled: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		completed: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		cancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		you:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		pending:   lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

func (s styles) status(status domain.AppointmentStatus) lipgloss.Style {
	switch status {
	case domain.AppointmentCompleted:
		return s.completed
	case domain.AppointmentCancelled:
		return s.cancelled
	default:
		return s.scheduled
	}
}
