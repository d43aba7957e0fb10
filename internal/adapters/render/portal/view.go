package portal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/medportal-cli/internal/application"
	"github.com/bnema/medportal-cli/internal/domain"
)

type RenderOptions struct {
	Now      time.Time
	Location *time.Location
}

func (o RenderOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func RenderDoctors(list application.DoctorList) (string, error) {
	return render(doctorsScreen(list))
}

func RenderAppointments(list application.AppointmentList, viewer domain.User) (string, error) {
	return render(appointmentsScreen(list, viewer))
}

func RenderDashboard(dashboard application.Dashboard, opts RenderOptions) (string, error) {
	return render(dashboardScreen(dashboard, opts))
}

func RenderTranscript(title string, turns []domain.ConversationTurn, opts RenderOptions) (string, error) {
	return render(transcriptScreen(title, turns, opts))
}

const staleNotice = "[stale] portal unreachable, showing saved list"

func doctorsScreen(list application.DoctorList) screen {
	sc := screen{
		title:     "Doctors",
		summary:   fmt.Sprintf("doctors: %d", len(list.Doctors)),
		emptyText: "No doctors available.",
		blocks: func(s styles) []string {
			blocks := make([]string, 0, len(list.Doctors))
			for _, doctor := range list.Doctors {
				blocks = append(blocks, s.section.Render(doctorBlock(doctor, s)))
			}
			return blocks
		},
	}
	if list.Offline {
		sc.notice = "[offline] showing the bundled directory"
	}

	return sc
}

func doctorBlock(doctor domain.Doctor, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", doctor.Name, doctor.ID)),
		s.detail.Render(valueOr(doctor.Specialty, "General")),
	}
	if doctor.Email != "" {
		parts = append(parts, s.meta.Render(doctor.Email))
	}
	slots := "unknown"
	if len(doctor.Availability) > 0 {
		slots = strings.Join(doctor.Availability, " ")
	}
	parts = append(parts, s.label.Render("slots: ")+s.detail.Render(slots))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func appointmentsScreen(list application.AppointmentList, viewer domain.User) screen {
	sc := screen{
		title:     "Appointments",
		summary:   fmt.Sprintf("appointments: %d", len(list.Appointments)),
		emptyText: "No appointments yet.",
		blocks: func(s styles) []string {
			blocks := make([]string, 0, len(list.Appointments))
			for _, appointment := range list.Appointments {
				blocks = append(blocks, appointmentLine(appointment, viewer, s))
			}
			return blocks
		},
	}
	if list.Stale {
		sc.notice = staleNotice
	}

	return sc
}

func appointmentLine(appointment domain.Appointment, viewer domain.User, s styles) string {
	counterpart := appointment.DoctorName
	if viewer.IsDoctor() {
		counterpart = appointment.PatientName
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(fmt.Sprintf("#%-4s", appointment.ID)),
		" ",
		s.detail.Render(fmt.Sprintf("%s %s", appointment.Date, appointment.Time)),
		" ",
		s.name.Render(valueOr(counterpart, "unknown")),
		" ",
		s.status(appointment.Status).Render("["+string(appointment.Status)+"]"),
	)
}

func dashboardScreen(dashboard application.Dashboard, opts RenderOptions) screen {
	user := dashboard.User
	sc := screen{
		title:   "Welcome, " + valueOr(user.Name, user.Email),
		summary: "patient",
		blocks: func(s styles) []string {
			var blocks []string
			if user.IsDoctor() {
				blocks = append(blocks, s.section.Render(appointmentSection("Today", dashboard.Today, user, "Nothing scheduled today.", s)))
			}
			return append(blocks, s.section.Render(appointmentSection("Upcoming", dashboard.Upcoming, user, "No upcoming appointments.", s)))
		},
	}
	if user.IsDoctor() {
		sc.summary = fmt.Sprintf("doctor · %s", valueOr(user.Specialty, "General"))
	}
	if !opts.Now.IsZero() {
		sc.date = opts.Now.In(opts.location()).Format("Monday 02 Jan 2006 15:04")
	}
	if dashboard.Stale {
		sc.notice = staleNotice
	}

	return sc
}

func appointmentSection(title string, appointments []domain.Appointment, viewer domain.User, emptyText string, s styles) string {
	parts := []string{s.label.Render(fmt.Sprintf("%s (%d)", title, len(appointments)))}
	if len(appointments) == 0 {
		parts = append(parts, s.empty.Render(emptyText))
	}
	for _, appointment := range appointments {
		parts = append(parts, appointmentLine(appointment, viewer, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func transcriptScreen(title string, turns []domain.ConversationTurn, opts RenderOptions) screen {
	return screen{
		title:     title,
		summary:   fmt.Sprintf("messages: %d", len(turns)),
		emptyText: "No messages yet.",
		blocks: func(s styles) []string {
			blocks := make([]string, 0, len(turns))
			for _, turn := range turns {
				blocks = append(blocks, s.section.Render(turnBlock(turn, opts, s)))
			}
			return blocks
		},
	}
}

func turnBlock(turn domain.ConversationTurn, opts RenderOptions, s styles) string {
	stamp := s.meta.Render(formatTimestamp(turn.Timestamp, opts))
	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.you.Render("you"), " ", stamp),
		s.detail.Render(turn.Message),
	}

	switch turn.State {
	case domain.TurnPending:
		parts = append(parts, s.pending.Render("waiting for reply..."))
	case domain.TurnFailed:
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.assistant.Render("assistant"), " ", s.warning.Render("[failed]")))
		parts = append(parts, s.detail.Render(turn.Response))
	case domain.TurnOffline:
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.assistant.Render("assistant"), " ", s.meta.Render("[offline]")))
		parts = append(parts, s.detail.Render(turn.Response))
	default:
		parts = append(parts, s.assistant.Render("assistant"))
		parts = append(parts, s.detail.Render(turn.Response))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatTimestamp(timestamp time.Time, opts RenderOptions) string {
	if timestamp.IsZero() {
		return "unknown time"
	}

	local := timestamp.In(opts.location())
	if opts.Now.IsZero() {
		return local.Format("2006-01-02 15:04")
	}

	now := opts.Now.In(opts.location())
	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := local.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return local.Format("15:04")
	}

	return local.Format("15:04 on 02 Jan")
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
