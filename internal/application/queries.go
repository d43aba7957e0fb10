package application

import "github.com/bnema/medportal-cli/internal/domain"

// Dashboard is the landing summary for the signed-in user.
type Dashboard struct {
	User     domain.User
	Today    []domain.Appointment
	Upcoming []domain.Appointment
	// Stale is set when the appointment list came from the mirror because the
	// portal could not be reached.
	Stale bool
}

type AppointmentList struct {
	Appointments []domain.Appointment
	Stale        bool
}

type DoctorList struct {
	Doctors []domain.Doctor
	// Offline is set when the bundled directory was used.
	Offline bool
}
