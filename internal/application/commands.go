package application

import "github.com/bnema/medportal-cli/internal/domain"

const minPasswordLength = 6

type RegisterCommand struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
	Specialty       string
}

type LoginCommand struct {
	Email    string
	Password string
}

type BookAppointmentCommand struct {
	DoctorID string
	Date     string
	Time     string
}

type UpdateAppointmentStatusCommand struct {
	ID     string
	Status domain.AppointmentStatus
}
