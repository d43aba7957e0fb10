package ports

import (
	"context"

	"github.com/bnema/medportal-cli/internal/domain"
)

// Scope selects whose records a list call returns. Exactly one field is set.
type Scope struct {
	UserID   string
	DoctorID string
}

func PatientScope(userID string) Scope {
	return Scope{UserID: userID}
}

func DoctorScope(doctorID string) Scope {
	return Scope{DoctorID: doctorID}
}

type PortalAPI interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, registration domain.Registration) (domain.User, error)
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	CreateAppointment(ctx context.Context, appointment domain.Appointment) (string, error)
	ListAppointments(ctx context.Context, scope Scope) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, id string) error
	ChatHistory(ctx context.Context, scope Scope) ([]domain.ConversationTurn, error)
}
