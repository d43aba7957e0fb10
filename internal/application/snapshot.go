package application

import (
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
)

type userSnapshot struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
}

type appointmentSnapshot struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	PatientName string    `json:"patientName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type chatSnapshot struct {
	UserID string         `json:"userId"`
	Turns  []turnSnapshot `json:"turns"`
}

type turnSnapshot struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	DoctorID  string    `json:"doctorId,omitempty"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"`
	RemoteID  string    `json:"remoteId,omitempty"`
}

func toUserSnapshot(user domain.User) userSnapshot {
	return userSnapshot{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Specialty: user.Specialty,
	}
}

func fromUserSnapshot(snapshot userSnapshot) domain.User {
	return domain.User{
		ID:        snapshot.ID,
		Email:     snapshot.Email,
		Name:      snapshot.Name,
		Role:      domain.Role(snapshot.Role),
		Specialty: snapshot.Specialty,
	}
}

func toAppointmentSnapshots(appointments []domain.Appointment) []appointmentSnapshot {
	snapshots := make([]appointmentSnapshot, 0, len(appointments))
	for _, appointment := range appointments {
		snapshots = append(snapshots, appointmentSnapshot{
			ID:          appointment.ID,
			UserID:      appointment.UserID,
			DoctorID:    appointment.DoctorID,
			DoctorName:  appointment.DoctorName,
			PatientName: appointment.PatientName,
			Date:        appointment.Date,
			Time:        appointment.Time,
			Status:      string(appointment.Status),
			CreatedAt:   appointment.CreatedAt,
		})
	}
	return snapshots
}

func fromAppointmentSnapshots(snapshots []appointmentSnapshot) []domain.Appointment {
	appointments := make([]domain.Appointment, 0, len(snapshots))
	for _, snapshot := range snapshots {
		appointments = append(appointments, domain.Appointment{
			ID:          snapshot.ID,
			UserID:      snapshot.UserID,
			DoctorID:    snapshot.DoctorID,
			DoctorName:  snapshot.DoctorName,
			PatientName: snapshot.PatientName,
			Date:        snapshot.Date,
			Time:        snapshot.Time,
			Status:      domain.AppointmentStatus(snapshot.Status),
			CreatedAt:   snapshot.CreatedAt,
		})
	}
	return appointments
}

func toChatSnapshot(session *domain.Session) chatSnapshot {
	turns := session.Turns()
	snapshots := make([]turnSnapshot, 0, len(turns))
	for _, turn := range turns {
		snapshots = append(snapshots, turnSnapshot{
			ID:        turn.ID,
			UserID:    turn.UserID,
			DoctorID:  turn.DoctorID,
			Message:   turn.Message,
			Response:  turn.Response,
			Timestamp: turn.Timestamp,
			State:     string(turn.State),
			RemoteID:  turn.RemoteID,
		})
	}
	return chatSnapshot{UserID: session.UserID(), Turns: snapshots}
}

func fromTurnSnapshots(snapshots []turnSnapshot) []domain.ConversationTurn {
	turns := make([]domain.ConversationTurn, 0, len(snapshots))
	for _, snapshot := range snapshots {
		turns = append(turns, domain.ConversationTurn{
			ID:        snapshot.ID,
			UserID:    snapshot.UserID,
			DoctorID:  snapshot.DoctorID,
			Message:   snapshot.Message,
			Response:  snapshot.Response,
			Timestamp: snapshot.Timestamp,
			State:     domain.TurnState(snapshot.State),
			RemoteID:  snapshot.RemoteID,
		})
	}
	return turns
}
