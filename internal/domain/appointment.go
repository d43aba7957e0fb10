package domain

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	default:
		return false
	}
}

type Appointment struct {
	ID          string
	UserID      string
	DoctorID    string
	DoctorName  string
	PatientName string
	Date        string
	Time        string
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// StartsAt combines Date and Time in loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	startsAt, err := time.ParseInLocation(AppointmentDateLayout+" "+AppointmentTimeLayout, a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse appointment %s start: %w", a.ID, err)
	}

	return startsAt, nil
}

func (a Appointment) IsScheduled() bool {
	return a.Status == AppointmentScheduled
}
