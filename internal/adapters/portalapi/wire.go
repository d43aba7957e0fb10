package portalapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
)

// flexID accepts ids sent as JSON numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

// flexTime accepts RFC 3339 and zone-less ISO 8601 timestamps. Zone-less
// values are read as UTC.
type flexTime time.Time

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*t = flexTime{}
		return nil
	}

	parsed, ok := parseTimestamp(*raw)
	if !ok {
		*t = flexTime{}
		return nil
	}
	*t = flexTime(parsed)
	return nil
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed.UTC(), true
	}
	for _, layout := range zonelessLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

type errorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	Message string `json:"message"`
}

type userPayload struct {
	ID        flexID  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Specialty *string `json:"specialty"`
}

func (p userPayload) toDomain() domain.User {
	user := domain.User{
		ID:    string(p.ID),
		Email: p.Email,
		Name:  p.Name,
		Role:  domain.Role(p.Role),
	}
	if p.Specialty != nil {
		user.Specialty = *p.Specialty
	}
	return user
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
}

type doctorPayload struct {
	ID           flexID   `json:"id"`
	Name         string   `json:"name"`
	Specialty    *string  `json:"specialty"`
	Email        string   `json:"email"`
	Availability []string `json:"availability"`
}

func (p doctorPayload) toDomain() domain.Doctor {
	doctor := domain.Doctor{
		ID:           string(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		Availability: p.Availability,
	}
	if p.Specialty != nil {
		doctor.Specialty = *p.Specialty
	}
	return doctor
}

type appointmentRequest struct {
	UserID      string `json:"userId"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type createdPayload struct {
	ID flexID `json:"id"`
}

type appointmentPayload struct {
	ID          flexID   `json:"id"`
	UserID      flexID   `json:"userId"`
	DoctorID    flexID   `json:"doctorId"`
	DoctorName  string   `json:"doctorName"`
	PatientName string   `json:"patientName"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Status      string   `json:"status"`
	CreatedAt   flexTime `json:"createdAt"`
}

func (p appointmentPayload) toDomain() domain.Appointment {
	status := domain.AppointmentStatus(p.Status)
	if status == "" {
		status = domain.AppointmentScheduled
	}
	return domain.Appointment{
		ID:          string(p.ID),
		UserID:      string(p.UserID),
		DoctorID:    string(p.DoctorID),
		DoctorName:  p.DoctorName,
		PatientName: p.PatientName,
		Date:        p.Date,
		Time:        p.Time,
		Status:      status,
		CreatedAt:   time.Time(p.CreatedAt),
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type chatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type chatReplyPayload struct {
	ID        flexID   `json:"id"`
	Response  string   `json:"response"`
	Timestamp flexTime `json:"timestamp"`
}

type chatTurnPayload struct {
	ID        flexID   `json:"id"`
	UserID    flexID   `json:"userId"`
	DoctorID  flexID   `json:"doctorId"`
	Message   string   `json:"message"`
	Response  string   `json:"response"`
	Timestamp flexTime `json:"timestamp"`
}

func (p chatTurnPayload) toDomain() domain.ConversationTurn {
	return domain.ConversationTurn{
		ID:        string(p.ID),
		UserID:    string(p.UserID),
		DoctorID:  string(p.DoctorID),
		Message:   p.Message,
		Response:  p.Response,
		Timestamp: time.Time(p.Timestamp),
	}
}

// historyEnvelope tolerates an absent or malformed history field.
type historyEnvelope struct {
	History json.RawMessage `json:"history"`
}

func decodeHistory(body []byte) []domain.ConversationTurn {
	var envelope historyEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.History) == 0 {
		return []domain.ConversationTurn{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(envelope.History, &entries); err != nil {
		return []domain.ConversationTurn{}
	}

	turns := make([]domain.ConversationTurn, 0, len(entries))
	for _, entry := range entries {
		var payload chatTurnPayload
		if err := json.Unmarshal(entry, &payload); err != nil {
			continue
		}
		turns = append(turns, payload.toDomain())
	}
	return turns
}

func formatID(id string) string {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return id
}
