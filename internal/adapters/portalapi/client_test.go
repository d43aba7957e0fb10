package portalapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/api", server.Client(), time.Second, nil)
	client.Clock = fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return client
}

func TestLoginDecodesNumericID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		_, _ = w.Write([]byte(`{"id":7,"email":"ana@example.com","name":"Ana","role":"patient","specialty":null}`))
	})

	user, err := client.Login(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: "7", Email: "ana@example.com", Name: "Ana", Role: domain.RolePatient}, user)
}

func TestLoginSurfacesServerError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "ana@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, "Invalid credentials", statusErr.Message)
}

func TestRegisterSendsRoleAndSpecialty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)

		var body registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "doctor", body.Role)
		assert.Equal(t, "Cardiology", body.Specialty)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3,"email":"dr@example.com","name":"Dr. Who","role":"doctor","specialty":"Cardiology"}`))
	})

	user, err := client.Register(context.Background(), domain.Registration{
		Name:      "Dr. Who",
		Email:     "dr@example.com",
		Password:  "secret1",
		Role:      domain.RoleDoctor,
		Specialty: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.Equal(t, "Cardiology", user.Specialty)
}

func TestListDoctors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/doctors", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Dr. Sarah Johnson","specialty":"General Practice","email":"sarah@example.com"},{"id":"2","name":"Dr. Chen","specialty":null,"email":"chen@example.com"}]`))
	})

	doctors, err := client.ListDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "1", doctors[0].ID)
	assert.Equal(t, "General Practice", doctors[0].Specialty)
	assert.Equal(t, "2", doctors[1].ID)
	assert.Empty(t, doctors[1].Specialty)
}

func TestCreateAppointmentReturnsServerID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments", r.URL.Path)

		var body appointmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "7", body.UserID)
		assert.Equal(t, "scheduled", body.Status)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	})

	id, err := client.CreateAppointment(context.Background(), domain.Appointment{
		UserID:   "7",
		DoctorID: "1",
		Date:     "2025-03-02",
		Time:     "09:00",
		Status:   domain.AppointmentScheduled,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestListAppointmentsUsesScopeQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("doctorId"))
		assert.Empty(t, r.URL.Query().Get("userId"))
		_, _ = w.Write([]byte(`[{"id":1,"userId":7,"doctorId":5,"doctorName":"Dr. X","patientName":"Ana","date":"2025-03-02","time":"09:00","status":"scheduled","createdAt":"2025-03-01T08:30:15.123456"}]`))
	})

	appointments, err := client.ListAppointments(context.Background(), ports.DoctorScope("5"))
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "1", appointments[0].ID)
	assert.Equal(t, "7", appointments[0].UserID)
	assert.Equal(t, domain.AppointmentScheduled, appointments[0].Status)
	assert.Equal(t, time.Date(2025, 3, 1, 8, 30, 15, 123456000, time.UTC), appointments[0].CreatedAt)
}

func TestListAppointmentsRequiresScope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL)
	})

	_, err := client.ListAppointments(context.Background(), ports.Scope{})
	require.Error(t, err)
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/appointments/update/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Appointment not found"}`))
	})

	err := client.UpdateAppointmentStatus(context.Background(), "9", domain.AppointmentCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestDeleteAppointmentAcceptsNoContent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/appointments/delete/12", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteAppointment(context.Background(), "12"))
}

func TestReplyWithoutIDOrTimestamp(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "7", body.UserID)
		assert.Equal(t, "I have a fever", body.Message)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"response":"Rest and fluids."}`))
	})

	reply, err := client.Reply(context.Background(), "7", "I have a fever")
	require.NoError(t, err)
	assert.Empty(t, reply.ID)
	assert.False(t, reply.Offline)
	assert.Equal(t, "Rest and fluids.", reply.Response)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), reply.Timestamp)
}

func TestReplyParsesZonelessTimestamp(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"ok","timestamp":"2025-03-01T10:15:00"}`))
	})

	reply, err := client.Reply(context.Background(), "7", "hi")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC), reply.Timestamp)
}

func TestReplyUpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"AI service error","details":"timeout"}`))
	})

	_, err := client.Reply(context.Background(), "7", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteUnavailable)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "AI service error: timeout", statusErr.Message)
}

func TestChatHistoryDecodesTurns(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("userId"))
		_, _ = w.Write([]byte(`{"history":[{"id":2,"userId":7,"doctorId":null,"message":"b","response":"B","timestamp":"2025-03-01T10:00:01"},{"id":1,"userId":7,"doctorId":null,"message":"a","response":"A","timestamp":"2025-03-01T10:00:00Z"}]}`))
	})

	turns, err := client.ChatHistory(context.Background(), ports.PatientScope("7"))
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "2", turns[0].ID)
	assert.Equal(t, "7", turns[0].UserID)
	assert.Empty(t, turns[0].DoctorID)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), turns[1].Timestamp)
}

func TestChatHistoryToleratesMissingOrMalformedHistory(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"absent":    `{}`,
		"null":      `{"history":null}`,
		"wrongType": `{"history":"nope"}`,
		"empty":     ``,
		"notJSON":   `<html></html>`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			turns, err := client.ChatHistory(context.Background(), ports.PatientScope("7"))
			require.NoError(t, err)
			assert.NotNil(t, turns)
			assert.Empty(t, turns)
		})
	}
}

func TestChatHistorySkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"history":[{"id":1,"userId":7,"message":"a","response":"A"},"junk",{"id":{"x":1}}]}`))
	})

	turns, err := client.ChatHistory(context.Background(), ports.PatientScope("7"))
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "1", turns[0].ID)
}

func TestRequestHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListDoctors(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, domain.ErrRemoteUnavailable))
}

func TestBuildAPIURLKeepsBasePath(t *testing.T) {
	t.Parallel()

	endpoint, err := buildAPIURL("http://localhost:5000/api/", "/appointments", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/appointments", endpoint)

	_, err = buildAPIURL("ftp://localhost", "/x", nil)
	require.Error(t, err)

	_, err = buildAPIURL("", "/x", nil)
	require.Error(t, err)
}
