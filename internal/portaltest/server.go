// Package portaltest runs an in-memory portal API for tests. It answers with
// the same payload shapes as the real portal: numeric ids, zone-less
// timestamps, and a history envelope on chat reads.
package portaltest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000000"

type User struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Specialty *string `json:"specialty"`
	password  string
}

type Appointment struct {
	ID          int    `json:"id"`
	UserID      string `json:"userId"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type ChatEntry struct {
	ID        int     `json:"id"`
	UserID    string  `json:"userId"`
	DoctorID  *string `json:"doctorId"`
	Message   string  `json:"message"`
	Response  string  `json:"response"`
	Timestamp string  `json:"timestamp"`
}

// Server is a fake portal. Reply answers chat messages; when it returns an
// error the chat endpoint responds 502.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	users        []User
	appointments []Appointment
	chats        []ChatEntry
	nextID       int
	now          func() time.Time

	Reply func(message string) (string, bool)
}

func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
		Reply: func(message string) (string, bool) {
			return "Assistant reply to: " + message, true
		},
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root, including the /api prefix.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// AddUser seeds an account and returns its id.
func (s *Server) AddUser(name, email, password, role, specialty string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addUserLocked(name, email, password, role, specialty).ID
}

func (s *Server) Chats() []ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ChatEntry(nil), s.chats...)
}

func (s *Server) Appointments() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Appointment(nil), s.appointments...)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.login)
	mux.HandleFunc("POST /api/register", s.register)
	mux.HandleFunc("GET /api/doctors", s.doctors)
	mux.HandleFunc("GET /api/appointments", s.listAppointments)
	mux.HandleFunc("POST /api/appointments", s.createAppointment)
	mux.HandleFunc("DELETE /api/appointments/delete/{id}", s.deleteAppointment)
	mux.HandleFunc("PUT /api/appointments/update/{id}", s.updateAppointment)
	mux.HandleFunc("POST /api/chat", s.chat)
	mux.HandleFunc("GET /api/chat", s.chatHistory)
	return mux
}

func (s *Server) addUserLocked(name, email, password, role, specialty string) User {
	user := User{ID: s.nextID, Email: email, Name: name, Role: role, password: password}
	if specialty != "" {
		user.Specialty = &specialty
	}
	s.nextID++
	s.users = append(s.users, user)
	return user
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == body.Email && user.password == body.Password {
			writeJSON(w, http.StatusOK, user)
			return
		}
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Specialty string `json:"specialty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == body.Email {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email already registered"})
			return
		}
	}

	user := s.addUserLocked(body.Name, body.Email, body.Password, body.Role, body.Specialty)
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) doctors(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type doctor struct {
		ID        int     `json:"id"`
		Name      string  `json:"name"`
		Specialty *string `json:"specialty"`
		Email     string  `json:"email"`
	}

	doctors := []doctor{}
	for _, user := range s.users {
		if user.Role == "doctor" {
			doctors = append(doctors, doctor{ID: user.ID, Name: user.Name, Specialty: user.Specialty, Email: user.Email})
		}
	}
	writeJSON(w, http.StatusOK, doctors)
}

func (s *Server) listAppointments(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	doctorID := r.URL.Query().Get("doctorId")
	if userID == "" && doctorID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing userId or doctorId"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []Appointment{}
	for _, appointment := range s.appointments {
		if (userID != "" && appointment.UserID == userID) || (doctorID != "" && appointment.DoctorID == doctorID) {
			matches = append(matches, appointment)
		}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var appointment Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appointment.ID = s.nextID
	s.nextID++
	if appointment.Status == "" {
		appointment.Status = "scheduled"
	}
	appointment.CreatedAt = s.now().Format(timestampLayout)
	s.appointments = append(s.appointments, appointment)
	writeJSON(w, http.StatusCreated, map[string]int{"id": appointment.ID})
}

func (s *Server) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, appointment := range s.appointments {
		if appointment.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) updateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Appointment not found"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = body.Status
			writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment status updated"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Appointment not found"})
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string  `json:"userId"`
		DoctorID *string `json:"doctorId"`
		Message  string  `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" || strings.TrimSpace(body.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing userId or message"})
		return
	}

	response, ok := s.Reply(body.Message)
	if !ok {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "AI service error", "details": "upstream unavailable"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := ChatEntry{
		ID:        s.nextID,
		UserID:    body.UserID,
		DoctorID:  body.DoctorID,
		Message:   body.Message,
		Response:  response,
		Timestamp: s.now().Format(timestampLayout),
	}
	s.nextID++
	s.chats = append(s.chats, entry)

	writeJSON(w, http.StatusCreated, map[string]string{"response": entry.Response, "timestamp": entry.Timestamp})
}

func (s *Server) chatHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	doctorID := r.URL.Query().Get("doctorId")
	if userID == "" && doctorID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing userId or doctorId"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := []ChatEntry{}
	for _, entry := range s.chats {
		if userID != "" && entry.UserID == userID {
			history = append(history, entry)
			continue
		}
		if doctorID != "" && entry.DoctorID != nil && *entry.DoctorID == doctorID {
			history = append(history, entry)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp > history[j].Timestamp
	})

	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
