package application

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

const (
	doctorUpcomingLimit  = 5
	patientUpcomingLimit = 3
)

type PortalService struct {
	api    ports.PortalAPI
	state  *State
	clock  ports.Clock
	logger *logging.Logger
}

func NewPortalService(api ports.PortalAPI, state *State, clock ports.Clock, logger *logging.Logger) *PortalService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &PortalService{api: api, state: state, clock: clock, logger: logger}
}

func (s *PortalService) Register(ctx context.Context, cmd RegisterCommand) (domain.User, error) {
	registration, err := validateRegistration(cmd)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.api.Register(ctx, registration)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}
	if user.Role == "" {
		user.Role = registration.Role
	}

	if err := s.state.SetUser(ctx, user); err != nil {
		return user, fmt.Errorf("mirror current user: %w", err)
	}

	return user, nil
}

func validateRegistration(cmd RegisterCommand) (domain.Registration, error) {
	registration := domain.Registration{
		Name:      strings.TrimSpace(cmd.Name),
		Email:     strings.TrimSpace(cmd.Email),
		Password:  cmd.Password,
		Role:      cmd.Role,
		Specialty: strings.TrimSpace(cmd.Specialty),
	}
	if registration.Role == "" {
		registration.Role = domain.RolePatient
	}

	switch {
	case registration.Name == "":
		return domain.Registration{}, domain.NewValidationError("name", "is required")
	case registration.Email == "":
		return domain.Registration{}, domain.NewValidationError("email", "is required")
	case registration.Password == "":
		return domain.Registration{}, domain.NewValidationError("password", "is required")
	}

	if _, err := mail.ParseAddress(registration.Email); err != nil {
		return domain.Registration{}, domain.NewValidationError("email", "is not a valid address")
	}
	if cmd.Password != cmd.ConfirmPassword {
		return domain.Registration{}, domain.NewValidationError("password", "passwords do not match")
	}
	if len(cmd.Password) < minPasswordLength {
		return domain.Registration{}, domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if !registration.Role.Valid() {
		return domain.Registration{}, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", registration.Role))
	}
	if registration.Role == domain.RoleDoctor && registration.Specialty == "" {
		return domain.Registration{}, domain.NewValidationError("specialty", "is required for doctors")
	}
	if registration.Role == domain.RolePatient {
		registration.Specialty = ""
	}

	return registration, nil
}

func (s *PortalService) Login(ctx context.Context, cmd LoginCommand) (domain.User, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return domain.User{}, domain.NewValidationError("email", "is required")
	}
	if cmd.Password == "" {
		return domain.User{}, domain.NewValidationError("password", "is required")
	}

	user, err := s.api.Login(ctx, email, cmd.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	if err := s.state.SetUser(ctx, user); err != nil {
		return user, fmt.Errorf("mirror current user: %w", err)
	}

	return user, nil
}

func (s *PortalService) Logout(ctx context.Context) error {
	if err := s.state.ClearUser(ctx); err != nil {
		return fmt.Errorf("clear mirror: %w", err)
	}
	return nil
}

func (s *PortalService) CurrentUser() (domain.User, error) {
	user, ok := s.state.User()
	if !ok {
		return domain.User{}, domain.ErrNotAuthenticated
	}
	return user, nil
}

// Doctors lists doctors with their bookable slots. When the portal cannot be
// reached the bundled directory is returned.
func (s *PortalService) Doctors(ctx context.Context) DoctorList {
	static := domain.StaticDoctors()

	remote, err := s.api.ListDoctors(ctx)
	if err != nil {
		s.logger.Warn("doctor directory unavailable, using bundled list", "error", err)
		return DoctorList{Doctors: static, Offline: true}
	}

	return DoctorList{Doctors: domain.MergeAvailability(remote, static)}
}

func (s *PortalService) BookAppointment(ctx context.Context, cmd BookAppointmentCommand) (domain.Appointment, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return domain.Appointment{}, err
	}
	if user.IsDoctor() {
		return domain.Appointment{}, fmt.Errorf("book appointment: %w", domain.ErrPermissionDenied)
	}

	if strings.TrimSpace(cmd.DoctorID) == "" {
		return domain.Appointment{}, domain.NewValidationError("doctor", "is required")
	}
	if _, err := time.Parse(domain.AppointmentDateLayout, cmd.Date); err != nil {
		return domain.Appointment{}, domain.NewValidationError("date", "must use YYYY-MM-DD")
	}
	if _, err := time.Parse(domain.AppointmentTimeLayout, cmd.Time); err != nil {
		return domain.Appointment{}, domain.NewValidationError("time", "must use HH:MM")
	}

	doctors := s.Doctors(ctx)
	doctor, ok := domain.FindDoctor(doctors.Doctors, cmd.DoctorID)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("doctor %s: %w", cmd.DoctorID, domain.ErrDoctorNotFound)
	}
	if !doctor.HasSlot(cmd.Time) {
		return domain.Appointment{}, domain.NewValidationError("time", fmt.Sprintf("%s is not available for %s", cmd.Time, doctor.Name))
	}

	appointment := domain.Appointment{
		UserID:      user.ID,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		PatientName: user.Name,
		Date:        cmd.Date,
		Time:        cmd.Time,
		Status:      domain.AppointmentScheduled,
		CreatedAt:   s.clock.Now().UTC(),
	}

	id, err := s.api.CreateAppointment(ctx, appointment)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("book appointment: %w", err)
	}
	appointment.ID = id

	if err := s.state.AddAppointment(ctx, appointment); err != nil {
		return appointment, fmt.Errorf("mirror appointments: %w", err)
	}

	return appointment, nil
}

// Appointments refreshes the list for the signed-in user. On a portal
// failure the mirrored list is returned and marked stale.
func (s *PortalService) Appointments(ctx context.Context) (AppointmentList, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return AppointmentList{}, err
	}

	scope := ports.PatientScope(user.ID)
	if user.IsDoctor() {
		scope = ports.DoctorScope(user.ID)
	}

	appointments, err := s.api.ListAppointments(ctx, scope)
	if err != nil {
		s.logger.Warn("appointments unavailable, showing mirrored list", "user_id", user.ID, "error", err)
		return AppointmentList{Appointments: s.state.Appointments(), Stale: true}, nil
	}

	if err := s.state.SetAppointments(ctx, appointments); err != nil {
		s.logger.Warn("failed to mirror appointments", "error", err)
	}

	return AppointmentList{Appointments: appointments}, nil
}

func (s *PortalService) CancelAppointment(ctx context.Context, id string) (domain.Appointment, error) {
	if _, err := s.CurrentUser(); err != nil {
		return domain.Appointment{}, err
	}
	if strings.TrimSpace(id) == "" {
		return domain.Appointment{}, domain.NewValidationError("id", "is required")
	}

	if err := s.api.DeleteAppointment(ctx, id); err != nil {
		return domain.Appointment{}, fmt.Errorf("cancel appointment %s: %w", id, err)
	}

	return s.markStatus(ctx, id, domain.AppointmentCancelled)
}

func (s *PortalService) UpdateAppointmentStatus(ctx context.Context, cmd UpdateAppointmentStatusCommand) (domain.Appointment, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return domain.Appointment{}, err
	}
	if !user.IsDoctor() {
		return domain.Appointment{}, fmt.Errorf("update appointment status: %w", domain.ErrPermissionDenied)
	}
	if cmd.Status != domain.AppointmentCompleted && cmd.Status != domain.AppointmentCancelled {
		return domain.Appointment{}, domain.NewValidationError("status", "must be completed or cancelled")
	}

	if err := s.api.UpdateAppointmentStatus(ctx, cmd.ID, cmd.Status); err != nil {
		return domain.Appointment{}, fmt.Errorf("set appointment %s status: %w", cmd.ID, err)
	}

	return s.markStatus(ctx, cmd.ID, cmd.Status)
}

// Dashboard summarizes scheduled appointments. Doctors see today's schedule
// and the next five; patients see their next three.
func (s *PortalService) Dashboard(ctx context.Context) (Dashboard, error) {
	list, err := s.Appointments(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	user, err := s.CurrentUser()
	if err != nil {
		return Dashboard{}, err
	}

	now := s.clock.Now()
	dashboard := Dashboard{User: user, Stale: list.Stale}
	scheduled := scheduledByStart(list.Appointments, now.Location())

	if !user.IsDoctor() {
		dashboard.Upcoming = limit(scheduled, patientUpcomingLimit)
		return dashboard, nil
	}

	today := now.Format(domain.AppointmentDateLayout)
	var upcoming []domain.Appointment
	for _, appointment := range scheduled {
		if appointment.Date == today {
			dashboard.Today = append(dashboard.Today, appointment)
		}
		startsAt, err := appointment.StartsAt(now.Location())
		if err == nil && startsAt.After(now) {
			upcoming = append(upcoming, appointment)
		}
	}
	dashboard.Upcoming = limit(upcoming, doctorUpcomingLimit)

	return dashboard, nil
}

func scheduledByStart(appointments []domain.Appointment, loc *time.Location) []domain.Appointment {
	scheduled := make([]domain.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.IsScheduled() {
			scheduled = append(scheduled, appointment)
		}
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		left, leftErr := scheduled[i].StartsAt(loc)
		right, rightErr := scheduled[j].StartsAt(loc)
		if leftErr != nil || rightErr != nil {
			return leftErr == nil && rightErr != nil
		}
		return left.Before(right)
	})

	return scheduled
}

func limit(appointments []domain.Appointment, n int) []domain.Appointment {
	if len(appointments) > n {
		return appointments[:n]
	}
	return appointments
}

// markStatus applies a confirmed status change to the mirrored list. An
// appointment the mirror never saw is not an error.
func (s *PortalService) markStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	appointment, err := s.state.SetAppointmentStatus(ctx, id, status)
	switch {
	case errors.Is(err, domain.ErrAppointmentNotFound):
		return domain.Appointment{ID: id, Status: status}, nil
	case err != nil:
		return appointment, fmt.Errorf("mirror appointments: %w", err)
	default:
		return appointment, nil
	}
}
