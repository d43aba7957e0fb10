package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

// State owns the signed-in user, the appointment list and the conversation
// session. Every transition writes the affected record to the mirror before
// it returns, and transitions are serialized.
type State struct {
	mu sync.Mutex

	user         *domain.User
	appointments []domain.Appointment
	session      *domain.Session

	userRecord        Record[userSnapshot]
	appointmentRecord Record[[]appointmentSnapshot]
	chatRecord        Record[chatSnapshot]

	sessionOpts []domain.SessionOption
	logger      *logging.Logger
}

type StateOption func(*State)

func WithSessionOptions(opts ...domain.SessionOption) StateOption {
	return func(s *State) {
		s.sessionOpts = append(s.sessionOpts, opts...)
	}
}

func WithStateLogger(logger *logging.Logger) StateOption {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewState(store ports.MirrorStore, opts ...StateOption) *State {
	s := &State{
		userRecord:        NewRecord[userSnapshot](store, ports.MirrorKeyCurrentUser),
		appointmentRecord: NewRecord[[]appointmentSnapshot](store, ports.MirrorKeyAppointmentList),
		chatRecord:        NewRecord[chatSnapshot](store, ports.MirrorKeyChatHistory),
		logger:            logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = domain.NewSession("", nil, s.sessionOpts...)

	return s
}

// Restore loads the three records once at start. A record that fails to
// decode is treated as absent; store failures are returned after whatever
// could be loaded has been applied.
func (s *State) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	user, ok, err := s.userRecord.Load(ctx)
	switch {
	case err != nil:
		errs = append(errs, s.degrade(err, s.userRecord.Key()))
	case ok && user.ID != "":
		restored := fromUserSnapshot(user)
		s.user = &restored
	}

	appointments, ok, err := s.appointmentRecord.Load(ctx)
	switch {
	case err != nil:
		errs = append(errs, s.degrade(err, s.appointmentRecord.Key()))
	case ok:
		s.appointments = fromAppointmentSnapshots(appointments)
	}

	ownerID := ""
	if s.user != nil {
		ownerID = s.user.ID
	}

	chat, ok, err := s.chatRecord.Load(ctx)
	switch {
	case err != nil:
		errs = append(errs, s.degrade(err, s.chatRecord.Key()))
		s.session = domain.NewSession(ownerID, nil, s.sessionOpts...)
	case ok && chat.UserID == ownerID:
		s.session = domain.NewSession(ownerID, fromTurnSnapshots(chat.Turns), s.sessionOpts...)
	default:
		s.session = domain.NewSession(ownerID, nil, s.sessionOpts...)
	}

	return errors.Join(errs...)
}

// degrade logs a load failure. Decode failures are swallowed.
func (s *State) degrade(err error, key string) error {
	if errors.Is(err, ErrCorruptRecord) {
		s.logger.Warn("discarding unreadable mirror record", "key", key, "error", err)
		return nil
	}
	s.logger.Warn("mirror record unavailable", "key", key, "error", err)
	return err
}

func (s *State) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *State) Appointments() []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointments := make([]domain.Appointment, len(s.appointments))
	copy(appointments, s.appointments)
	return appointments
}

// Transcript returns the session oldest first.
func (s *State) Transcript() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.SortedAscending()
}

// History returns the session newest first.
func (s *State) History() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.SortedDescending()
}

func (s *State) Turns() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Turns()
}

// SetUser records the signed-in user. Switching to another user starts an
// empty session.
func (s *State) SetUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if err := s.userRecord.Save(ctx, toUserSnapshot(user)); err != nil {
		return err
	}

	if s.session.UserID() != user.ID {
		s.session = domain.NewSession(user.ID, nil, s.sessionOpts...)
		return s.saveSession(ctx)
	}

	return nil
}

// ClearUser forgets everything and removes all three records.
func (s *State) ClearUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.appointments = nil
	s.session = domain.NewSession("", nil, s.sessionOpts...)

	return errors.Join(
		s.userRecord.Clear(ctx),
		s.appointmentRecord.Clear(ctx),
		s.chatRecord.Clear(ctx),
	)
}

func (s *State) SetAppointments(ctx context.Context, appointments []domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append([]domain.Appointment(nil), appointments...)
	return s.saveAppointments(ctx)
}

func (s *State) AddAppointment(ctx context.Context, appointment domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, appointment)
	return s.saveAppointments(ctx)
}

func (s *State) SetAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		s.appointments[i].Status = status
		if err := s.saveAppointments(ctx); err != nil {
			return s.appointments[i], err
		}
		return s.appointments[i], nil
	}

	return domain.Appointment{}, fmt.Errorf("appointment %s: %w", id, domain.ErrAppointmentNotFound)
}

func (s *State) AppendPending(ctx context.Context, message string) (domain.ConversationTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.ConversationTurn{}, domain.ErrNotAuthenticated
	}

	turn, err := s.session.AppendPending(s.user.ID, message)
	if err != nil {
		return domain.ConversationTurn{}, err
	}

	return turn, s.saveSession(ctx)
}

// ResolveTurn applies reply to the pending turn. A reply id is recorded as the
// turn's portal id. The bool is false when the turn no longer exists.
func (s *State) ResolveTurn(ctx context.Context, turnID string, reply domain.ChatReply) (domain.ConversationTurn, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found bool
	if reply.Offline {
		found = s.session.ResolveOffline(turnID, reply.Response, reply.Timestamp)
	} else {
		found = s.session.Resolve(turnID, reply.Response, reply.Timestamp)
		if found && reply.ID != "" {
			s.session.Confirm(turnID, reply.ID)
		}
	}
	if !found {
		return domain.ConversationTurn{}, false, nil
	}

	turn, _ := s.session.Turn(turnID)
	return turn, true, s.saveSession(ctx)
}

func (s *State) FailTurn(ctx context.Context, turnID string) (domain.ConversationTurn, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Fail(turnID) {
		return domain.ConversationTurn{}, false, nil
	}

	turn, _ := s.session.Turn(turnID)
	return turn, true, s.saveSession(ctx)
}

// MergeHistory folds remote turns into the session and returns how many were
// skipped because they belong to another user.
func (s *State) MergeHistory(ctx context.Context, remote []domain.ConversationTurn) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return 0, domain.ErrNotAuthenticated
	}

	ignored := s.session.MergeRemoteHistory(remote)
	return ignored, s.saveSession(ctx)
}

func (s *State) PrunePending(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := s.session.PrunePending(cutoff)
	if pruned == 0 {
		return 0, nil
	}

	return pruned, s.saveSession(ctx)
}

func (s *State) saveAppointments(ctx context.Context) error {
	return s.appointmentRecord.Save(ctx, toAppointmentSnapshots(s.appointments))
}

func (s *State) saveSession(ctx context.Context) error {
	return s.chatRecord.Save(ctx, toChatSnapshot(s.session))
}
