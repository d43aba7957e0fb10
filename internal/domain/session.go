package domain

import (
	"sort"
	"time"
)

// Session is the ordered conversation of one user. It is not safe for
// concurrent use; callers serialize access.
type Session struct {
	userID string
	turns  []ConversationTurn
	now    func() time.Time
	newID  func() string
}

type SessionOption func(*Session)

func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

func WithTurnIDGenerator(newID func() string) SessionOption {
	return func(s *Session) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewSession restores a session for userID. Turns owned by another user and
// repeated ids are dropped.
func NewSession(userID string, turns []ConversationTurn, opts ...SessionOption) *Session {
	s := &Session{
		userID: userID,
		now:    time.Now,
		newID:  NewLocalTurnID,
	}
	for _, opt := range opts {
		opt(s)
	}

	seen := make(map[string]struct{}, len(turns))
	for _, turn := range turns {
		if turn.UserID != userID {
			continue
		}
		if _, dup := seen[turn.ID]; dup || turn.ID == "" {
			continue
		}
		seen[turn.ID] = struct{}{}
		if !turn.State.Valid() {
			turn.State = inferState(turn)
		}
		s.turns = append(s.turns, turn)
	}

	return s
}

func inferState(turn ConversationTurn) TurnState {
	switch {
	case turn.Response == "":
		return TurnPending
	case turn.Response == FailedReplyPlaceholder:
		return TurnFailed
	case turn.IsLocal() && turn.RemoteID == "":
		return TurnOffline
	default:
		return TurnResolved
	}
}

func (s *Session) UserID() string {
	return s.userID
}

func (s *Session) Len() int {
	return len(s.turns)
}

// AppendPending records message with an empty reply and returns the new turn.
func (s *Session) AppendPending(userID, message string) (ConversationTurn, error) {
	if userID != s.userID {
		return ConversationTurn{}, ErrForeignTurn
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	turn := ConversationTurn{
		ID:        id,
		UserID:    userID,
		Message:   message,
		Timestamp: s.now().UTC(),
		State:     TurnPending,
	}
	s.turns = append(s.turns, turn)

	return turn, nil
}

// Resolve assigns a confirmed reply. A zero timestamp keeps the current one.
// It reports false when no turn has that id.
func (s *Session) Resolve(turnID, response string, timestamp time.Time) bool {
	return s.settle(turnID, response, timestamp, TurnResolved)
}

// ResolveOffline assigns a reply produced without the portal.
func (s *Session) ResolveOffline(turnID, response string, timestamp time.Time) bool {
	return s.settle(turnID, response, timestamp, TurnOffline)
}

// Fail overlays the failure placeholder and keeps the timestamp.
func (s *Session) Fail(turnID string) bool {
	return s.settle(turnID, FailedReplyPlaceholder, time.Time{}, TurnFailed)
}

func (s *Session) settle(turnID, response string, timestamp time.Time, state TurnState) bool {
	i := s.indexOf(turnID)
	if i < 0 {
		return false
	}

	s.turns[i].Response = response
	s.turns[i].State = state
	if !timestamp.IsZero() {
		s.turns[i].Timestamp = timestamp
	}

	return true
}

// Confirm records the portal id of a locally created turn.
func (s *Session) Confirm(turnID, remoteID string) bool {
	i := s.indexOf(turnID)
	if i < 0 || remoteID == "" {
		return false
	}

	s.turns[i].RemoteID = remoteID
	return true
}

// MergeRemoteHistory folds the portal history into the session. A remote turn
// replaces the local turn whose ID or RemoteID equals its id. Local turns with
// no remote counterpart are kept. Remote turns for another user are skipped;
// the skipped count is returned.
func (s *Session) MergeRemoteHistory(remote []ConversationTurn) int {
	byID := make(map[string]int, len(s.turns)*2)
	for i, turn := range s.turns {
		byID[turn.ID] = i
		if turn.RemoteID != "" {
			byID[turn.RemoteID] = i
		}
	}

	claimed := make(map[int]struct{})
	incoming := make([]ConversationTurn, 0, len(remote))
	ignored := 0
	for _, turn := range remote {
		if turn.UserID != s.userID || turn.ID == "" {
			ignored++
			continue
		}
		turn.State = TurnResolved
		if turn.Response == "" {
			turn.State = TurnPending
		}

		i, ok := byID[turn.ID]
		if !ok {
			i, ok = s.unconfirmedMatch(turn, claimed)
		}
		if ok && i >= len(s.turns) {
			incoming[i-len(s.turns)] = turn
			continue
		}
		if ok {
			local := s.turns[i]
			turn.RemoteID = local.RemoteID
			if turn.ID != local.ID {
				turn.RemoteID = turn.ID
			}
			turn.ID = local.ID
			if turn.DoctorID == "" {
				turn.DoctorID = local.DoctorID
			}
			if turn.Timestamp.IsZero() {
				turn.Timestamp = local.Timestamp
			}
			s.turns[i] = turn
			claimed[i] = struct{}{}
			byID[turn.RemoteID] = i
			continue
		}

		byID[turn.ID] = len(s.turns) + len(incoming)
		incoming = append(incoming, turn)
	}

	sort.SliceStable(incoming, func(i, j int) bool {
		return incoming[i].Timestamp.Before(incoming[j].Timestamp)
	})
	s.turns = append(s.turns, incoming...)

	return ignored
}

// unconfirmedMatch finds a local turn the portal stored without reporting
// an id, not yet paired with a remote turn. A resolved turn must carry the
// same message and reply. A failed turn only needs the same message.
func (s *Session) unconfirmedMatch(remote ConversationTurn, claimed map[int]struct{}) (int, bool) {
	for i, turn := range s.turns {
		if _, taken := claimed[i]; taken {
			continue
		}
		if turn.RemoteID != "" || !turn.IsLocal() || turn.Message != remote.Message {
			continue
		}
		switch turn.State {
		case TurnResolved:
			if turn.Response == remote.Response {
				return i, true
			}
		case TurnFailed:
			return i, true
		}
	}

	return -1, false
}

// PrunePending drops turns still pending at cutoff and returns how many.
func (s *Session) PrunePending(cutoff time.Time) int {
	kept := s.turns[:0]
	pruned := 0
	for _, turn := range s.turns {
		if turn.IsPending() && turn.Timestamp.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, turn)
	}
	s.turns = kept

	return pruned
}

// Turns returns the turns in insertion order.
func (s *Session) Turns() []ConversationTurn {
	turns := make([]ConversationTurn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

func (s *Session) Turn(turnID string) (ConversationTurn, bool) {
	i := s.indexOf(turnID)
	if i < 0 {
		return ConversationTurn{}, false
	}
	return s.turns[i], true
}

// SortedAscending orders by timestamp, oldest first. Ties keep insertion order.
func (s *Session) SortedAscending() []ConversationTurn {
	turns := s.Turns()
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Timestamp.Before(turns[j].Timestamp)
	})
	return turns
}

// SortedDescending orders by timestamp, newest first. Ties keep insertion order.
func (s *Session) SortedDescending() []ConversationTurn {
	turns := s.Turns()
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Timestamp.After(turns[j].Timestamp)
	})
	return turns
}

func (s *Session) indexOf(turnID string) int {
	for i := range s.turns {
		if s.turns[i].ID == turnID {
			return i
		}
	}
	return -1
}
