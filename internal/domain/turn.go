package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalTurnIDPrefix marks ids minted on this machine. The portal issues
// numeric ids, so the namespaces never collide.
const LocalTurnIDPrefix = "local-"

// FailedReplyPlaceholder replaces the reply of a turn whose send failed.
const FailedReplyPlaceholder = "Sorry, something went wrong."

type TurnState string

const (
	// TurnPending waits for a reply.
	TurnPending TurnState = "pending"
	// TurnResolved carries a reply confirmed by the portal.
	TurnResolved TurnState = "resolved"
	// TurnOffline carries a reply produced locally that the portal never saw.
	TurnOffline TurnState = "offline"
	// TurnFailed carries FailedReplyPlaceholder after a send error.
	TurnFailed TurnState = "failed"
)

func (s TurnState) Valid() bool {
	switch s {
	case TurnPending, TurnResolved, TurnOffline, TurnFailed:
		return true
	default:
		return false
	}
}

type ConversationTurn struct {
	ID        string
	UserID    string
	DoctorID  string
	Message   string
	Response  string
	Timestamp time.Time
	State     TurnState
	// RemoteID is the portal id of a turn first created locally.
	RemoteID string
}

func (t ConversationTurn) IsPending() bool {
	return t.State == TurnPending
}

// HasReply reports whether a reply was assigned, confirmed or not.
func (t ConversationTurn) HasReply() bool {
	return t.State == TurnResolved || t.State == TurnOffline || t.State == TurnFailed
}

func (t ConversationTurn) IsLocal() bool {
	return strings.HasPrefix(t.ID, LocalTurnIDPrefix)
}

func NewLocalTurnID() string {
	return LocalTurnIDPrefix + uuid.NewString()
}

// ChatReply is what a reply source returns for one message.
type ChatReply struct {
	ID        string
	Response  string
	Timestamp time.Time
	// Offline is set by sources that never reach the portal.
	Offline bool
}
