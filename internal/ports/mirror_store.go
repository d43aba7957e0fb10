package ports

import "context"

// Mirror keys. Each holds one full JSON snapshot.
const (
	MirrorKeyCurrentUser     = "currentUser"
	MirrorKeyAppointmentList = "appointmentList"
	MirrorKeyChatHistory     = "chatHistory"
)

// MirrorStore persists named snapshots across restarts. Load reports ok=false
// for a key that was never written.
type MirrorStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
