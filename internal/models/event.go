package models

// Auth event types published to the event stream.
const (
	EventUserRegistered         = "user.registered"
	EventPasswordResetRequested = "password.reset_requested"
	EventPasswordResetCompleted = "password.reset_completed"
)

// AuthEvent is the payload published to Kafka after auth operations.
// Publishing is best-effort: the request never fails because of it.
type AuthEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}
