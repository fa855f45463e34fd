package domain

import "time"

// Message is one chat message exchanged on a project between the
// supervisor and the assigned doer.
type Message struct {
	ID        string
	ProjectID string
	SenderID  string
	Sender    Role
	Body      string
	SentAt    time.Time
}
