package domain

import "time"

// Profile is the local account identity for this client: who is using
// the dashboard and in which role. It is passed explicitly to whatever
// needs it rather than living in ambient global state. Activated is
// the single onboarding fact allowed to survive across runs.
type Profile struct {
	ID          string
	Role        Role
	DisplayName string
	Email       string
	Activated   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
