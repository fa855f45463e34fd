package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rvaughn/taskdesk/internal/domain"
)

var testShortIDCounter atomic.Int64

// ProjectOption mutates a fixture project before it is returned.
type ProjectOption func(*domain.Project)

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithDeadline(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.Deadline = d
	}
}

func WithPayout(amount float64) ProjectOption {
	return func(p *domain.Project) {
		p.Payout = &amount
	}
}

func WithoutPayout() ProjectOption {
	return func(p *domain.Project) {
		p.Payout = nil
	}
}

func WithDoer(id, name string) ProjectOption {
	return func(p *domain.Project) {
		p.DoerID = id
		p.DoerName = name
	}
}

func WithSupervisor(id, name string) ProjectOption {
	return func(p *domain.Project) {
		p.SupervisorID = id
		p.SupervisorName = name
	}
}

func WithSubject(subject string) ProjectOption {
	return func(p *domain.Project) {
		p.Subject = subject
	}
}

// NewTestProject builds a plausible project fixture with a unique
// short ID. Defaults: assigning status, one-week deadline, quoted at
// 100 with 20% commission.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	payout := 100.0
	p := &domain.Project{
		ID:            uuid.New().String(),
		ShortID:       fmt.Sprintf("TSK-%03d", testShortIDCounter.Add(1)),
		Title:         title,
		Subject:       "General",
		Payout:        &payout,
		CommissionPct: 20,
		Deadline:      now.Add(7 * 24 * time.Hour),
		Status:        domain.StatusAssigning,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestProfile builds a local account fixture.
func NewTestProfile(role domain.Role, name string) *domain.Profile {
	now := time.Now().UTC()
	return &domain.Profile{
		ID:          uuid.New().String(),
		Role:        role,
		DisplayName: name,
		Email:       "test@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
