package service

import (
	"context"

	"github.com/rvaughn/taskdesk/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error

	// Workflow transitions. Each validates the current status against
	// the transition table and rejects anything else.
	Submit(ctx context.Context, id string) error
	Analyze(ctx context.Context, id string) error
	Quote(ctx context.Context, id string, payout float64) error
	RequestPayment(ctx context.Context, id string) error
	ConfirmPayment(ctx context.Context, id string) error
	OpenForAssignment(ctx context.Context, id string) error
	Assign(ctx context.Context, id, doerID, doerName string) error
	Start(ctx context.Context, id string) error
	SubmitForQC(ctx context.Context, id string) error
	StartQC(ctx context.Context, id string) error
	ApproveQC(ctx context.Context, id string) error
	RejectQC(ctx context.Context, id string) error
	Rework(ctx context.Context, id string) error
	Deliver(ctx context.Context, id string) error
	RequestRevision(ctx context.Context, id string) error
	StartRevision(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	AutoApprove(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Refund(ctx context.Context, id string) error
}

// FeedResult is the outcome of one dashboard refresh.
type FeedResult struct {
	Projects []*domain.Project
	// Gen is the refresh generation this result belongs to.
	Gen uint64
	// Stale marks a result that was superseded by a newer refresh
	// while its query was running. Stale results must be discarded,
	// not applied.
	Stale bool
	Err   error
}

// FeedService fetches the role-scoped project list feeding a
// dashboard binder.
type FeedService interface {
	// Refresh fetches the projects visible to the given profile. A
	// doer sees assigned work plus the open pool; a supervisor sees
	// owned projects.
	Refresh(ctx context.Context, viewer domain.Profile) FeedResult
}

// EarningsSummary aggregates a doer's money across projects.
type EarningsSummary struct {
	// Settled covers completed and auto-approved projects.
	SettledNet float64
	// Pending covers work approved or delivered but not yet closed.
	PendingNet float64
	Gross      float64
	Commission float64
	Projects   int
}

type EarningsService interface {
	Summary(ctx context.Context, doerID string) (*EarningsSummary, error)
}

type ChatService interface {
	// Send appends a message; the sender must be a participant of the
	// project.
	Send(ctx context.Context, projectID string, sender domain.Profile, body string) (*domain.Message, error)
	List(ctx context.Context, projectID string) ([]*domain.Message, error)
}

type ProfileService interface {
	// Get returns the local profile, nil when setup has not run.
	Get(ctx context.Context) (*domain.Profile, error)
	// Setup creates or replaces the local profile. The activation
	// flag is preserved across re-setup of the same account.
	Setup(ctx context.Context, role domain.Role, displayName, email string) (*domain.Profile, error)
	// Activate flips the one onboarding flag that persists.
	Activate(ctx context.Context) error
}
