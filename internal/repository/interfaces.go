package repository

import (
	"context"

	"github.com/rvaughn/taskdesk/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// ListByDoer returns projects assigned to the doer, any status.
	ListByDoer(ctx context.Context, doerID string) ([]*domain.Project, error)
	// ListBySupervisor returns projects owned by the supervisor.
	ListBySupervisor(ctx context.Context, supervisorID string) ([]*domain.Project, error)
	// ListPool returns unassigned projects open for claiming.
	ListPool(ctx context.Context) ([]*domain.Project, error)
	// ListByStatuses returns projects whose status is in the given set.
	ListByStatuses(ctx context.Context, statuses []domain.ProjectStatus) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Message, error)
}
