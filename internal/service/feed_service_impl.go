package service

import (
	"context"
	"sync/atomic"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/repository"
)

type feedService struct {
	projects repository.ProjectRepo
	// gen numbers refreshes. A refresh whose generation is no longer
	// the newest when its query finishes returns a stale result, so a
	// slow fetch can never overwrite the outcome of a later one.
	gen atomic.Uint64
}

func NewFeedService(projects repository.ProjectRepo) FeedService {
	return &feedService{projects: projects}
}

func (f *feedService) Refresh(ctx context.Context, viewer domain.Profile) FeedResult {
	gen := f.gen.Add(1)

	recs, err := f.fetch(ctx, viewer)

	if f.gen.Load() != gen {
		return FeedResult{Gen: gen, Stale: true}
	}
	if err != nil {
		return FeedResult{Gen: gen, Err: err}
	}
	return FeedResult{Gen: gen, Projects: recs}
}

func (f *feedService) fetch(ctx context.Context, viewer domain.Profile) ([]*domain.Project, error) {
	if viewer.Role == domain.RoleSupervisor {
		return f.projects.ListBySupervisor(ctx, viewer.ID)
	}

	assigned, err := f.projects.ListByDoer(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	pool, err := f.projects.ListPool(ctx)
	if err != nil {
		return nil, err
	}
	return append(assigned, pool...), nil
}
