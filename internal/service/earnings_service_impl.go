package service

import (
	"context"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/repository"
)

type earningsService struct {
	projects repository.ProjectRepo
}

func NewEarningsService(projects repository.ProjectRepo) EarningsService {
	return &earningsService{projects: projects}
}

// earnedStatuses are the statuses in which a doer's payout counts as
// earned. Settled money is closed work; the rest is pending.
var earnedStatuses = map[domain.ProjectStatus]bool{
	domain.StatusQCApproved:   false,
	domain.StatusDelivered:    false,
	domain.StatusCompleted:    true,
	domain.StatusAutoApproved: true,
}

func (s *earningsService) Summary(ctx context.Context, doerID string) (*EarningsSummary, error) {
	recs, err := s.projects.ListByDoer(ctx, doerID)
	if err != nil {
		return nil, err
	}

	sum := &EarningsSummary{}
	for _, p := range recs {
		settled, earned := earnedStatuses[p.Status]
		if !earned {
			continue
		}
		sum.Projects++
		sum.Gross += p.PayoutOrZero()
		sum.Commission += p.Commission()
		if settled {
			sum.SettledNet += p.NetPayout()
		} else {
			sum.PendingNet += p.NetPayout()
		}
	}
	return sum, nil
}
