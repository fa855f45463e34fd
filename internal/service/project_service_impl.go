package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/repository"
)

type projectService struct {
	projects      repository.ProjectRepo
	hub           *notify.Hub
	commissionPct float64
}

// NewProjectService wires project CRUD and workflow transitions.
// Transitions publish events on hub; pass nil to disable publishing.
func NewProjectService(projects repository.ProjectRepo, hub *notify.Hub, commissionPct float64) ProjectService {
	return &projectService{projects: projects, hub: hub, commissionPct: commissionPct}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := p.ValidateShortID(); err != nil {
		return err
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Deadline.IsZero() {
		return fmt.Errorf("deadline is required")
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusDraft
	}
	if !domain.IsValidStatus(p.Status) {
		return fmt.Errorf("unknown status %q", p.Status)
	}
	if p.CommissionPct == 0 {
		p.CommissionPct = s.commissionPct
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return err
	}
	s.publish(notify.KindProjectUpdated, p.ID)
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	return s.projects.GetByShortID(ctx, shortID)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return err
	}
	s.publish(notify.KindProjectUpdated, p.ID)
	return nil
}

// transition moves a project along the workflow after checking the
// current status is an allowed predecessor. mutate may adjust other
// fields before the write.
func (s *projectService) transition(ctx context.Context, id string, to domain.ProjectStatus, from []domain.ProjectStatus, mutate func(*domain.Project) error) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	allowed := false
	for _, f := range from {
		if p.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move project %s from %s to %s", p.DisplayID(), p.Status, to)
	}

	if mutate != nil {
		if err := mutate(p); err != nil {
			return err
		}
	}
	p.Status = to
	p.UpdatedAt = time.Now().UTC()
	if err := s.projects.Update(ctx, p); err != nil {
		return err
	}

	kind := notify.KindStatusChanged
	switch to {
	case domain.StatusAssigned:
		kind = notify.KindProjectAssigned
	case domain.StatusAssigning:
		kind = notify.KindPoolAdded
	}
	s.publish(kind, p.ID)
	return nil
}

func (s *projectService) Submit(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusSubmitted,
		[]domain.ProjectStatus{domain.StatusDraft}, nil)
}

func (s *projectService) Analyze(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusAnalyzing,
		[]domain.ProjectStatus{domain.StatusSubmitted}, nil)
}

func (s *projectService) Quote(ctx context.Context, id string, payout float64) error {
	if payout <= 0 {
		return fmt.Errorf("quote must be positive, got %.2f", payout)
	}
	return s.transition(ctx, id, domain.StatusQuoted,
		[]domain.ProjectStatus{domain.StatusAnalyzing},
		func(p *domain.Project) error {
			p.Payout = &payout
			if p.CommissionPct == 0 {
				p.CommissionPct = s.commissionPct
			}
			return nil
		})
}

func (s *projectService) RequestPayment(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusPaymentPending,
		[]domain.ProjectStatus{domain.StatusQuoted}, nil)
}

func (s *projectService) ConfirmPayment(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusPaid,
		[]domain.ProjectStatus{domain.StatusPaymentPending}, nil)
}

func (s *projectService) OpenForAssignment(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusAssigning,
		[]domain.ProjectStatus{domain.StatusPaid}, nil)
}

func (s *projectService) Assign(ctx context.Context, id, doerID, doerName string) error {
	if doerID == "" {
		return fmt.Errorf("doer ID is required")
	}
	return s.transition(ctx, id, domain.StatusAssigned,
		[]domain.ProjectStatus{domain.StatusAssigning},
		func(p *domain.Project) error {
			p.DoerID = doerID
			p.DoerName = doerName
			return nil
		})
}

func (s *projectService) Start(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusInProgress,
		[]domain.ProjectStatus{domain.StatusAssigned}, nil)
}

func (s *projectService) SubmitForQC(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusSubmittedForQC,
		[]domain.ProjectStatus{domain.StatusInProgress, domain.StatusInRevision}, nil)
}

func (s *projectService) StartQC(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusQCInProgress,
		[]domain.ProjectStatus{domain.StatusSubmittedForQC}, nil)
}

func (s *projectService) ApproveQC(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusQCApproved,
		[]domain.ProjectStatus{domain.StatusQCInProgress}, nil)
}

func (s *projectService) RejectQC(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusQCRejected,
		[]domain.ProjectStatus{domain.StatusQCInProgress}, nil)
}

func (s *projectService) Rework(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusInProgress,
		[]domain.ProjectStatus{domain.StatusQCRejected}, nil)
}

func (s *projectService) Deliver(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusDelivered,
		[]domain.ProjectStatus{domain.StatusQCApproved}, nil)
}

func (s *projectService) RequestRevision(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusRevisionRequested,
		[]domain.ProjectStatus{domain.StatusDelivered}, nil)
}

func (s *projectService) StartRevision(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusInRevision,
		[]domain.ProjectStatus{domain.StatusRevisionRequested}, nil)
}

func (s *projectService) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusCompleted,
		[]domain.ProjectStatus{domain.StatusDelivered}, nil)
}

func (s *projectService) AutoApprove(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusAutoApproved,
		[]domain.ProjectStatus{domain.StatusDelivered}, nil)
}

func (s *projectService) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusCancelled, nonTerminalStatuses(), nil)
}

func (s *projectService) Refund(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.StatusRefunded,
		[]domain.ProjectStatus{domain.StatusCancelled}, nil)
}

func (s *projectService) publish(kind notify.Kind, projectID string) {
	if s.hub != nil {
		s.hub.Publish(notify.Event{Kind: kind, ProjectID: projectID})
	}
}

func nonTerminalStatuses() []domain.ProjectStatus {
	var out []domain.ProjectStatus
	for _, st := range domain.AllStatuses {
		if !st.IsTerminal() {
			out = append(out, st)
		}
	}
	return out
}
