package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rvaughn/taskdesk/internal/db"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/repository"
)

type chatService struct {
	messages repository.MessageRepo
	uow      db.UnitOfWork
	hub      *notify.Hub
}

func NewChatService(messages repository.MessageRepo, uow db.UnitOfWork, hub *notify.Hub) ChatService {
	return &chatService{messages: messages, uow: uow, hub: hub}
}

func (s *chatService) Send(ctx context.Context, projectID string, sender domain.Profile, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	m := &domain.Message{
		ID:       uuid.New().String(),
		SenderID: sender.ID,
		Sender:   sender.Role,
		Body:     body,
		SentAt:   time.Now().UTC(),
	}

	// Check participation and append within one transaction so the
	// project cannot be reassigned between the check and the insert.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txMessages := repository.NewSQLiteMessageRepo(tx)

		p, err := txProjects.GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if !isParticipant(p, sender) {
			return fmt.Errorf("%s is not a participant of project %s", sender.DisplayName, p.DisplayID())
		}
		m.ProjectID = p.ID
		return txMessages.Create(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(notify.Event{Kind: notify.KindProjectUpdated, ProjectID: m.ProjectID})
	}
	return m, nil
}

func (s *chatService) List(ctx context.Context, projectID string) ([]*domain.Message, error) {
	return s.messages.ListByProject(ctx, projectID)
}

func isParticipant(p *domain.Project, who domain.Profile) bool {
	switch who.Role {
	case domain.RoleSupervisor:
		return p.SupervisorID == who.ID
	case domain.RoleDoer:
		return p.DoerID == who.ID
	}
	return false
}
