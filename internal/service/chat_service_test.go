package service

import (
	"context"
	"testing"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/repository"
	"github.com/rvaughn/taskdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) (ChatService, *domain.Project) {
	t.Helper()
	db := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(db)
	messages := repository.NewSQLiteMessageRepo(db)

	p := testutil.NewTestProject("Chatty",
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithSupervisor("sup-1", "Priya"),
		testutil.WithDoer("doer-1", "Marco"))
	require.NoError(t, projects.Create(context.Background(), p))

	return NewChatService(messages, testutil.NewTestUoW(db), notify.NewHub()), p
}

func TestChatService_SendAndList(t *testing.T) {
	chat, p := newChatFixture(t)
	ctx := context.Background()

	doer := domain.Profile{ID: "doer-1", Role: domain.RoleDoer, DisplayName: "Marco"}
	sup := domain.Profile{ID: "sup-1", Role: domain.RoleSupervisor, DisplayName: "Priya"}

	_, err := chat.Send(ctx, p.ID, sup, "How is it going?")
	require.NoError(t, err)
	_, err = chat.Send(ctx, p.ID, doer, "Nearly done.")
	require.NoError(t, err)

	msgs, err := chat.List(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleSupervisor, msgs[0].Sender)
	assert.Equal(t, "Nearly done.", msgs[1].Body)
}

func TestChatService_RejectsNonParticipant(t *testing.T) {
	chat, p := newChatFixture(t)

	stranger := domain.Profile{ID: "doer-9", Role: domain.RoleDoer, DisplayName: "Ivan"}
	_, err := chat.Send(context.Background(), p.ID, stranger, "let me in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a participant")
}

func TestChatService_RejectsEmptyBody(t *testing.T) {
	chat, p := newChatFixture(t)

	doer := domain.Profile{ID: "doer-1", Role: domain.RoleDoer}
	_, err := chat.Send(context.Background(), p.ID, doer, "   ")
	require.Error(t, err)
}
