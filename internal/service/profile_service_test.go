package service

import (
	"context"
	"testing"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/repository"
	"github.com/rvaughn/taskdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) ProfileService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewProfileService(repository.NewSQLiteProfileRepo(db))
}

func TestProfileService_SetupAndGet(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	none, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	p, err := svc.Setup(ctx, domain.RoleDoer, "Marco", "marco@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.Activated)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Marco", got.DisplayName)
}

func TestProfileService_SetupValidation(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, domain.Role("admin"), "X", "")
	require.Error(t, err)

	_, err = svc.Setup(ctx, domain.RoleDoer, "", "")
	require.Error(t, err)
}

func TestProfileService_ActivationSurvivesResetup(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	first, err := svc.Setup(ctx, domain.RoleDoer, "Marco", "")
	require.NoError(t, err)
	require.NoError(t, svc.Activate(ctx))

	second, err := svc.Setup(ctx, domain.RoleDoer, "Marco P.", "marco@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "identity is stable across setup")
	assert.True(t, second.Activated, "the one persisted onboarding flag survives")
}

func TestProfileService_ActivateRequiresProfile(t *testing.T) {
	svc := newProfileService(t)

	err := svc.Activate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run setup first")
}

func TestProfileService_ActivateIsIdempotent(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, domain.RoleSupervisor, "Priya", "")
	require.NoError(t, err)

	require.NoError(t, svc.Activate(ctx))
	require.NoError(t, svc.Activate(ctx))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.Activated)
}
