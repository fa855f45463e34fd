package service

import (
	"context"
	"testing"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/repository"
	"github.com/rvaughn/taskdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) (ProjectService, *notify.Hub) {
	t.Helper()
	db := testutil.NewTestDB(t)
	hub := notify.NewHub()
	return NewProjectService(repository.NewSQLiteProjectRepo(db), hub, 20), hub
}

func createDraft(t *testing.T, svc ProjectService) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Thesis Chapter",
		testutil.WithStatus(domain.StatusDraft),
		testutil.WithoutPayout(),
		testutil.WithSupervisor("sup-1", "Priya"))
	require.NoError(t, svc.Create(context.Background(), p))
	return p
}

func TestProjectService_Create_Defaults(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Fresh")
	p.Status = ""
	p.CommissionPct = 0
	require.NoError(t, svc.Create(ctx, p))

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, fetched.Status)
	assert.Equal(t, 20.0, fetched.CommissionPct, "platform commission applied")
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	missingTitle := testutil.NewTestProject("")
	require.Error(t, svc.Create(ctx, missingTitle))

	badShortID := testutil.NewTestProject("X")
	badShortID.ShortID = "nope"
	require.Error(t, svc.Create(ctx, badShortID))

	noDeadline := testutil.NewTestProject("X")
	noDeadline.Deadline = time.Time{}
	require.Error(t, svc.Create(ctx, noDeadline))
}

func TestProjectService_FullLifecycle(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	steps := []struct {
		name string
		op   func() error
		want domain.ProjectStatus
	}{
		{"submit", func() error { return svc.Submit(ctx, p.ID) }, domain.StatusSubmitted},
		{"analyze", func() error { return svc.Analyze(ctx, p.ID) }, domain.StatusAnalyzing},
		{"quote", func() error { return svc.Quote(ctx, p.ID, 250) }, domain.StatusQuoted},
		{"request payment", func() error { return svc.RequestPayment(ctx, p.ID) }, domain.StatusPaymentPending},
		{"confirm payment", func() error { return svc.ConfirmPayment(ctx, p.ID) }, domain.StatusPaid},
		{"open", func() error { return svc.OpenForAssignment(ctx, p.ID) }, domain.StatusAssigning},
		{"assign", func() error { return svc.Assign(ctx, p.ID, "doer-1", "Marco") }, domain.StatusAssigned},
		{"start", func() error { return svc.Start(ctx, p.ID) }, domain.StatusInProgress},
		{"submit for qc", func() error { return svc.SubmitForQC(ctx, p.ID) }, domain.StatusSubmittedForQC},
		{"start qc", func() error { return svc.StartQC(ctx, p.ID) }, domain.StatusQCInProgress},
		{"approve qc", func() error { return svc.ApproveQC(ctx, p.ID) }, domain.StatusQCApproved},
		{"deliver", func() error { return svc.Deliver(ctx, p.ID) }, domain.StatusDelivered},
		{"complete", func() error { return svc.Complete(ctx, p.ID) }, domain.StatusCompleted},
	}

	for _, step := range steps {
		require.NoError(t, step.op(), "step %s", step.name)
		fetched, err := svc.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, step.want, fetched.Status, "after %s", step.name)
	}
}

func TestProjectService_Quote_SetsPayout(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	require.NoError(t, svc.Submit(ctx, p.ID))
	require.NoError(t, svc.Analyze(ctx, p.ID))
	require.NoError(t, svc.Quote(ctx, p.ID, 300))

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Payout)
	assert.Equal(t, 300.0, *fetched.Payout)

	require.Error(t, svc.Quote(ctx, p.ID, 100), "already quoted")
}

func TestProjectService_Quote_RejectsNonPositive(t *testing.T) {
	svc, _ := newProjectService(t)
	p := createDraft(t, svc)

	err := svc.Quote(context.Background(), p.ID, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}

func TestProjectService_InvalidTransitionRejected(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	err := svc.Deliver(ctx, p.ID)
	require.Error(t, err, "draft cannot be delivered")
	assert.Contains(t, err.Error(), "cannot move project")

	fetched, ferr := svc.GetByID(ctx, p.ID)
	require.NoError(t, ferr)
	assert.Equal(t, domain.StatusDraft, fetched.Status, "status untouched on rejection")
}

func TestProjectService_RevisionLoop(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	for _, op := range []func() error{
		func() error { return svc.Submit(ctx, p.ID) },
		func() error { return svc.Analyze(ctx, p.ID) },
		func() error { return svc.Quote(ctx, p.ID, 200) },
		func() error { return svc.RequestPayment(ctx, p.ID) },
		func() error { return svc.ConfirmPayment(ctx, p.ID) },
		func() error { return svc.OpenForAssignment(ctx, p.ID) },
		func() error { return svc.Assign(ctx, p.ID, "doer-1", "Marco") },
		func() error { return svc.Start(ctx, p.ID) },
		func() error { return svc.SubmitForQC(ctx, p.ID) },
		func() error { return svc.StartQC(ctx, p.ID) },
		func() error { return svc.ApproveQC(ctx, p.ID) },
		func() error { return svc.Deliver(ctx, p.ID) },
		func() error { return svc.RequestRevision(ctx, p.ID) },
		func() error { return svc.StartRevision(ctx, p.ID) },
		func() error { return svc.SubmitForQC(ctx, p.ID) },
	} {
		require.NoError(t, op())
	}

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmittedForQC, fetched.Status,
		"a revision can be resubmitted for QC")
}

func TestProjectService_QCRejectionSendsBackToWork(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	for _, op := range []func() error{
		func() error { return svc.Submit(ctx, p.ID) },
		func() error { return svc.Analyze(ctx, p.ID) },
		func() error { return svc.Quote(ctx, p.ID, 200) },
		func() error { return svc.RequestPayment(ctx, p.ID) },
		func() error { return svc.ConfirmPayment(ctx, p.ID) },
		func() error { return svc.OpenForAssignment(ctx, p.ID) },
		func() error { return svc.Assign(ctx, p.ID, "doer-1", "Marco") },
		func() error { return svc.Start(ctx, p.ID) },
		func() error { return svc.SubmitForQC(ctx, p.ID) },
		func() error { return svc.StartQC(ctx, p.ID) },
		func() error { return svc.RejectQC(ctx, p.ID) },
		func() error { return svc.Rework(ctx, p.ID) },
	} {
		require.NoError(t, op())
	}

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, fetched.Status)
}

func TestProjectService_CancelFromAnyNonTerminal(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()
	p := createDraft(t, svc)

	require.NoError(t, svc.Cancel(ctx, p.ID))
	require.NoError(t, svc.Refund(ctx, p.ID))

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, fetched.Status)

	require.Error(t, svc.Cancel(ctx, p.ID), "terminal projects stay put")
}

func TestProjectService_TransitionsPublishEvents(t *testing.T) {
	svc, hub := newProjectService(t)
	ctx := context.Background()

	events, cancel := hub.Subscribe()
	defer cancel()

	p := createDraft(t, svc)
	ev := <-events
	assert.Equal(t, notify.KindProjectUpdated, ev.Kind)
	assert.Equal(t, p.ID, ev.ProjectID)

	require.NoError(t, svc.Submit(ctx, p.ID))
	ev = <-events
	assert.Equal(t, notify.KindStatusChanged, ev.Kind)
}

func TestProjectService_AssignPublishesAssignment(t *testing.T) {
	svc, hub := newProjectService(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Pool Item", testutil.WithoutPayout())
	p.Status = domain.StatusAssigning
	require.NoError(t, svc.Create(ctx, p))

	events, cancel := hub.Subscribe()
	defer cancel()

	require.NoError(t, svc.Assign(ctx, p.ID, "doer-1", "Marco"))

	ev := <-events
	assert.Equal(t, notify.KindProjectAssigned, ev.Kind)

	fetched, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marco", fetched.DoerName)
}
