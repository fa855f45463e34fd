package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/rvaughn/taskdesk/internal/board"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", StatusLabel(domain.StatusInProgress))
	assert.Equal(t, "Submitted For QC", StatusLabel(domain.StatusSubmittedForQC))
	assert.Equal(t, "Draft", StatusLabel(domain.StatusDraft))
}

func TestFormatProjectList(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := domain.Project{
		ID:       "11111111-aaaa-bbbb-cccc-000000000001",
		ShortID:  "TSK-101",
		Title:    "Statistics problem set",
		Subject:  "Math",
		Deadline: now.Add(48 * time.Hour),
		Status:   domain.StatusInProgress,
	}
	views := []board.ProjectView{board.Transform(p, domain.RoleDoer, now)}

	out := FormatProjectList(views, now)
	assert.Contains(t, out, "TSK-101")
	assert.Contains(t, out, "Statistics problem set")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "In 2d")
	assert.Contains(t, out, "urgent")
}

func TestFormatProjectList_Empty(t *testing.T) {
	out := FormatProjectList(nil, time.Now())
	assert.Contains(t, out, "No projects found.")
}

func TestFormatProjectInspect(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	payout := 200.0
	p := &domain.Project{
		ID:            "11111111-aaaa-bbbb-cccc-000000000001",
		ShortID:       "TSK-101",
		Title:         "Annotated bibliography",
		Deadline:      now.Add(10 * 24 * time.Hour),
		Status:        domain.StatusAssigned,
		Payout:        &payout,
		CommissionPct: 20,
		DoerName:      "Priya",
		WordCount:     1500,
		PageCount:     6,
		CreatedAt:     now.Add(-time.Hour),
	}

	out := FormatProjectInspect(p, now)
	assert.Contains(t, out, "Annotated bibliography")
	assert.Contains(t, out, "TSK-101")
	assert.Contains(t, out, "$200.00")
	assert.Contains(t, out, "net $160.00")
	assert.Contains(t, out, "Priya")
	assert.Contains(t, out, "1500 words / 6 pages")
}

func TestFormatEarnings(t *testing.T) {
	out := FormatEarnings(EarningsData{
		SettledNet: 320,
		PendingNet: 80,
		Gross:      500,
		Commission: 100,
		Projects:   4,
	})
	assert.Contains(t, out, "$320.00")
	assert.Contains(t, out, "$80.00")
	assert.Contains(t, out, "-$100.00")
	assert.Contains(t, out, "EARNINGS")
}

func TestFormatThread(t *testing.T) {
	now := time.Now()
	msgs := []*domain.Message{
		{Sender: domain.RoleSupervisor, Body: "Any progress?", SentAt: now.Add(-time.Hour)},
		{Sender: domain.RoleDoer, Body: "Draft is halfway done.", SentAt: now.Add(-5 * time.Minute)},
	}

	out := FormatThread(msgs, domain.RoleDoer)
	assert.Contains(t, out, "Any progress?")
	assert.Contains(t, out, "Draft is halfway done.")
	assert.Contains(t, out, "You")
	assert.True(t, strings.Index(out, "Any progress?") < strings.Index(out, "Draft is halfway done."))

	assert.Contains(t, FormatThread(nil, domain.RoleDoer), "No messages yet.")
}
