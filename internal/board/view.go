// Package board is the list pipeline behind both dashboards: it turns
// raw project records into display-ready view rows, then filters,
// sorts and partitions them into the category lists the screens
// render. Everything here is pure; fetching and rendering live
// elsewhere.
package board

import (
	"strings"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
)

// UrgentWindow is how close a deadline has to be before a project is
// flagged urgent.
const UrgentWindow = 3 * 24 * time.Hour

// ProjectView is the display-ready projection of a domain.Project.
// It is rebuilt from scratch on every refresh and never persisted.
type ProjectView struct {
	ID      string
	ShortID string
	Title   string
	Subject string

	Payout    float64
	Deadline  time.Time
	Status    domain.ProjectStatus
	CreatedAt time.Time

	// Counterparty is the name shown opposite the viewer: the doer on
	// a supervisor dashboard and vice versa. Falls back to an ID
	// prefix when the store has no display name.
	Counterparty string

	// Urgent is the deadline flag as of transform time. Filtering
	// recomputes it against the current clock, this field is for
	// display only.
	Urgent bool

	// haystack is the precomputed lowercase text the search predicate
	// matches against.
	haystack string
}

const defaultSubject = "General"

// Transform maps one record into its view row. It never fails:
// missing optional fields fall back to safe defaults.
func Transform(p domain.Project, viewer domain.Role, now time.Time) ProjectView {
	v := ProjectView{
		ID:        p.ID,
		ShortID:   p.DisplayID(),
		Title:     p.Title,
		Subject:   p.Subject,
		Payout:    p.PayoutOrZero(),
		Deadline:  p.Deadline,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		Urgent:    Urgent(p.Deadline, now),
	}
	if v.Subject == "" {
		v.Subject = defaultSubject
	}
	v.Counterparty = counterpartyName(p, viewer)
	v.haystack = strings.ToLower(v.Title + " " + v.Subject + " " + v.Counterparty + " " + string(v.Status))
	return v
}

// TransformAll maps a full fetch result, preserving order.
func TransformAll(recs []*domain.Project, viewer domain.Role, now time.Time) []ProjectView {
	views := make([]ProjectView, 0, len(recs))
	for _, p := range recs {
		if p == nil {
			continue
		}
		views = append(views, Transform(*p, viewer, now))
	}
	return views
}

// Urgent reports whether a deadline falls within UrgentWindow of now.
// Deadlines already in the past count as urgent.
func Urgent(deadline, now time.Time) bool {
	return !deadline.After(now.Add(UrgentWindow))
}

func counterpartyName(p domain.Project, viewer domain.Role) string {
	name, id := p.DoerName, p.DoerID
	if viewer == domain.RoleDoer {
		name, id = p.SupervisorName, p.SupervisorID
	}
	if name != "" {
		return name
	}
	if len(id) >= 8 {
		return id[:8]
	}
	if id != "" {
		return id
	}
	return "unassigned"
}
