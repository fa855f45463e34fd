package board

import "github.com/rvaughn/taskdesk/internal/domain"

// Category is one named bucket of a dashboard: a label plus the set
// of statuses that land in it.
type Category struct {
	Name     string
	Statuses []domain.ProjectStatus
}

// CategoryScheme is the ordered bucket layout of one dashboard. The
// status sets of a scheme are disjoint by construction, so a project
// lands in at most one bucket. The schemes are deliberately not
// exhaustive: terminal statuses like cancelled and refunded appear in
// no bucket and surface only through direct project lookup.
type CategoryScheme []Category

// DoerScheme is the bucket layout of the doer dashboard.
var DoerScheme = CategoryScheme{
	{Name: "pool", Statuses: []domain.ProjectStatus{
		domain.StatusAssigning,
	}},
	{Name: "active", Statuses: []domain.ProjectStatus{
		domain.StatusAssigned,
		domain.StatusInProgress,
		domain.StatusRevisionRequested,
		domain.StatusInRevision,
	}},
	{Name: "review", Statuses: []domain.ProjectStatus{
		domain.StatusSubmittedForQC,
		domain.StatusQCInProgress,
		domain.StatusQCRejected,
	}},
	{Name: "completed", Statuses: []domain.ProjectStatus{
		domain.StatusQCApproved,
		domain.StatusDelivered,
		domain.StatusCompleted,
		domain.StatusAutoApproved,
	}},
}

// SupervisorScheme is the bucket layout of the supervisor dashboard.
var SupervisorScheme = CategoryScheme{
	{Name: "intake", Statuses: []domain.ProjectStatus{
		domain.StatusDraft,
		domain.StatusSubmitted,
		domain.StatusAnalyzing,
		domain.StatusQuoted,
	}},
	{Name: "payment", Statuses: []domain.ProjectStatus{
		domain.StatusPaymentPending,
		domain.StatusPaid,
	}},
	{Name: "active", Statuses: []domain.ProjectStatus{
		domain.StatusAssigning,
		domain.StatusAssigned,
		domain.StatusInProgress,
		domain.StatusRevisionRequested,
		domain.StatusInRevision,
	}},
	{Name: "review", Statuses: []domain.ProjectStatus{
		domain.StatusSubmittedForQC,
		domain.StatusQCInProgress,
		domain.StatusQCRejected,
		domain.StatusQCApproved,
	}},
	{Name: "delivered", Statuses: []domain.ProjectStatus{
		domain.StatusDelivered,
	}},
	{Name: "completed", Statuses: []domain.ProjectStatus{
		domain.StatusCompleted,
		domain.StatusAutoApproved,
	}},
}

// SchemeFor returns the bucket layout for a dashboard role.
func SchemeFor(role domain.Role) CategoryScheme {
	if role == domain.RoleSupervisor {
		return SupervisorScheme
	}
	return DoerScheme
}

// Names returns the category names in display order.
func (cs CategoryScheme) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

// Contains reports whether category c covers status s.
func (c Category) Contains(s domain.ProjectStatus) bool {
	for _, cs := range c.Statuses {
		if cs == s {
			return true
		}
	}
	return false
}

// Partition splits items into the scheme's buckets by status
// membership, preserving input order inside each bucket. Every bucket
// name is present in the result even when empty. Items whose status no
// category covers are dropped.
func Partition(items []ProjectView, scheme CategoryScheme) map[string][]ProjectView {
	out := make(map[string][]ProjectView, len(scheme))
	for _, c := range scheme {
		out[c.Name] = []ProjectView{}
	}
	for _, it := range items {
		for _, c := range scheme {
			if c.Contains(it.Status) {
				out[c.Name] = append(out[c.Name], it)
				break
			}
		}
	}
	return out
}
