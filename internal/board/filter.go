package board

import (
	"strings"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
)

// UrgencyMode is the tri-state urgency predicate.
type UrgencyMode int

const (
	UrgencyAll     UrgencyMode = iota // no urgency filtering
	UrgencyOnly                       // urgent projects only
	UrgencyExclude                    // non-urgent projects only
)

// FilterState is the user's current search/filter/sort configuration.
// It lives only for the duration of a dashboard session.
type FilterState struct {
	Search   string
	Statuses map[domain.ProjectStatus]bool
	Urgency  UrgencyMode
	SortKey  SortKey
	SortDir  SortDir
}

// NewFilterState returns the dashboard defaults: no search, no status
// restriction, all urgencies, soonest deadline first.
func NewFilterState() FilterState {
	return FilterState{
		Statuses: make(map[domain.ProjectStatus]bool),
		Urgency:  UrgencyAll,
		SortKey:  SortDeadline,
		SortDir:  Ascending,
	}
}

// ToggleStatus flips one status in or out of the selected set.
func (fs *FilterState) ToggleStatus(s domain.ProjectStatus) {
	if fs.Statuses == nil {
		fs.Statuses = make(map[domain.ProjectStatus]bool)
	}
	if fs.Statuses[s] {
		delete(fs.Statuses, s)
	} else {
		fs.Statuses[s] = true
	}
}

// ApplyFilter returns the items satisfying every active predicate,
// in input order, as a new slice. The input is never mutated.
// Urgency is evaluated against now, not against the flag cached at
// transform time, so a list left on screen filters correctly as
// deadlines approach.
func ApplyFilter(items []ProjectView, fs FilterState, now time.Time) []ProjectView {
	query := strings.ToLower(strings.TrimSpace(fs.Search))
	out := make([]ProjectView, 0, len(items))
	for _, it := range items {
		if query != "" && !strings.Contains(it.haystack, query) {
			continue
		}
		if len(fs.Statuses) > 0 && !fs.Statuses[it.Status] {
			continue
		}
		if fs.Urgency != UrgencyAll && Urgent(it.Deadline, now) != (fs.Urgency == UrgencyOnly) {
			continue
		}
		out = append(out, it)
	}
	return out
}
