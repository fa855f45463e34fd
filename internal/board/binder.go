package board

import (
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
)

// Snapshot is one computed result of the pipeline: the filtered and
// sorted rows of every category, plus unfiltered bucket totals for
// the tab headers.
type Snapshot struct {
	Categories map[string][]ProjectView
	Totals     map[string]int
}

// Binder ties raw records and the current FilterState together and
// recomputes the pipeline only when one of them changed. Recomputing
// more often would still be correct, just wasted work, so the binder
// tracks a revision counter instead of comparing inputs.
//
// Binder is not safe for concurrent use; the dashboards drive it from
// a single update loop.
type Binder struct {
	scheme CategoryScheme
	viewer domain.Role

	records []*domain.Project
	filter  FilterState

	rev         uint64 // bumped on every input change
	computedRev uint64 // revision the cached snapshot was built from
	cached      Snapshot
}

// NewBinder returns a binder with default FilterState for the given
// dashboard role.
func NewBinder(viewer domain.Role) *Binder {
	return &Binder{
		scheme: SchemeFor(viewer),
		viewer: viewer,
		filter: NewFilterState(),
		rev:    1,
	}
}

// SetRecords replaces the raw data, typically after a fetch.
func (b *Binder) SetRecords(recs []*domain.Project) {
	b.records = recs
	b.rev++
}

// Filter returns the current filter state.
func (b *Binder) Filter() FilterState { return b.filter }

// SetSearch replaces the free-text query.
func (b *Binder) SetSearch(q string) {
	if b.filter.Search == q {
		return
	}
	b.filter.Search = q
	b.rev++
}

// ToggleStatus flips one status in the selected set.
func (b *Binder) ToggleStatus(s domain.ProjectStatus) {
	b.filter.ToggleStatus(s)
	b.rev++
}

// ClearStatuses empties the status set, disabling status filtering.
func (b *Binder) ClearStatuses() {
	if len(b.filter.Statuses) == 0 {
		return
	}
	b.filter.Statuses = make(map[domain.ProjectStatus]bool)
	b.rev++
}

// SetSort sets the sort key and direction.
func (b *Binder) SetSort(key SortKey, dir SortDir) {
	if b.filter.SortKey == key && b.filter.SortDir == dir {
		return
	}
	b.filter.SortKey = key
	b.filter.SortDir = dir
	b.rev++
}

// CycleSortKey advances to the next sort key.
func (b *Binder) CycleSortKey() {
	for i, k := range SortKeys {
		if k == b.filter.SortKey {
			b.filter.SortKey = SortKeys[(i+1)%len(SortKeys)]
			b.rev++
			return
		}
	}
	b.filter.SortKey = SortDeadline
	b.rev++
}

// FlipSortDir reverses the sort direction.
func (b *Binder) FlipSortDir() {
	if b.filter.SortDir == Ascending {
		b.filter.SortDir = Descending
	} else {
		b.filter.SortDir = Ascending
	}
	b.rev++
}

// CycleUrgency advances the urgency tri-state: all -> urgent only ->
// non-urgent only -> all.
func (b *Binder) CycleUrgency() {
	b.filter.Urgency = (b.filter.Urgency + 1) % 3
	b.rev++
}

// Invalidate forces the next Snapshot call to recompute. Used when a
// result must reflect a new wall clock even though no input changed.
func (b *Binder) Invalidate() { b.rev++ }

// Snapshot returns the pipeline result for the current inputs,
// reusing the cached result when nothing changed since the last call.
func (b *Binder) Snapshot(now time.Time) Snapshot {
	if b.computedRev == b.rev {
		return b.cached
	}

	views := TransformAll(b.records, b.viewer, now)
	buckets := Partition(views, b.scheme)

	snap := Snapshot{
		Categories: make(map[string][]ProjectView, len(buckets)),
		Totals:     make(map[string]int, len(buckets)),
	}
	for name, items := range buckets {
		snap.Totals[name] = len(items)
		filtered := ApplyFilter(items, b.filter, now)
		snap.Categories[name] = SortViews(filtered, b.filter.SortKey, b.filter.SortDir)
	}

	b.cached = snap
	b.computedRev = b.rev
	return snap
}
