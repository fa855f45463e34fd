package domain

type Role string

const (
	RoleDoer       Role = "doer"
	RoleSupervisor Role = "supervisor"
)

type ProjectStatus string

const (
	StatusDraft             ProjectStatus = "draft"
	StatusSubmitted         ProjectStatus = "submitted"
	StatusAnalyzing         ProjectStatus = "analyzing"
	StatusQuoted            ProjectStatus = "quoted"
	StatusPaymentPending    ProjectStatus = "payment_pending"
	StatusPaid              ProjectStatus = "paid"
	StatusAssigning         ProjectStatus = "assigning"
	StatusAssigned          ProjectStatus = "assigned"
	StatusInProgress        ProjectStatus = "in_progress"
	StatusSubmittedForQC    ProjectStatus = "submitted_for_qc"
	StatusQCInProgress      ProjectStatus = "qc_in_progress"
	StatusQCApproved        ProjectStatus = "qc_approved"
	StatusQCRejected        ProjectStatus = "qc_rejected"
	StatusDelivered         ProjectStatus = "delivered"
	StatusRevisionRequested ProjectStatus = "revision_requested"
	StatusInRevision        ProjectStatus = "in_revision"
	StatusCompleted         ProjectStatus = "completed"
	StatusAutoApproved      ProjectStatus = "auto_approved"
	StatusCancelled         ProjectStatus = "cancelled"
	StatusRefunded          ProjectStatus = "refunded"
)

// AllStatuses lists the full status enumeration in workflow order.
// The slice order doubles as the sort ordinal for status sorting.
var AllStatuses = []ProjectStatus{
	StatusDraft,
	StatusSubmitted,
	StatusAnalyzing,
	StatusQuoted,
	StatusPaymentPending,
	StatusPaid,
	StatusAssigning,
	StatusAssigned,
	StatusInProgress,
	StatusSubmittedForQC,
	StatusQCInProgress,
	StatusQCApproved,
	StatusQCRejected,
	StatusDelivered,
	StatusRevisionRequested,
	StatusInRevision,
	StatusCompleted,
	StatusAutoApproved,
	StatusCancelled,
	StatusRefunded,
}

var validStatuses = func() map[ProjectStatus]bool {
	m := make(map[ProjectStatus]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		m[s] = true
	}
	return m
}()

// IsValidStatus reports whether s is one of the canonical statuses.
func IsValidStatus(s ProjectStatus) bool {
	return validStatuses[s]
}

// IsValidRole reports whether r is a known account role.
func IsValidRole(r Role) bool {
	return r == RoleDoer || r == RoleSupervisor
}

// IsTerminal reports whether a project in status s can no longer move.
func (s ProjectStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusAutoApproved, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}
