package domain

import (
	"fmt"
	"regexp"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{2,4}-[0-9]{3,5}$`)

// Project is the canonical persisted record for a unit of marketplace
// work. It is owned by the store; everything the dashboards render is
// derived from a read-only snapshot of it.
type Project struct {
	ID          string
	ShortID     string
	Title       string
	Subject     string
	Description string

	// Money. Payout is what the doer earns; nil means not quoted yet.
	Payout        *float64
	CommissionPct float64

	Deadline time.Time
	Status   ProjectStatus

	SupervisorID   string
	SupervisorName string
	DoerID         string
	DoerName       string

	WordCount int
	PageCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateShortID checks the ticket-style short identifier format:
// 2-4 uppercase letters, a dash, 3-5 digits (e.g. TSK-001, MATH-0420).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 2-4 uppercase letters, a dash, then 3-5 digits (e.g. TSK-001)", p.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display, preferring
// ShortID and falling back to a truncated UUID.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// PayoutOrZero returns the payout amount, treating "not quoted" as 0.
func (p *Project) PayoutOrZero() float64 {
	if p.Payout == nil {
		return 0
	}
	return *p.Payout
}

// Commission returns the platform commission on the payout.
func (p *Project) Commission() float64 {
	return p.PayoutOrZero() * p.CommissionPct / 100
}

// NetPayout returns the doer's take after commission.
func (p *Project) NetPayout() float64 {
	return p.PayoutOrZero() - p.Commission()
}
