package reconcile

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "luxora/database/repository/booking"
	clientRepo "luxora/database/repository/client"
	collaboratorRepo "luxora/database/repository/collaborator"
	financeRepo "luxora/database/repository/finance"
	"luxora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GuardError is the typed error surfaced by reconciliation runs.
type GuardError struct {
	Code    string
	Message string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrMissingScope aborts any destructive run that was invoked without a
// company id; batch jobs never default to "all companies".
func ErrMissingScope() error {
	return &GuardError{Code: "missingScope", Message: "a company scope is required for this operation"}
}

// Action is one per-record entry of a run's action log.
type Action struct {
	Op     string `json:"op"` // "delete", "reset", "merge", "skip"
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Detail string `json:"detail,omitempty"`
}

// Report summarizes one guard run. Dry runs produce the same report
// with zero writes behind it.
type Report struct {
	Applied    bool     `json:"applied"`
	Actions    []Action `json:"actions"`
	Upserts    int      `json:"upserts"`
	Deletions  int      `json:"deletions"`
	Unresolved int      `json:"unresolved"`
}

func (r *Report) log(op, kind, id, detail string) {
	r.Actions = append(r.Actions, Action{Op: op, Kind: kind, ID: id, Detail: detail})
}

// CompanyPayoutStatus is one row of the cross-company read-only report.
type CompanyPayoutStatus struct {
	CompanyID string `json:"companyId"`
	Payouts   int    `json:"payouts"`
	Orphaned  int    `json:"orphaned"`
}

// Guard runs the invariant-enforcement sweeps. Both operations are
// idempotent and safe to re-run after partial failures.
type Guard struct {
	Finance       financeRepo.FinanceRepository
	Bookings      bookingRepo.BookingRepository
	Collaborators collaboratorRepo.CollaboratorRepository
	Clients       clientRepo.ClientRepository
}

// ListPayoutStatus reports payout and orphan counts across every
// company that has payout mirrors on file. Read-only.
func (g *Guard) ListPayoutStatus(ctx context.Context) ([]CompanyPayoutStatus, error) {
	companies, err := g.Finance.DistinctPayoutCompanies(ctx)
	if err != nil {
		return nil, err
	}
	statuses := make([]CompanyPayoutStatus, 0, len(companies))
	for _, companyID := range companies {
		records, err := g.Finance.GetPayoutsByCompanyID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		status := CompanyPayoutStatus{CompanyID: companyID, Payouts: len(records)}
		for _, record := range records {
			orphaned, err := g.isOrphaned(ctx, record)
			if err != nil {
				return nil, err
			}
			if orphaned {
				status.Orphaned++
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// isOrphaned reports whether a payout mirror has lost its booking
// linkage. Records written before booking linkage existed have no
// bookingRef at all and count as orphaned by definition.
func (g *Guard) isOrphaned(ctx context.Context, record models.FinanceRecord) (bool, error) {
	if record.BookingRef == "" {
		return true, nil
	}
	b, err := g.Bookings.GetByID(ctx, record.BookingRef)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return b == nil, nil
}
