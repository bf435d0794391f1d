package ledger

import (
	"context"
	"time"

	bookingRepo "luxora/database/repository/booking"
	collaboratorRepo "luxora/database/repository/collaborator"
	financeRepo "luxora/database/repository/finance"
	"luxora/models"
)

// PaymentInput is one payout to record against a collaborator.
type PaymentInput struct {
	Amount     float64             `json:"amount"`
	Date       time.Time           `json:"date"`
	Status     models.PayoutStatus `json:"status"`
	Method     string              `json:"method,omitempty"`
	Reference  string              `json:"reference,omitempty"`
	Note       string              `json:"note,omitempty"`
	BookingRef string              `json:"bookingRef,omitempty"`
}

// Summary is a collaborator's derived commission position. The
// commission target comes from confirmed bookings, not from the payment
// ledger; the ledger only tracks what has been paid against it.
type Summary struct {
	CollaboratorID  string  `json:"collaboratorId"`
	CommissionRate  float64 `json:"commissionRate"`
	TotalCommission float64 `json:"totalCommission"`
	PaidTotal       float64 `json:"paidTotal"`
	ScheduledTotal  float64 `json:"scheduledTotal"`
	Outstanding     float64 `json:"outstanding"`
}

// LedgerService maintains per-collaborator payout history and its
// finance-ledger mirror.
type LedgerService interface {
	RecordPayment(ctx context.Context, scope models.Scope, collaboratorID string, input PaymentInput) (*models.Collaborator, error)
	GetSummary(ctx context.Context, scope models.Scope, collaboratorID string) (*Summary, error)
	ListCollaborators(ctx context.Context, scope models.Scope) ([]models.Collaborator, error)
}

// DefaultLedgerService implements LedgerService.
type DefaultLedgerService struct {
	Collaborators collaboratorRepo.CollaboratorRepository
	Bookings      bookingRepo.BookingRepository
	Finance       financeRepo.FinanceRepository
}
