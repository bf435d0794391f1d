package ledger

import (
	"context"
	"fmt"
	"time"

	"luxora/models"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"luxora/utils"
)

// load fetches a collaborator and enforces tenant scope.
func (svc *DefaultLedgerService) load(ctx context.Context, scope models.Scope, id string) (*models.Collaborator, error) {
	collab, err := svc.Collaborators.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound(id)
	}
	if !scope.Allows(collab.CompanyID) {
		utils.GetLogger().Warn("cross-tenant collaborator access skipped",
			zap.String("collaboratorId", id),
			zap.String("scopeCompany", scope.CompanyID))
		return nil, ErrNotFound(id)
	}
	return collab, nil
}

// RecordPayment appends a payout to a collaborator's history and
// mirrors it into the company finance ledger.
//
// The history is newest-first: consumers rely on payments[0] being the
// latest entry. Aggregates are recomputed from the freshly-read full
// list, never incremented, so two racing writers each produce totals
// consistent with the list they saw (last writer wins).
func (svc *DefaultLedgerService) RecordPayment(ctx context.Context, scope models.Scope, collaboratorID string, input PaymentInput) (*models.Collaborator, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount(input.Amount)
	}
	if input.Status != models.PayoutPaid && input.Status != models.PayoutScheduled {
		return nil, ErrInvalidStatus(string(input.Status))
	}

	collab, err := svc.load(ctx, scope, collaboratorID)
	if err != nil {
		return nil, err
	}

	entry := models.PaymentRecord{
		ID:         uuid.New().String(),
		Amount:     input.Amount,
		Date:       input.Date,
		Status:     input.Status,
		Method:     input.Method,
		Reference:  input.Reference,
		Note:       input.Note,
		BookingRef: input.BookingRef,
		CreatedAt:  time.Now(),
	}
	if entry.Date.IsZero() {
		entry.Date = entry.CreatedAt
	}

	payments := append([]models.PaymentRecord{entry}, collab.Payments...)
	paidTotal, scheduledTotal := Totals(payments)

	// Mirror first, collaborator history second. A payment whose
	// company-ledger mirror cannot be written is rejected whole rather
	// than recorded without it, and a failed history write compensates
	// the mirror, so the operation never half-applies.
	mirror := models.FinanceRecord{
		CompanyID:       collab.CompanyID,
		CollaboratorRef: collab.ID,
		BookingRef:      input.BookingRef,
		ServiceKey:      models.ServiceKeyCollaboratorPayout,
		ClientAmount:    0,
		ProviderCost:    entry.Amount,
		Status:          mirrorStatus(entry.Status),
		Date:            entry.Date,
		Description:     fmt.Sprintf("Collaborator payout: %s", collab.Name),
	}
	mirrorID, err := svc.Finance.Create(ctx, mirror)
	if err != nil {
		return nil, err
	}

	if err := svc.Collaborators.UpdateLedger(ctx, collab.ID, payments, paidTotal, scheduledTotal); err != nil {
		if delErr := svc.Finance.DeleteByID(ctx, mirrorID); delErr != nil {
			utils.GetLogger().Warn("failed to roll back finance mirror",
				zap.String("financeRecordId", mirrorID),
				zap.String("collaboratorId", collab.ID),
				zap.Error(delErr))
		}
		return nil, err
	}
	collab.Payments = payments
	collab.PaidTotal = paidTotal
	collab.ScheduledTotal = scheduledTotal

	utils.GetLogger().Info("payout recorded",
		zap.String("collaboratorId", collab.ID),
		zap.Float64("amount", entry.Amount),
		zap.String("status", string(entry.Status)))
	return collab, nil
}

// GetSummary derives a collaborator's commission position. The target
// is recomputed from confirmed bookings on every call.
func (svc *DefaultLedgerService) GetSummary(ctx context.Context, scope models.Scope, collaboratorID string) (*Summary, error) {
	collab, err := svc.load(ctx, scope, collaboratorID)
	if err != nil {
		return nil, err
	}

	bookings, err := svc.Bookings.GetConfirmedByCollaborator(ctx, collab.CompanyID, collab.ID)
	if err != nil {
		return nil, err
	}
	var totalCommission float64
	for _, b := range bookings {
		totalCommission += b.TotalAmount * collab.CommissionRate
	}

	paidTotal, scheduledTotal := Totals(collab.Payments)
	outstanding := totalCommission - paidTotal
	if outstanding < 0 {
		outstanding = 0
	}

	return &Summary{
		CollaboratorID:  collab.ID,
		CommissionRate:  collab.CommissionRate,
		TotalCommission: totalCommission,
		PaidTotal:       paidTotal,
		ScheduledTotal:  scheduledTotal,
		Outstanding:     outstanding,
	}, nil
}

// ListCollaborators returns all of the company's collaborators.
func (svc *DefaultLedgerService) ListCollaborators(ctx context.Context, scope models.Scope) ([]models.Collaborator, error) {
	return svc.Collaborators.GetByCompanyID(ctx, scope.CompanyID)
}

// Totals recomputes paid and scheduled sums from a full payment list.
func Totals(payments []models.PaymentRecord) (paidTotal, scheduledTotal float64) {
	for _, p := range payments {
		switch p.Status {
		case models.PayoutPaid:
			paidTotal += p.Amount
		case models.PayoutScheduled:
			scheduledTotal += p.Amount
		}
	}
	return paidTotal, scheduledTotal
}

// mirrorStatus maps a payout status onto the finance ledger's
// settlement states.
func mirrorStatus(status models.PayoutStatus) models.FinanceStatus {
	if status == models.PayoutPaid {
		return models.FinanceSettled
	}
	return models.FinancePending
}
