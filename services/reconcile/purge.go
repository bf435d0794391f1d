package reconcile

import (
	"context"

	"luxora/models"
	"luxora/utils"

	"go.uber.org/zap"
)

// PurgeOrphanedPayouts deletes payout mirrors whose booking linkage is
// gone (or was never recorded) and resets the affected collaborators'
// payment history. Payouts link to collaborators, not bookings, so once
// a company's bookings are wiped the whole payout history is
// definitionally orphaned; the reset is full, not selective.
//
// With apply=false the report is produced without any writes.
// Re-running after a full apply produces zero further deletions.
func (g *Guard) PurgeOrphanedPayouts(ctx context.Context, scope models.Scope, apply bool) (*Report, error) {
	if scope.IsZero() {
		return nil, ErrMissingScope()
	}
	logger := utils.GetLogger()
	report := &Report{Applied: apply}

	records, err := g.Finance.GetPayoutsByCompanyID(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}

	affected := map[string]bool{}
	for _, record := range records {
		if !scope.Allows(record.CompanyID) {
			logger.Warn("cross-tenant finance record skipped",
				zap.String("recordId", record.ID),
				zap.String("recordCompany", record.CompanyID))
			report.log("skip", "financeRecord", record.ID, "outside company scope")
			continue
		}

		orphaned, err := g.isOrphaned(ctx, record)
		if err != nil {
			report.log("skip", "financeRecord", record.ID, "booking lookup failed: "+err.Error())
			report.Unresolved++
			continue
		}
		if !orphaned {
			continue
		}

		report.log("delete", "financeRecord", record.ID, "no owning booking")
		if record.CollaboratorRef != "" {
			affected[record.CollaboratorRef] = true
		}
		if apply {
			if err := g.Finance.DeleteByID(ctx, record.ID); err != nil {
				logger.Warn("failed to delete orphaned payout",
					zap.String("recordId", record.ID), zap.Error(err))
				report.Unresolved++
				continue
			}
		}
		report.Deletions++
	}

	for collaboratorID := range affected {
		collab, err := g.Collaborators.GetByID(ctx, collaboratorID)
		if err != nil {
			report.log("skip", "collaborator", collaboratorID, "not found")
			report.Unresolved++
			continue
		}
		if !scope.Allows(collab.CompanyID) {
			logger.Warn("cross-tenant collaborator skipped",
				zap.String("collaboratorId", collaboratorID))
			report.log("skip", "collaborator", collaboratorID, "outside company scope")
			continue
		}
		if len(collab.Payments) == 0 && collab.PaidTotal == 0 && collab.ScheduledTotal == 0 {
			// Already reset; nothing to do on a re-run.
			continue
		}

		report.log("reset", "collaborator", collab.ID, "payment history cleared")
		if apply {
			if err := g.Collaborators.UpdateLedger(ctx, collab.ID, []models.PaymentRecord{}, 0, 0); err != nil {
				logger.Warn("failed to reset collaborator ledger",
					zap.String("collaboratorId", collab.ID), zap.Error(err))
				report.Unresolved++
				continue
			}
		}
		report.Upserts++
	}

	logger.Info("purge sweep finished",
		zap.String("companyId", scope.CompanyID),
		zap.Bool("applied", apply),
		zap.Int("deletions", report.Deletions),
		zap.Int("upserts", report.Upserts),
		zap.Int("unresolved", report.Unresolved))
	return report, nil
}
