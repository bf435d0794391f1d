package models

import "time"

// ServiceKeyCollaboratorPayout tags finance records mirrored from
// collaborator payouts.
const ServiceKeyCollaboratorPayout = "collaborator_payout"

// FinanceStatus is the settlement state of a finance ledger entry.
type FinanceStatus string

const (
	FinanceSettled FinanceStatus = "settled"
	FinancePending FinanceStatus = "pending"
)

// FinanceRecord is a company-wide ledger entry mirroring a financial
// event. Payout mirrors carry ClientAmount = 0 and the payout amount as
// ProviderCost. BookingRef is populated for mirrors written by this
// system; legacy records have none, which is why orphan cleanup resets
// a collaborator's whole history instead of pruning selectively.
type FinanceRecord struct {
	ID              string        `bson:"id" json:"id"`
	CompanyID       string        `bson:"companyId" json:"companyId"`
	CollaboratorRef string        `bson:"collaboratorRef,omitempty" json:"collaboratorRef,omitempty"`
	BookingRef      string        `bson:"bookingRef,omitempty" json:"bookingRef,omitempty"`
	ServiceKey      string        `bson:"serviceKey" json:"serviceKey"`
	ClientAmount    float64       `bson:"clientAmount" json:"clientAmount"`
	ProviderCost    float64       `bson:"providerCost" json:"providerCost"`
	Status          FinanceStatus `bson:"status" json:"status"`
	Date            time.Time     `bson:"date" json:"date"`
	Description     string        `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
}
