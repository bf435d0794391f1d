package models

import "time"

// PayoutStatus is the state of one collaborator payout.
type PayoutStatus string

const (
	PayoutPaid      PayoutStatus = "paid"
	PayoutScheduled PayoutStatus = "scheduled"
)

// PaymentRecord is one payout made (or scheduled) against a
// collaborator's owed commission.
type PaymentRecord struct {
	ID         string       `bson:"id" json:"id"`
	Amount     float64      `bson:"amount" json:"amount"`
	Date       time.Time    `bson:"date" json:"date"`
	Status     PayoutStatus `bson:"status" json:"status"`
	Method     string       `bson:"method,omitempty" json:"method,omitempty"`
	Reference  string       `bson:"reference,omitempty" json:"reference,omitempty"`
	Note       string       `bson:"note,omitempty" json:"note,omitempty"`
	BookingRef string       `bson:"bookingRef,omitempty" json:"bookingRef,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
}

// Collaborator is a referral partner earning commission on confirmed
// bookings. Payments is newest-first; consumers rely on payments[0]
// being the latest. PaidTotal and ScheduledTotal are recomputed from
// the full list on every write, never incremented in place.
type Collaborator struct {
	ID             string          `bson:"id" json:"id"`
	CompanyID      string          `bson:"companyId" json:"companyId"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email,omitempty" json:"email,omitempty"`
	CommissionRate float64         `bson:"commissionRate" json:"commissionRate"` // 0..1
	Payments       []PaymentRecord `bson:"payments" json:"payments"`
	PaidTotal      float64         `bson:"paidTotal" json:"paidTotal"`
	ScheduledTotal float64         `bson:"scheduledTotal" json:"scheduledTotal"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}
