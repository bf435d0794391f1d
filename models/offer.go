package models

import "time"

// OfferStatus is the offer lifecycle state. Offers only move forward:
// draft -> booked, never back.
type OfferStatus string

const (
	OfferDraft  OfferStatus = "draft"
	OfferBooked OfferStatus = "booked"
)

// LineItem is one priced, quantified service inside an offer (and,
// after conversion, inside a booking). OriginalPrice is frozen at add
// time so repeated discount edits never compound.
type LineItem struct {
	ID            string          `bson:"id" json:"id"`
	ServiceRef    string          `bson:"serviceRef" json:"serviceRef"`
	Category      ServiceCategory `bson:"category" json:"category"`
	Name          LocalizedText   `bson:"name,omitempty" json:"name,omitempty"`
	UnitPrice     float64         `bson:"unitPrice" json:"unitPrice"`
	OriginalPrice float64         `bson:"originalPrice" json:"originalPrice"`
	Quantity      int             `bson:"quantity" json:"quantity"`
	Unit          Unit            `bson:"unit" json:"unit"`

	DiscountType  DiscountType `bson:"discountType,omitempty" json:"discountType,omitempty"`
	DiscountValue float64      `bson:"discountValue,omitempty" json:"discountValue,omitempty"`

	SelectedPeriod   string     `bson:"selectedPeriod,omitempty" json:"selectedPeriod,omitempty"`
	ServiceStartDate *time.Time `bson:"serviceStartDate,omitempty" json:"serviceStartDate,omitempty"`
	ServiceEndDate   *time.Time `bson:"serviceEndDate,omitempty" json:"serviceEndDate,omitempty"`

	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	AmountPaid    float64       `bson:"amountPaid" json:"amountPaid"`
}

// Offer is a priced, editable quote for a client. Subtotal and total
// are always derived on read (see services/pricing), never stored.
type Offer struct {
	ID        string      `bson:"id" json:"id"`
	ClientRef string      `bson:"clientRef" json:"clientRef"`
	CompanyID string      `bson:"companyId" json:"companyId"`
	Items     []LineItem  `bson:"items" json:"items"`
	Notes     string      `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    OfferStatus `bson:"status" json:"status"`

	// Offer-level discount, applied to the undiscounted subtotal
	// independently of any per-line discounts.
	DiscountType  DiscountType `bson:"discountType,omitempty" json:"discountType,omitempty"`
	DiscountValue float64      `bson:"discountValue,omitempty" json:"discountValue,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FindItem returns the line item with the given id, or nil.
func (o *Offer) FindItem(id string) *LineItem {
	for i := range o.Items {
		if o.Items[i].ID == id {
			return &o.Items[i]
		}
	}
	return nil
}
