package offer

import (
	"context"

	catalogRepo "luxora/database/repository/catalog"
	offerRepo "luxora/database/repository/offer"
	"luxora/models"
)

// AddItemInput describes one line item to add to a draft offer. When
// the catalog resolver finds no positive price, ManualPrice must be
// supplied; that manual-entry path is the only way a price-on-request
// service enters an offer.
type AddItemInput struct {
	ServiceRef  string      `json:"serviceRef"`
	Period      string      `json:"period,omitempty"`
	Quantity    int         `json:"quantity"`
	ManualPrice *float64    `json:"manualPrice,omitempty"`
	ManualUnit  models.Unit `json:"manualUnit,omitempty"`

	ServiceStartDate *string `json:"serviceStartDate,omitempty"`
	ServiceEndDate   *string `json:"serviceEndDate,omitempty"`
}

// CreateOfferInput is the payload for a new draft offer.
type CreateOfferInput struct {
	ClientRef string `json:"clientRef"`
	Notes     string `json:"notes,omitempty"`
}

// OfferView is an offer plus its derived money fields. Totals are
// always computed on read so stored documents cannot drift.
type OfferView struct {
	models.Offer
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// OfferService manages draft offers up to the moment of conversion.
type OfferService interface {
	CreateOffer(ctx context.Context, scope models.Scope, input CreateOfferInput) (*OfferView, error)
	GetOffer(ctx context.Context, scope models.Scope, id string) (*OfferView, error)
	ListOffers(ctx context.Context, scope models.Scope) ([]OfferView, error)
	UpdateOffer(ctx context.Context, scope models.Scope, offer models.Offer) (*OfferView, error)
	AddLineItem(ctx context.Context, scope models.Scope, offerID string, input AddItemInput) (*OfferView, error)
	ApplyBulkDiscount(ctx context.Context, scope models.Scope, offerID string, itemIDs []string, discountType models.DiscountType, discountValue float64) (*OfferView, error)
}

// DefaultOfferService implements OfferService.
type DefaultOfferService struct {
	Repo    offerRepo.OfferRepository
	Catalog catalogRepo.CatalogRepository
}
