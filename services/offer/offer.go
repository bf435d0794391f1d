package offer

import (
	"context"
	"time"

	"luxora/models"
	"luxora/services/pricing"
	"luxora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// view attaches the derived money fields to an offer.
func view(o models.Offer) *OfferView {
	return &OfferView{
		Offer:    o,
		Subtotal: pricing.OfferSubtotal(o),
		Total:    pricing.OfferTotal(o),
	}
}

// load fetches an offer and enforces tenant scope. Records outside the
// caller's company are logged and reported as not found; legacy data
// contains cross-referenced documents and must not crash reads.
func (svc *DefaultOfferService) load(ctx context.Context, scope models.Scope, id string) (*models.Offer, error) {
	o, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound(id)
	}
	if !scope.Allows(o.CompanyID) {
		utils.GetLogger().Warn("cross-tenant offer access skipped",
			zap.String("offerId", id),
			zap.String("recordCompany", o.CompanyID),
			zap.String("scopeCompany", scope.CompanyID))
		return nil, ErrNotFound(id)
	}
	return o, nil
}

// CreateOffer persists a new empty draft offer.
func (svc *DefaultOfferService) CreateOffer(ctx context.Context, scope models.Scope, input CreateOfferInput) (*OfferView, error) {
	if input.ClientRef == "" {
		return nil, ErrInvalidInput("clientRef is required")
	}
	o := models.Offer{
		ID:        uuid.New().String(),
		ClientRef: input.ClientRef,
		CompanyID: scope.CompanyID,
		Items:     []models.LineItem{},
		Notes:     input.Notes,
		Status:    models.OfferDraft,
	}
	if _, err := svc.Repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return view(o), nil
}

// GetOffer returns one offer with derived totals.
func (svc *DefaultOfferService) GetOffer(ctx context.Context, scope models.Scope, id string) (*OfferView, error) {
	o, err := svc.load(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return view(*o), nil
}

// ListOffers returns all of the company's offers with derived totals.
func (svc *DefaultOfferService) ListOffers(ctx context.Context, scope models.Scope) ([]OfferView, error) {
	offers, err := svc.Repo.GetByCompanyID(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}
	views := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, *view(o))
	}
	return views, nil
}

// UpdateOffer saves edits to a draft offer. Booked offers are frozen
// history; saving one is rejected regardless of the payload.
func (svc *DefaultOfferService) UpdateOffer(ctx context.Context, scope models.Scope, incoming models.Offer) (*OfferView, error) {
	stored, err := svc.load(ctx, scope, incoming.ID)
	if err != nil {
		return nil, err
	}
	if stored.Status == models.OfferBooked {
		return nil, ErrOfferBooked(stored.ID)
	}

	incoming.CompanyID = stored.CompanyID
	incoming.Status = models.OfferDraft
	incoming.CreatedAt = stored.CreatedAt
	for i := range incoming.Items {
		// OriginalPrice is frozen at add time; a client payload can
		// never overwrite it, or discount edits would compound.
		if prev := stored.FindItem(incoming.Items[i].ID); prev != nil {
			incoming.Items[i].OriginalPrice = prev.OriginalPrice
		} else if incoming.Items[i].OriginalPrice == 0 {
			incoming.Items[i].OriginalPrice = incoming.Items[i].UnitPrice
		}
		// amountPaid is capped by the line's discounted total.
		lineTotal := pricing.LineTotal(incoming.Items[i])
		if incoming.Items[i].AmountPaid < 0 {
			incoming.Items[i].AmountPaid = 0
		}
		if incoming.Items[i].AmountPaid > lineTotal {
			incoming.Items[i].AmountPaid = lineTotal
		}
		incoming.Items[i].PaymentStatus = models.DerivePaymentStatus(lineTotal, incoming.Items[i].AmountPaid)
	}

	if err := svc.Repo.Update(ctx, incoming); err != nil {
		return nil, err
	}
	return view(incoming), nil
}

// AddLineItem resolves a catalog service into a priced line item and
// appends it to a draft offer. Unresolvable prices require the
// manual-entry path (ManualPrice set by the operator).
func (svc *DefaultOfferService) AddLineItem(ctx context.Context, scope models.Scope, offerID string, input AddItemInput) (*OfferView, error) {
	if input.Quantity < 1 {
		return nil, ErrInvalidInput("quantity must be at least 1")
	}

	o, err := svc.load(ctx, scope, offerID)
	if err != nil {
		return nil, err
	}
	if o.Status == models.OfferBooked {
		return nil, ErrOfferBooked(o.ID)
	}

	catalogSvc, err := svc.Catalog.GetByID(ctx, input.ServiceRef)
	if err != nil {
		return nil, ErrInvalidInput("unknown catalog service " + input.ServiceRef)
	}
	if !scope.Allows(catalogSvc.CompanyID) {
		utils.GetLogger().Warn("cross-tenant catalog access skipped",
			zap.String("serviceId", catalogSvc.ID),
			zap.String("scopeCompany", scope.CompanyID))
		return nil, ErrInvalidInput("unknown catalog service " + input.ServiceRef)
	}

	item := models.LineItem{
		ID:            uuid.New().String(),
		ServiceRef:    catalogSvc.ID,
		Category:      catalogSvc.Category,
		Name:          catalogSvc.Name,
		Quantity:      input.Quantity,
		PaymentStatus: models.PaymentUnpaid,
	}

	resolved, ok := pricing.Resolve(*catalogSvc, input.Period, currentPeriod())
	switch {
	case ok:
		item.UnitPrice = resolved.UnitPrice
		item.OriginalPrice = resolved.UnitPrice
		item.Unit = resolved.Unit
		item.SelectedPeriod = resolved.Period
	case input.ManualPrice != nil && *input.ManualPrice > 0:
		item.UnitPrice = *input.ManualPrice
		item.OriginalPrice = *input.ManualPrice
		item.Unit = input.ManualUnit
		if item.Unit == "" {
			item.Unit = pricing.DefaultUnitForCategory(catalogSvc.Category)
		}
	default:
		return nil, ErrPriceUnavailable(input.ServiceRef)
	}

	if start, parseErr := parseDate(input.ServiceStartDate); parseErr != nil {
		return nil, parseErr
	} else if start != nil {
		item.ServiceStartDate = start
	}
	if end, parseErr := parseDate(input.ServiceEndDate); parseErr != nil {
		return nil, parseErr
	} else if end != nil {
		item.ServiceEndDate = end
	}

	o.Items = append(o.Items, item)
	if err := svc.Repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	return view(*o), nil
}

// ApplyBulkDiscount sets discount fields on the selected line items.
// Nothing is recomputed here; totals are always derived on read.
func (svc *DefaultOfferService) ApplyBulkDiscount(ctx context.Context, scope models.Scope, offerID string, itemIDs []string, discountType models.DiscountType, discountValue float64) (*OfferView, error) {
	if discountValue < 0 {
		return nil, ErrInvalidInput("discount value cannot be negative")
	}
	if discountType != models.DiscountPercentage && discountType != models.DiscountFixed {
		return nil, ErrInvalidInput("discount type must be percentage or fixed")
	}

	o, err := svc.load(ctx, scope, offerID)
	if err != nil {
		return nil, err
	}
	if o.Status == models.OfferBooked {
		return nil, ErrOfferBooked(o.ID)
	}

	selected := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		selected[id] = true
	}
	for i := range o.Items {
		if selected[o.Items[i].ID] {
			o.Items[i].DiscountType = discountType
			o.Items[i].DiscountValue = discountValue
		}
	}

	if err := svc.Repo.Update(ctx, *o); err != nil {
		return nil, err
	}
	return view(*o), nil
}

// currentPeriod supplies the reference month at the service boundary so
// the resolver itself stays clock-free.
func currentPeriod() string {
	return time.Now().Month().String()
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, ErrInvalidInput("dates must be in YYYY-MM-DD format")
	}
	return &t, nil
}
