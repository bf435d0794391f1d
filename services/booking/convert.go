package booking

import (
	"context"
	"time"

	"luxora/models"
	"luxora/services/pricing"
	"luxora/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultServiceWindowDays is the assumed service duration for line
// items that carry no explicit dates.
const DefaultServiceWindowDays = 7

// MethodOfferConversion tags payment-history entries created while
// converting an offer, so service-level pre-payments stay visible in
// downstream reporting.
const MethodOfferConversion = "offer-conversion"

// Convert turns an accepted offer into a booking. Ordering matters in
// the absence of cross-document transactions: the booking is written
// first (offerRef is the idempotency key, backed by a unique index),
// then the offer is marked booked. A crash between the two steps
// leaves a state every reader treats as converted, and re-running
// Convert repairs the offer flag. Concurrent converts race on the
// insert; the unique index picks exactly one winner.
func (svc *DefaultConverterService) Convert(ctx context.Context, scope models.Scope, offerID string, input ConvertInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	offer, err := svc.Offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, ErrNotFound("offer", offerID)
	}
	if !scope.Allows(offer.CompanyID) {
		logger.Warn("cross-tenant conversion skipped",
			zap.String("offerId", offerID),
			zap.String("scopeCompany", scope.CompanyID))
		return nil, ErrNotFound("offer", offerID)
	}

	// Look for an existing booking before anything else: a previous
	// conversion may have crashed after the booking insert but before
	// the offer status flip. That state counts as converted.
	if existing, err := svc.Bookings.GetByOfferRef(ctx, offerID); err != nil {
		return nil, err
	} else if existing != nil {
		if offer.Status != models.OfferBooked {
			if err := svc.Offers.SetStatus(ctx, offerID, models.OfferBooked); err != nil {
				logger.Warn("failed to repair offer status after partial conversion",
					zap.String("offerId", offerID), zap.Error(err))
			}
		}
		return nil, ErrAlreadyConverted(offerID)
	}
	if offer.Status == models.OfferBooked {
		return nil, ErrAlreadyConverted(offerID)
	}

	selection := selectItems(offer.Items, input.ItemIDs)
	if len(selection) == 0 {
		return nil, ErrEmptySelection(offerID)
	}

	now := time.Now()
	booking := buildBooking(*offer, selection, input.CollaboratorRef, now)
	booking.ID = uuid.New().String()

	if _, err := svc.Bookings.Create(ctx, *booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// A concurrent Convert won the insert race on the unique
			// offerRef index. That conversion stands; this one loses.
			logger.Info("concurrent conversion lost insert race",
				zap.String("offerId", offerID))
			return nil, ErrAlreadyConverted(offerID)
		}
		return nil, err
	}
	if err := svc.Offers.SetStatus(ctx, offerID, models.OfferBooked); err != nil {
		// The booking insert already succeeded, so the conversion
		// stands; the next Convert or guard run repairs the flag.
		logger.Warn("booking created but offer status update failed",
			zap.String("offerId", offerID),
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}

	logger.Info("offer converted",
		zap.String("offerId", offerID),
		zap.String("bookingId", booking.ID),
		zap.Float64("totalAmount", booking.TotalAmount),
		zap.String("paymentStatus", string(booking.PaymentStatus)))
	return booking, nil
}

// buildBooking assembles the booking document from the selected items.
// Pure; unit tests drive it directly with a fixed clock.
func buildBooking(offer models.Offer, selection []models.LineItem, collaboratorRef string, now time.Time) *models.Booking {
	booking := &models.Booking{
		OfferRef:        offer.ID,
		ClientRef:       offer.ClientRef,
		CompanyID:       offer.CompanyID,
		CollaboratorRef: collaboratorRef,
		Status:          models.BookingConfirmed,
	}

	for _, item := range selection {
		// Clone: after conversion the booking owns its copies and the
		// offer's items become frozen history.
		clone := item
		if clone.ServiceStartDate == nil {
			start := now
			clone.ServiceStartDate = &start
		}
		if clone.ServiceEndDate == nil {
			end := clone.ServiceStartDate.AddDate(0, 0, DefaultServiceWindowDays)
			clone.ServiceEndDate = &end
		}

		lineTotal := pricing.LineTotal(clone)
		if clone.AmountPaid > lineTotal {
			clone.AmountPaid = lineTotal
		}
		clone.PaymentStatus = models.DerivePaymentStatus(lineTotal, clone.AmountPaid)

		booking.Services = append(booking.Services, clone)
		booking.TotalAmount += lineTotal
		booking.TotalPaid += clone.AmountPaid

		if clone.AmountPaid > 0 {
			booking.PaymentHistory = append(booking.PaymentHistory, models.BookingPayment{
				ServiceRef: clone.ServiceRef,
				Amount:     clone.AmountPaid,
				Method:     MethodOfferConversion,
				Date:       now,
			})
		}

		if booking.CheckIn.IsZero() || clone.ServiceStartDate.Before(booking.CheckIn) {
			booking.CheckIn = *clone.ServiceStartDate
		}
		if booking.CheckOut.IsZero() || clone.ServiceEndDate.After(booking.CheckOut) {
			booking.CheckOut = *clone.ServiceEndDate
		}
	}

	booking.PaymentStatus = models.DerivePaymentStatus(booking.TotalAmount, booking.TotalPaid)
	return booking
}

// selectItems filters the offer's items down to the chosen subset; an
// empty selection means everything.
func selectItems(items []models.LineItem, itemIDs []string) []models.LineItem {
	if len(itemIDs) == 0 {
		return items
	}
	wanted := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	var selected []models.LineItem
	for _, item := range items {
		if wanted[item.ID] {
			selected = append(selected, item)
		}
	}
	return selected
}

// GetBooking returns one booking under tenant scope.
func (svc *DefaultConverterService) GetBooking(ctx context.Context, scope models.Scope, id string) (*models.Booking, error) {
	b, err := svc.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound("booking", id)
	}
	if !scope.Allows(b.CompanyID) {
		utils.GetLogger().Warn("cross-tenant booking access skipped",
			zap.String("bookingId", id),
			zap.String("scopeCompany", scope.CompanyID))
		return nil, ErrNotFound("booking", id)
	}
	return b, nil
}

// ListBookings returns all of the company's bookings.
func (svc *DefaultConverterService) ListBookings(ctx context.Context, scope models.Scope) ([]models.Booking, error) {
	return svc.Bookings.GetByCompanyID(ctx, scope.CompanyID)
}
