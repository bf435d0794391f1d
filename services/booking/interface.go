package booking

import (
	"context"

	bookingRepo "luxora/database/repository/booking"
	offerRepo "luxora/database/repository/offer"
	"luxora/models"
)

// ConvertInput selects which line items of an offer become the
// booking. An empty ItemIDs list means all items.
type ConvertInput struct {
	ItemIDs         []string `json:"itemIds,omitempty"`
	CollaboratorRef string   `json:"collaboratorRef,omitempty"`
}

// ConverterService turns accepted offers into bookings.
type ConverterService interface {
	Convert(ctx context.Context, scope models.Scope, offerID string, input ConvertInput) (*models.Booking, error)
	GetBooking(ctx context.Context, scope models.Scope, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, scope models.Scope) ([]models.Booking, error)
}

// DefaultConverterService implements ConverterService.
type DefaultConverterService struct {
	Bookings bookingRepo.BookingRepository
	Offers   offerRepo.OfferRepository
}
