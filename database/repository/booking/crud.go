package bookingRepo

import (
	"context"
	"errors"
	"time"

	"luxora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByOfferRef returns the booking created from the given offer, or
// nil if the offer was never converted. The offerRef acts as the
// conversion idempotency key.
func (r *mongoBookingRepo) GetByOfferRef(ctx context.Context, offerRef string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"offerRef": offerRef}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByCompanyID fetches all bookings belonging to a company.
func (r *mongoBookingRepo) GetByCompanyID(ctx context.Context, companyID string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetConfirmedByCollaborator fetches a collaborator's confirmed
// bookings, the base of the commission target.
func (r *mongoBookingRepo) GetConfirmedByCollaborator(ctx context.Context, companyID, collaboratorRef string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"companyId":       companyID,
		"collaboratorRef": collaboratorRef,
		"status":          models.BookingConfirmed,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// DeleteByID removes a booking by ID.
func (r *mongoBookingRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
