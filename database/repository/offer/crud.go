package offerRepo

import (
	"context"
	"errors"
	"time"

	"luxora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new offer and returns its ID.
func (r *mongoOfferRepo) Create(ctx context.Context, offer models.Offer) (string, error) {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return "", err
	}
	return offer.ID, nil
}

// GetByID returns an offer by its ID.
func (r *mongoOfferRepo) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	var offer models.Offer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// GetByCompanyID fetches all offers belonging to a company.
func (r *mongoOfferRepo) GetByCompanyID(ctx context.Context, companyID string) ([]models.Offer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Update replaces the stored offer document.
func (r *mongoOfferRepo) Update(ctx context.Context, offer models.Offer) error {
	offer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": offer.ID}, offer)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("offer not found")
	}
	return nil
}

// SetStatus updates only the lifecycle status of an offer.
func (r *mongoOfferRepo) SetStatus(ctx context.Context, id string, status models.OfferStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("offer not found")
	}
	return nil
}

// DeleteByID removes an offer by ID.
func (r *mongoOfferRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("offer not found")
	}
	return nil
}
