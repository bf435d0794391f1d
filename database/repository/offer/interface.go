package offerRepo

import (
	"context"

	"luxora/database"
	"luxora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OfferRepository interface {
	Create(ctx context.Context, offer models.Offer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Offer, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]models.Offer, error)
	Update(ctx context.Context, offer models.Offer) error
	SetStatus(ctx context.Context, id string, status models.OfferStatus) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferRepo returns a new OfferRepository instance using MongoDB.
func NewMongoOfferRepo() OfferRepository {
	return &mongoOfferRepo{
		coll: database.DB().Collection("offers"),
	}
}
