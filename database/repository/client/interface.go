package clientRepo

import (
	"context"

	"luxora/database"
	"luxora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository is the directory of concierge customers.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]models.Client, error)
	Update(ctx context.Context, client models.Client) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo returns a new ClientRepository instance using MongoDB.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
}
