package collaboratorRepo

import (
	"context"

	"luxora/database"
	"luxora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collab models.Collaborator) (string, error)
	GetByID(ctx context.Context, id string) (*models.Collaborator, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]models.Collaborator, error)
	// UpdateLedger partially updates only the payment ledger fields;
	// the rest of the document is left untouched.
	UpdateLedger(ctx context.Context, id string, payments []models.PaymentRecord, paidTotal, scheduledTotal float64) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoCollaboratorRepo struct {
	coll *mongo.Collection
}

// NewMongoCollaboratorRepo returns a new CollaboratorRepository instance using MongoDB.
func NewMongoCollaboratorRepo() CollaboratorRepository {
	return &mongoCollaboratorRepo{
		coll: database.DB().Collection("collaborators"),
	}
}
