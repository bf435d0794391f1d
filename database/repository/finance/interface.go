package financeRepo

import (
	"context"

	"luxora/database"
	"luxora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type FinanceRepository interface {
	Create(ctx context.Context, record models.FinanceRecord) (string, error)
	GetPayoutsByCompanyID(ctx context.Context, companyID string) ([]models.FinanceRecord, error)
	DeleteByID(ctx context.Context, id string) error
	// DistinctPayoutCompanies lists every company id that has payout
	// mirrors on file, for cross-company operator reports.
	DistinctPayoutCompanies(ctx context.Context) ([]string, error)
}

type mongoFinanceRepo struct {
	coll *mongo.Collection
}

// NewMongoFinanceRepo returns a new FinanceRepository instance using MongoDB.
func NewMongoFinanceRepo() FinanceRepository {
	return &mongoFinanceRepo{
		coll: database.DB().Collection("finance_records"),
	}
}
