package financeRepo

import (
	"context"
	"errors"
	"time"

	"luxora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new finance record and returns its ID.
func (r *mongoFinanceRepo) Create(ctx context.Context, record models.FinanceRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetPayoutsByCompanyID fetches all collaborator payout mirrors for a company.
func (r *mongoFinanceRepo) GetPayoutsByCompanyID(ctx context.Context, companyID string) ([]models.FinanceRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{
		"companyId":  companyID,
		"serviceKey": models.ServiceKeyCollaboratorPayout,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.FinanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes a finance record by ID.
func (r *mongoFinanceRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("finance record not found")
	}
	return nil
}

// DistinctPayoutCompanies lists company ids that have payout mirrors.
func (r *mongoFinanceRepo) DistinctPayoutCompanies(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "companyId", bson.M{
		"serviceKey": models.ServiceKeyCollaboratorPayout,
	})
	if err != nil {
		return nil, err
	}
	companies := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			companies = append(companies, s)
		}
	}
	return companies, nil
}
