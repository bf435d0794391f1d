package collaboratorRepo

import (
	"context"
	"errors"
	"time"

	"luxora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new collaborator and returns its ID.
func (r *mongoCollaboratorRepo) Create(ctx context.Context, collab models.Collaborator) (string, error) {
	if collab.ID == "" {
		collab.ID = uuid.New().String()
	}
	collab.CreatedAt = time.Now()
	if collab.Payments == nil {
		collab.Payments = []models.PaymentRecord{}
	}

	if _, err := r.coll.InsertOne(ctx, collab); err != nil {
		return "", err
	}
	return collab.ID, nil
}

// GetByID returns a collaborator by its ID.
func (r *mongoCollaboratorRepo) GetByID(ctx context.Context, id string) (*models.Collaborator, error) {
	var collab models.Collaborator
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// GetByCompanyID fetches all collaborators belonging to a company.
func (r *mongoCollaboratorRepo) GetByCompanyID(ctx context.Context, companyID string) ([]models.Collaborator, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collabs []models.Collaborator
	if err := cursor.All(ctx, &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}

// UpdateLedger writes the full payment list plus its recomputed
// aggregates in one update. Last writer wins; aggregates are never
// incremented in place.
func (r *mongoCollaboratorRepo) UpdateLedger(ctx context.Context, id string, payments []models.PaymentRecord, paidTotal, scheduledTotal float64) error {
	if payments == nil {
		payments = []models.PaymentRecord{}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"payments":       payments,
			"paidTotal":      paidTotal,
			"scheduledTotal": scheduledTotal,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("collaborator not found")
	}
	return nil
}

// DeleteByID removes a collaborator by ID.
func (r *mongoCollaboratorRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("collaborator not found")
	}
	return nil
}
