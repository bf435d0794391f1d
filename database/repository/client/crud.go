package clientRepo

import (
	"context"
	"errors"

	"luxora/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID returns a client record by its ID.
func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByCompanyID fetches all client records belonging to a company,
// duplicates included.
func (r *mongoClientRepo) GetByCompanyID(ctx context.Context, companyID string) ([]models.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update replaces the stored client document.
func (r *mongoClientRepo) Update(ctx context.Context, client models.Client) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}

// DeleteByID removes a client record by ID.
func (r *mongoClientRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}
