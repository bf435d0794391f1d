package catalogRepo

import (
	"context"

	"luxora/database"
	"luxora/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository exposes read-only access to the service catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.CatalogService, error)
	GetServicesByCategory(ctx context.Context, companyID string, category models.ServiceCategory) ([]models.CatalogService, error)
}

type mongoCatalogRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB with
// a Redis read cache for category listings.
func NewMongoCatalogRepo(cache *redis.Client) CatalogRepository {
	return &mongoCatalogRepo{
		coll:  database.DB().Collection("catalog_services"),
		cache: cache,
	}
}
