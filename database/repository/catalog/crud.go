package catalogRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"luxora/models"
	"luxora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetByID returns one catalog service by its ID.
func (r *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.CatalogService, error) {
	var svc models.CatalogService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// GetServicesByCategory lists a company's catalog services in one
// category. Listings are cached; catalog records change rarely and the
// offer builder reads them on every line-item add.
func (r *mongoCatalogRepo) GetServicesByCategory(ctx context.Context, companyID string, category models.ServiceCategory) ([]models.CatalogService, error) {
	cacheKey := fmt.Sprintf("%s%s:%s", utils.CatalogCachePrefix, companyID, category)

	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, cacheKey).Result(); err == nil {
			var services []models.CatalogService
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				return services, nil
			}
		}
	}

	cursor, err := r.coll.Find(ctx, bson.M{"companyId": companyID, "category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.CatalogService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}

	if r.cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := r.cache.Set(ctx, cacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return services, nil
}
