package handlers

import (
	"net/http"
	"time"

	catalogRepo "luxora/database/repository/catalog"
	"luxora/middleware"
	"luxora/models"
	"luxora/services/pricing"
	"luxora/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes read-only catalog lookups.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// catalogEntry is a catalog service with its resolved price attached.
// Services with no positive price report priceOnRequest instead of a
// misleading zero.
type catalogEntry struct {
	models.CatalogService
	Resolved       *pricing.ResolvedPrice `json:"resolved,omitempty"`
	PriceOnRequest bool                   `json:"priceOnRequest"`
}

// GetServicesByCategoryHandler lists catalog services in one category,
// each with its price resolved for the optional ?period= query.
func (h *CatalogHandler) GetServicesByCategoryHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	category := models.ServiceCategory(c.Param("category"))
	period := c.Query("period")
	currentPeriod := time.Now().Month().String()

	services, err := h.Repo.GetServicesByCategory(c.Request.Context(), scope.CompanyID, category)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch catalog", err.Error())
		return
	}

	entries := make([]catalogEntry, 0, len(services))
	for _, svc := range services {
		entry := catalogEntry{CatalogService: svc}
		if resolved, ok := pricing.Resolve(svc, period, currentPeriod); ok {
			entry.Resolved = &resolved
		} else {
			entry.PriceOnRequest = true
		}
		entries = append(entries, entry)
	}
	c.JSON(http.StatusOK, entries)
}
