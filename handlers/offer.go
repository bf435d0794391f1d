package handlers

import (
	"errors"
	"net/http"

	"luxora/middleware"
	"luxora/models"
	"luxora/services/offer"
	"luxora/utils"

	"github.com/gin-gonic/gin"
)

// OfferHandler exposes offer management endpoints.
type OfferHandler struct {
	Service offer.OfferService
}

func NewOfferHandler(svc offer.OfferService) *OfferHandler {
	return &OfferHandler{Service: svc}
}

// offerErrorStatus maps typed offer errors onto HTTP statuses.
func offerErrorStatus(err error) int {
	var oe *offer.OfferError
	if errors.As(err, &oe) {
		switch oe.Code {
		case "offerNotFound":
			return http.StatusNotFound
		case "offerBooked":
			return http.StatusConflict
		case "priceUnavailable", "invalidInput":
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// CreateOfferHandler creates a new draft offer.
func (h *OfferHandler) CreateOfferHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var input offer.CreateOfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.CreateOffer(c.Request.Context(), scope, input)
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to create offer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetOfferHandler returns one offer with derived totals.
func (h *OfferHandler) GetOfferHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	view, err := h.Service.GetOffer(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to fetch offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListOffersHandler returns all offers of the caller's company.
func (h *OfferHandler) ListOffersHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	views, err := h.Service.ListOffers(c.Request.Context(), scope)
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to list offers", err.Error())
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateOfferHandler saves edits to a draft offer.
func (h *OfferHandler) UpdateOfferHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var incoming models.Offer
	if err := c.ShouldBindJSON(&incoming); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	incoming.ID = c.Param("id")
	view, err := h.Service.UpdateOffer(c.Request.Context(), scope, incoming)
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to update offer", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddLineItemHandler adds a priced line item to a draft offer.
func (h *OfferHandler) AddLineItemHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var input offer.AddItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.AddLineItem(c.Request.Context(), scope, c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to add line item", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyDiscountHandler sets discount fields on selected line items.
func (h *OfferHandler) ApplyDiscountHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var input struct {
		ItemIDs       []string            `json:"itemIds"`
		DiscountType  models.DiscountType `json:"discountType"`
		DiscountValue float64             `json:"discountValue"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	view, err := h.Service.ApplyBulkDiscount(c.Request.Context(), scope, c.Param("id"), input.ItemIDs, input.DiscountType, input.DiscountValue)
	if err != nil {
		utils.JSONError(c, offerErrorStatus(err), "failed to apply discount", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}
