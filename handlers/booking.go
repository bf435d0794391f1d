package handlers

import (
	"errors"
	"net/http"

	"luxora/middleware"
	"luxora/services/booking"
	"luxora/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking and conversion endpoints.
type BookingHandler struct {
	Service booking.ConverterService
}

func NewBookingHandler(svc booking.ConverterService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func convertErrorStatus(err error) int {
	var ce *booking.ConvertError
	if errors.As(err, &ce) {
		switch ce.Code {
		case "alreadyConverted":
			return http.StatusConflict
		case "notFound":
			return http.StatusNotFound
		case "emptySelection":
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// ConvertOfferHandler converts an accepted offer into a booking.
func (h *BookingHandler) ConvertOfferHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var input booking.ConvertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	created, err := h.Service.Convert(c.Request.Context(), scope, c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, convertErrorStatus(err), "failed to convert offer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns one booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	b, err := h.Service.GetBooking(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		utils.JSONError(c, convertErrorStatus(err), "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler returns all bookings of the caller's company.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	bookings, err := h.Service.ListBookings(c.Request.Context(), scope)
	if err != nil {
		utils.JSONError(c, convertErrorStatus(err), "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}
