package handlers

import (
	"errors"
	"net/http"

	"luxora/middleware"
	"luxora/services/ledger"
	"luxora/utils"

	"github.com/gin-gonic/gin"
)

// CollaboratorHandler exposes the commission ledger endpoints.
type CollaboratorHandler struct {
	Service ledger.LedgerService
}

func NewCollaboratorHandler(svc ledger.LedgerService) *CollaboratorHandler {
	return &CollaboratorHandler{Service: svc}
}

func ledgerErrorStatus(err error) int {
	var le *ledger.LedgerError
	if errors.As(err, &le) {
		switch le.Code {
		case "collaboratorNotFound":
			return http.StatusNotFound
		case "invalidAmount", "invalidStatus":
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// ListCollaboratorsHandler lists the company's collaborators.
func (h *CollaboratorHandler) ListCollaboratorsHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	collabs, err := h.Service.ListCollaborators(c.Request.Context(), scope)
	if err != nil {
		utils.JSONError(c, ledgerErrorStatus(err), "failed to list collaborators", err.Error())
		return
	}
	c.JSON(http.StatusOK, collabs)
}

// RecordPaymentHandler records one payout against a collaborator.
func (h *CollaboratorHandler) RecordPaymentHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	var input ledger.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	collab, err := h.Service.RecordPayment(c.Request.Context(), scope, c.Param("id"), input)
	if err != nil {
		utils.JSONError(c, ledgerErrorStatus(err), "failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusCreated, collab)
}

// GetSummaryHandler returns a collaborator's derived commission position.
func (h *CollaboratorHandler) GetSummaryHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	summary, err := h.Service.GetSummary(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		utils.JSONError(c, ledgerErrorStatus(err), "failed to derive summary", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}
