package handlers

import (
	"errors"
	"net/http"

	"luxora/cron"
	"luxora/middleware"
	"luxora/services/reconcile"
	"luxora/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

// ReconcileHandler exposes the guard to operators: dry-run previews
// inline, applied sweeps through the task queue.
type ReconcileHandler struct {
	Guard  *reconcile.Guard
	Client *asynq.Client
}

func NewReconcileHandler(guard *reconcile.Guard, client *asynq.Client) *ReconcileHandler {
	return &ReconcileHandler{Guard: guard, Client: client}
}

func guardErrorStatus(err error) int {
	var ge *reconcile.GuardError
	if errors.As(err, &ge) && ge.Code == "missingScope" {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// PreviewHandler runs both sweeps in dry-run mode and returns the
// combined reports without writing anything.
func (h *ReconcileHandler) PreviewHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	ctx := c.Request.Context()

	purge, err := h.Guard.PurgeOrphanedPayouts(ctx, scope, false)
	if err != nil {
		utils.JSONError(c, guardErrorStatus(err), "purge preview failed", err.Error())
		return
	}
	normalize, err := h.Guard.NormalizeDirectory(ctx, scope, false)
	if err != nil {
		utils.JSONError(c, guardErrorStatus(err), "normalize preview failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"purge": purge, "normalize": normalize})
}

// EnqueueSweepHandler schedules an applied reconciliation sweep for the
// caller's company on the worker queue.
func (h *ReconcileHandler) EnqueueSweepHandler(c *gin.Context) {
	scope := middleware.ScopeFromContext(c)
	if scope.IsZero() {
		utils.JSONError(c, http.StatusForbidden, "missing scope", "a company scope is required")
		return
	}
	if err := cron.EnqueueSweep(h.Client, scope.CompanyID, true); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue sweep", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "enqueued", "companyId": scope.CompanyID})
}
