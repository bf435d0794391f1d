package routes

import (
	"net/http"
	"time"

	"luxora/handlers"
	"luxora/middleware"
	"luxora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route table needs.
type HandlerBundle struct {
	Offer        *handlers.OfferHandler
	Booking      *handlers.BookingHandler
	Collaborator *handlers.CollaboratorHandler
	Catalog      *handlers.CatalogHandler
	Reconcile    *handlers.ReconcileHandler
}

// RegisterRoutes wires the full route table.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.CompanyScopeMiddleware())
	api.Use(middleware.RateLimitMiddleware())

	catalog := api.Group("/catalog")
	{
		catalog.GET("/:category", hb.Catalog.GetServicesByCategoryHandler)
	}

	offers := api.Group("/offers")
	{
		offers.POST("", hb.Offer.CreateOfferHandler)
		offers.GET("", hb.Offer.ListOffersHandler)
		offers.GET("/:id", hb.Offer.GetOfferHandler)
		offers.PUT("/:id", hb.Offer.UpdateOfferHandler)
		offers.POST("/:id/items", hb.Offer.AddLineItemHandler)
		offers.POST("/:id/discount", hb.Offer.ApplyDiscountHandler)
		offers.POST("/:id/convert", hb.Booking.ConvertOfferHandler)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", hb.Booking.ListBookingsHandler)
		bookings.GET("/:id", hb.Booking.GetBookingHandler)
	}

	collaborators := api.Group("/collaborators")
	{
		collaborators.GET("", hb.Collaborator.ListCollaboratorsHandler)
		collaborators.GET("/:id/summary", hb.Collaborator.GetSummaryHandler)
		collaborators.POST("/:id/payments", hb.Collaborator.RecordPaymentHandler)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/reconcile/preview", hb.Reconcile.PreviewHandler)
		admin.POST("/reconcile/sweep", hb.Reconcile.EnqueueSweepHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
