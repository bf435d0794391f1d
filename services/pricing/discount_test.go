package pricing

import (
	"testing"

	"luxora/models"

	"github.com/stretchr/testify/assert"
)

func TestLineTotalNoDiscount(t *testing.T) {
	item := models.LineItem{OriginalPrice: 200, Quantity: 3}
	assert.Equal(t, 600.0, LineTotal(item))
}

func TestLineTotalPercentage(t *testing.T) {
	item := models.LineItem{
		OriginalPrice: 200,
		Quantity:      3,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
	}
	assert.InDelta(t, 540.0, LineTotal(item), 1e-9)
}

func TestLineTotalFixed(t *testing.T) {
	item := models.LineItem{
		OriginalPrice: 100,
		Quantity:      2,
		DiscountType:  models.DiscountFixed,
		DiscountValue: 50,
	}
	assert.Equal(t, 150.0, LineTotal(item))
}

func TestLineTotalNeverNegative(t *testing.T) {
	fixed := models.LineItem{
		OriginalPrice: 100,
		Quantity:      1,
		DiscountType:  models.DiscountFixed,
		DiscountValue: 5000,
	}
	assert.Equal(t, 0.0, LineTotal(fixed))

	percentage := models.LineItem{
		OriginalPrice: 100,
		Quantity:      1,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 250,
	}
	assert.Equal(t, 0.0, LineTotal(percentage))
}

func TestLineTotalDiscountDoesNotCompound(t *testing.T) {
	// Applying the same discount twice must read the same as applying
	// it once: the discount always works off OriginalPrice.
	item := models.LineItem{OriginalPrice: 200, Quantity: 3}

	item.DiscountType = models.DiscountPercentage
	item.DiscountValue = 10
	once := LineTotal(item)

	// Re-apply the identical discount, as an edit in the UI would.
	item.DiscountType = models.DiscountPercentage
	item.DiscountValue = 10
	twice := LineTotal(item)

	assert.Equal(t, once, twice)
	assert.InDelta(t, 540.0, twice, 1e-9)
}

func TestOfferTotalsEndToEnd(t *testing.T) {
	// Villa at 200/day x 3 with 10% off, chef at 50/hr x 4 undiscounted.
	offer := models.Offer{
		Items: []models.LineItem{
			{
				OriginalPrice: 200,
				Quantity:      3,
				DiscountType:  models.DiscountPercentage,
				DiscountValue: 10,
			},
			{
				OriginalPrice: 50,
				Quantity:      4,
			},
		},
	}

	assert.Equal(t, 800.0, OfferSubtotal(offer))
	assert.InDelta(t, 740.0, OfferTotal(offer), 1e-9)
}

func TestOfferLevelDiscountIndependentOfLineDiscounts(t *testing.T) {
	// Both layers present: the offer discount targets the undiscounted
	// subtotal, on top of whatever the line discounts already removed.
	offer := models.Offer{
		Items: []models.LineItem{
			{
				OriginalPrice: 100,
				Quantity:      2,
				DiscountType:  models.DiscountPercentage,
				DiscountValue: 50,
			},
		},
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
	}

	// Lines pay 100; offer discount removes 10% of the 200 subtotal.
	assert.Equal(t, 200.0, OfferSubtotal(offer))
	assert.InDelta(t, 80.0, OfferTotal(offer), 1e-9)
}

func TestOfferTotalClampedAtZero(t *testing.T) {
	offer := models.Offer{
		Items: []models.LineItem{
			{OriginalPrice: 10, Quantity: 1},
		},
		DiscountType:  models.DiscountFixed,
		DiscountValue: 500,
	}
	assert.Equal(t, 0.0, OfferTotal(offer))
}

func TestApplyDiscountIgnoresUnknownType(t *testing.T) {
	assert.Equal(t, 100.0, ApplyDiscount(100, "loyalty", 10))
	assert.Equal(t, 100.0, ApplyDiscount(100, models.DiscountPercentage, 0))
}
