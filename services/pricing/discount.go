package pricing

import "luxora/models"

// LineBase is the undiscounted base of a line item. Discounts always
// start from OriginalPrice, never from a previously discounted price,
// so editing a line repeatedly can never compound its discount.
func LineBase(item models.LineItem) float64 {
	return item.OriginalPrice * float64(item.Quantity)
}

// LineTotal is the payable amount for one line item after its own
// discount, clamped at zero.
func LineTotal(item models.LineItem) float64 {
	return ApplyDiscount(LineBase(item), item.DiscountType, item.DiscountValue)
}

// ApplyDiscount applies a percentage or fixed discount to a base
// amount. Zero or missing discount values leave the base untouched.
func ApplyDiscount(base float64, discountType models.DiscountType, discountValue float64) float64 {
	if discountValue <= 0 {
		return base
	}
	var total float64
	switch discountType {
	case models.DiscountPercentage:
		total = base * (1 - discountValue/100)
	case models.DiscountFixed:
		total = base - discountValue
	default:
		return base
	}
	if total < 0 {
		return 0
	}
	return total
}

// OfferSubtotal sums the undiscounted line bases of an offer.
func OfferSubtotal(offer models.Offer) float64 {
	var subtotal float64
	for _, item := range offer.Items {
		subtotal += LineBase(item)
	}
	return subtotal
}

// OfferTotal derives the payable total of an offer: per-line discounted
// totals, minus the offer-level discount computed against the
// undiscounted subtotal. Both discount layers can be present and each
// works off its own base; that is longstanding observed behavior, kept
// intentionally even though the combined total can surprise operators.
func OfferTotal(offer models.Offer) float64 {
	var total float64
	for _, item := range offer.Items {
		total += LineTotal(item)
	}
	subtotal := OfferSubtotal(offer)
	offerDiscount := subtotal - ApplyDiscount(subtotal, offer.DiscountType, offer.DiscountValue)
	total -= offerDiscount
	if total < 0 {
		return 0
	}
	return total
}
