package models

// LocalizedText carries per-language variants of a display string
// (e.g. {"en": "Luxury Villa", "ro": "Vila de lux"}). The engine never
// interprets it; presentation layers pick a language at render time.
type LocalizedText map[string]string

// Get returns the variant for lang, falling back to English, then to
// any populated variant.
func (t LocalizedText) Get(lang string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	if v, ok := t["en"]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Unit is the billing unit a price applies to.
type Unit string

const (
	UnitDay     Unit = "day"
	UnitNight   Unit = "night"
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
	UnitHour    Unit = "hour"
	UnitService Unit = "service"
)

// PaymentStatus describes how much of an amount has been settled.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// DiscountType selects how a discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DerivePaymentStatus derives the settlement state from totals. A
// zero-value total is never "paid", even with zero outstanding.
func DerivePaymentStatus(totalAmount, totalPaid float64) PaymentStatus {
	switch {
	case totalAmount > 0 && totalPaid >= totalAmount:
		return PaymentPaid
	case totalPaid > 0 && totalPaid < totalAmount:
		return PaymentPartiallyPaid
	default:
		return PaymentUnpaid
	}
}
