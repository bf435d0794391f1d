package pricing

import (
	"strings"

	"luxora/models"
)

// Source tags record which resolution rule produced a price. They are
// kept for audit trails and never used in calculations.
const (
	SourceFlatDaily        = "flat_daily"
	SourceSeasonal         = "seasonal"
	SourceSeasonalFallback = "seasonal_fallback"
	SourceLegacyConfig     = "legacy_config"
	SourceGenericRate      = "generic_rate"
)

// PeriodStandard requests the non-seasonal price.
const PeriodStandard = "standard"

// canonicalSeasons is the fixed fallback order when the requested
// period has no seasonal price. Legacy catalogs only carry the season
// months; anything else is matched exactly, never via fallback.
var canonicalSeasons = []string{"May", "June", "July", "August", "September", "October"}

// ResolvedPrice is one effective unit price for a catalog service.
type ResolvedPrice struct {
	UnitPrice float64     `json:"unitPrice"`
	Unit      models.Unit `json:"unit"`
	Period    string      `json:"period,omitempty"`
	SourceTag string      `json:"sourceTag"`
}

// Resolve picks the effective unit price for a catalog service out of
// its overlapping pricing representations. The priority chain mirrors
// the legacy catalog and must stay stable:
//
//  1. flatDaily
//  2. seasonal price for the requested (or current) period
//  3. first populated seasonal period in canonical order
//  4. first legacy config entry
//  5. generic rate, unit defaulted by category
//
// currentPeriod is injected by the caller; the resolver never reads the
// clock, so identical inputs always resolve identically. The second
// return value is false when no positive price exists; that is a
// price-on-request state, not an error.
func Resolve(svc models.CatalogService, requestedPeriod, currentPeriod string) (ResolvedPrice, bool) {
	if svc.FlatDaily > 0 {
		return ResolvedPrice{UnitPrice: svc.FlatDaily, Unit: models.UnitDay, SourceTag: SourceFlatDaily}, true
	}

	period := requestedPeriod
	if period == "" || strings.EqualFold(period, PeriodStandard) {
		period = currentPeriod
	}

	if len(svc.MonthlySeasonal) > 0 {
		if key, entry, ok := seasonalLookup(svc.MonthlySeasonal, period); ok {
			return ResolvedPrice{
				UnitPrice: entry.Price,
				Unit:      NormalizeUnit(entry.UnitType),
				Period:    key,
				SourceTag: SourceSeasonal,
			}, true
		}
		for _, month := range canonicalSeasons {
			if key, entry, ok := seasonalLookup(svc.MonthlySeasonal, month); ok {
				return ResolvedPrice{
					UnitPrice: entry.Price,
					Unit:      NormalizeUnit(entry.UnitType),
					Period:    key,
					SourceTag: SourceSeasonalFallback,
				}, true
			}
		}
	}

	if len(svc.LegacyConfigList) > 0 && svc.LegacyConfigList[0].Price > 0 {
		first := svc.LegacyConfigList[0]
		return ResolvedPrice{
			UnitPrice: first.Price,
			Unit:      NormalizeUnit(first.Type),
			Period:    first.Month,
			SourceTag: SourceLegacyConfig,
		}, true
	}

	if svc.GenericRate != nil {
		if price, ok := firstGenericPrice(*svc.GenericRate); ok {
			return ResolvedPrice{
				UnitPrice: price,
				Unit:      DefaultUnitForCategory(svc.Category),
				SourceTag: SourceGenericRate,
			}, true
		}
	}

	return ResolvedPrice{}, false
}

// seasonalLookup matches a period key case-insensitively and only
// accepts entries with a positive price.
func seasonalLookup(seasonal map[string]models.SeasonalPrice, period string) (string, models.SeasonalPrice, bool) {
	if period == "" {
		return "", models.SeasonalPrice{}, false
	}
	for key, entry := range seasonal {
		if strings.EqualFold(key, period) && entry.Price > 0 {
			return key, entry, true
		}
	}
	return "", models.SeasonalPrice{}, false
}

// firstGenericPrice returns the first populated field of the generic
// rate shape, in its fixed priority order.
func firstGenericPrice(rate models.GenericRate) (float64, bool) {
	for _, price := range []float64{rate.Price, rate.DailyPrice, rate.Rate, rate.HourlyRate} {
		if price > 0 {
			return price, true
		}
	}
	return 0, false
}

// NormalizeUnit maps free-form legacy unit labels ("per week", "Weekly",
// "night rate") onto the closed unit set by substring match.
func NormalizeUnit(raw string) models.Unit {
	label := strings.ToLower(raw)
	switch {
	case strings.Contains(label, "week"):
		return models.UnitWeek
	case strings.Contains(label, "month"):
		return models.UnitMonth
	case strings.Contains(label, "hour"):
		return models.UnitHour
	case strings.Contains(label, "night"):
		return models.UnitNight
	case strings.Contains(label, "service"):
		return models.UnitService
	default:
		return models.UnitDay
	}
}

// DefaultUnitForCategory is the billing unit assumed for generic-rate
// prices that declare none: staff services bill hourly, rentals daily.
func DefaultUnitForCategory(category models.ServiceCategory) models.Unit {
	switch category {
	case models.CategoryChef, models.CategorySecurity, models.CategoryNanny:
		return models.UnitHour
	default:
		return models.UnitDay
	}
}
