package pricing

import (
	"testing"

	"luxora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFlatDailyWinsOverEverything(t *testing.T) {
	svc := models.CatalogService{
		Category:  models.CategoryVilla,
		FlatDaily: 200,
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"July": {Price: 500, UnitType: "per week"},
		},
		GenericRate: &models.GenericRate{Price: 99},
	}

	resolved, ok := Resolve(svc, "July", "May")
	require.True(t, ok)
	assert.Equal(t, 200.0, resolved.UnitPrice)
	assert.Equal(t, models.UnitDay, resolved.Unit)
	assert.Equal(t, SourceFlatDaily, resolved.SourceTag)
}

func TestResolveSeasonalRequestedPeriod(t *testing.T) {
	svc := models.CatalogService{
		Category: models.CategoryBoat,
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"July":   {Price: 3500, UnitType: "weekly"},
			"August": {Price: 4000, UnitType: "weekly"},
		},
	}

	resolved, ok := Resolve(svc, "August", "May")
	require.True(t, ok)
	assert.Equal(t, 4000.0, resolved.UnitPrice)
	assert.Equal(t, models.UnitWeek, resolved.Unit)
	assert.Equal(t, "August", resolved.Period)
	assert.Equal(t, SourceSeasonal, resolved.SourceTag)
}

func TestResolveSeasonalCaseInsensitive(t *testing.T) {
	svc := models.CatalogService{
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"july": {Price: 150, UnitType: "night"},
		},
	}

	resolved, ok := Resolve(svc, "July", "")
	require.True(t, ok)
	assert.Equal(t, 150.0, resolved.UnitPrice)
	assert.Equal(t, models.UnitNight, resolved.Unit)
}

func TestResolveStandardPeriodUsesCurrent(t *testing.T) {
	svc := models.CatalogService{
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"June": {Price: 120, UnitType: "day"},
			"May":  {Price: 100, UnitType: "day"},
		},
	}

	resolved, ok := Resolve(svc, PeriodStandard, "June")
	require.True(t, ok)
	assert.Equal(t, 120.0, resolved.UnitPrice)
	assert.Equal(t, SourceSeasonal, resolved.SourceTag)
}

func TestResolveSeasonalFallbackCanonicalOrder(t *testing.T) {
	// No price for the requested period: the first populated month in
	// May..October order wins, regardless of map iteration order.
	svc := models.CatalogService{
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"October": {Price: 80, UnitType: "day"},
			"June":    {Price: 140, UnitType: "day"},
		},
	}

	for i := 0; i < 50; i++ {
		resolved, ok := Resolve(svc, "December", "")
		require.True(t, ok)
		assert.Equal(t, 140.0, resolved.UnitPrice)
		assert.Equal(t, "June", resolved.Period)
		assert.Equal(t, SourceSeasonalFallback, resolved.SourceTag)
	}
}

func TestResolveLegacyConfigList(t *testing.T) {
	svc := models.CatalogService{
		LegacyConfigList: []models.LegacyPriceConfig{
			{Month: "July", Price: 90, Type: "per hour"},
			{Month: "August", Price: 95, Type: "per hour"},
		},
	}

	resolved, ok := Resolve(svc, "", "")
	require.True(t, ok)
	assert.Equal(t, 90.0, resolved.UnitPrice)
	assert.Equal(t, models.UnitHour, resolved.Unit)
	assert.Equal(t, SourceLegacyConfig, resolved.SourceTag)
}

func TestResolveGenericRatePriority(t *testing.T) {
	cases := []struct {
		name string
		rate models.GenericRate
		want float64
	}{
		{"price wins", models.GenericRate{Price: 10, DailyPrice: 20, Rate: 30, HourlyRate: 40}, 10},
		{"dailyPrice next", models.GenericRate{DailyPrice: 20, Rate: 30, HourlyRate: 40}, 20},
		{"rate next", models.GenericRate{Rate: 30, HourlyRate: 40}, 30},
		{"hourlyRate last", models.GenericRate{HourlyRate: 40}, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := models.CatalogService{Category: models.CategoryVilla, GenericRate: &tc.rate}
			resolved, ok := Resolve(svc, "", "")
			require.True(t, ok)
			assert.Equal(t, tc.want, resolved.UnitPrice)
			assert.Equal(t, SourceGenericRate, resolved.SourceTag)
		})
	}
}

func TestResolveGenericRateCategoryDefaultUnit(t *testing.T) {
	hourly := []models.ServiceCategory{models.CategoryChef, models.CategorySecurity, models.CategoryNanny}
	for _, category := range hourly {
		svc := models.CatalogService{Category: category, GenericRate: &models.GenericRate{Rate: 50}}
		resolved, ok := Resolve(svc, "", "")
		require.True(t, ok)
		assert.Equal(t, models.UnitHour, resolved.Unit, "category %s", category)
	}

	svc := models.CatalogService{Category: models.CategoryCar, GenericRate: &models.GenericRate{Rate: 50}}
	resolved, ok := Resolve(svc, "", "")
	require.True(t, ok)
	assert.Equal(t, models.UnitDay, resolved.Unit)
}

func TestResolveUnavailable(t *testing.T) {
	cases := []models.CatalogService{
		{},
		{FlatDaily: 0},
		{MonthlySeasonal: map[string]models.SeasonalPrice{"July": {Price: 0}}},
		{LegacyConfigList: []models.LegacyPriceConfig{{Month: "May", Price: 0}}},
		{GenericRate: &models.GenericRate{}},
	}
	for i, svc := range cases {
		_, ok := Resolve(svc, "July", "May")
		assert.False(t, ok, "case %d should be unavailable", i)
	}
}

func TestResolveDeterministic(t *testing.T) {
	svc := models.CatalogService{
		Category: models.CategoryVilla,
		MonthlySeasonal: map[string]models.SeasonalPrice{
			"May":    {Price: 100, UnitType: "day"},
			"June":   {Price: 110, UnitType: "day"},
			"July":   {Price: 200, UnitType: "day"},
			"August": {Price: 220, UnitType: "day"},
		},
	}

	first, ok := Resolve(svc, "July", "May")
	require.True(t, ok)
	for i := 0; i < 100; i++ {
		again, ok := Resolve(svc, "July", "May")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestNormalizeUnit(t *testing.T) {
	cases := map[string]models.Unit{
		"per week":     models.UnitWeek,
		"Weekly":       models.UnitWeek,
		"month":        models.UnitMonth,
		"per hour":     models.UnitHour,
		"hourly":       models.UnitHour,
		"night rate":   models.UnitNight,
		"per service":  models.UnitService,
		"daily":        models.UnitDay,
		"":             models.UnitDay,
		"unrecognized": models.UnitDay,
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeUnit(raw), "label %q", raw)
	}
}
