package models

// ServiceCategory classifies a catalog entry. Chef, security and nanny
// services default to hourly billing; everything else defaults to daily.
type ServiceCategory string

const (
	CategoryVilla         ServiceCategory = "villa"
	CategoryBoat          ServiceCategory = "boat"
	CategoryCar           ServiceCategory = "car"
	CategoryChef          ServiceCategory = "chef"
	CategorySecurity      ServiceCategory = "security"
	CategoryNanny         ServiceCategory = "nanny"
	CategoryExcursion     ServiceCategory = "excursion"
	CategoryCustom        ServiceCategory = "custom"
	CategoryCoreConcierge ServiceCategory = "core-concierge"
)

// SeasonalPrice is one month's override in a seasonal price map.
type SeasonalPrice struct {
	Price    float64 `bson:"price" json:"price"`
	UnitType string  `bson:"unitType" json:"unitType"` // free-form legacy unit label, e.g. "per week"
}

// LegacyPriceConfig is one entry of the oldest pricing shape still in
// the catalog: an ordered list of month/price/type triples.
type LegacyPriceConfig struct {
	Month string  `bson:"month" json:"month"`
	Price float64 `bson:"price" json:"price"`
	Type  string  `bson:"type" json:"type"`
}

// GenericRate is the loosest legacy shape: whichever of these fields is
// populated first (in declaration order) wins.
type GenericRate struct {
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	DailyPrice float64 `bson:"dailyPrice,omitempty" json:"dailyPrice,omitempty"`
	Rate       float64 `bson:"rate,omitempty" json:"rate,omitempty"`
	HourlyRate float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
}

// CatalogService is a read-only service definition. Up to five pricing
// representations may coexist on one record; the resolver in
// services/pricing picks the effective one.
type CatalogService struct {
	ID        string          `bson:"id" json:"id"`
	CompanyID string          `bson:"companyId" json:"companyId"`
	Category  ServiceCategory `bson:"category" json:"category"`
	Name      LocalizedText   `bson:"name" json:"name"`

	FlatDaily        float64                  `bson:"flatDaily,omitempty" json:"flatDaily,omitempty"`
	MonthlySeasonal  map[string]SeasonalPrice `bson:"monthlySeasonal,omitempty" json:"monthlySeasonal,omitempty"`
	LegacyConfigList []LegacyPriceConfig      `bson:"legacyConfigList,omitempty" json:"legacyConfigList,omitempty"`
	GenericRate      *GenericRate             `bson:"genericRate,omitempty" json:"genericRate,omitempty"`
}
