package catalog

import (
	"strings"

	"github.com/georgemunganga/cellar-backend/internal/model"
)

// CreateWineRequest is the payload for adding a wine to the catalog.
// Pointer fields let Validate tell a missing field from a zero value.
type CreateWineRequest struct {
	Name             *string         `json:"name"`
	Producer         *string         `json:"producer"`
	Country          *string         `json:"country"`
	Region           *string         `json:"region"`
	VintageYear      *int            `json:"vintage_year"`
	BottleSizeML     *int            `json:"bottle_size_ml"`
	GlassesPerBottle *int            `json:"glasses_per_bottle"`
	WineType         *model.WineType `json:"wine_type"`
	AlcoholContent   *float64        `json:"alcohol_content"`
	Description      *string         `json:"description,omitempty"`
	PriceBottle      *float64        `json:"price_bottle"`
	PriceGlass       *float64        `json:"price_glass"`
}

func (r CreateWineRequest) Validate() error {
	required := []struct {
		field   string
		present bool
	}{
		{"name", r.Name != nil},
		{"producer", r.Producer != nil},
		{"country", r.Country != nil},
		{"region", r.Region != nil},
		{"vintage_year", r.VintageYear != nil},
		{"bottle_size_ml", r.BottleSizeML != nil},
		{"glasses_per_bottle", r.GlassesPerBottle != nil},
		{"wine_type", r.WineType != nil},
		{"alcohol_content", r.AlcoholContent != nil},
		{"price_bottle", r.PriceBottle != nil},
		{"price_glass", r.PriceGlass != nil},
	}

	var missing []string
	for _, f := range required {
		if !f.present {
			missing = append(missing, f.field)
		}
	}
	if len(missing) > 0 {
		return model.Validationf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return validateWineType(*r.WineType)
}

// toWine assumes Validate passed.
func (r CreateWineRequest) toWine() model.Wine {
	return model.Wine{
		Name:             *r.Name,
		Producer:         *r.Producer,
		Country:          *r.Country,
		Region:           *r.Region,
		VintageYear:      *r.VintageYear,
		BottleSizeML:     *r.BottleSizeML,
		GlassesPerBottle: *r.GlassesPerBottle,
		WineType:         *r.WineType,
		AlcoholContent:   *r.AlcoholContent,
		Description:      r.Description,
		PriceBottle:      *r.PriceBottle,
		PriceGlass:       *r.PriceGlass,
	}
}

// UpdateWineRequest holds a partial update. Omitted (or null) fields keep
// their current value.
type UpdateWineRequest struct {
	Name             *string         `json:"name,omitempty"`
	Producer         *string         `json:"producer,omitempty"`
	Country          *string         `json:"country,omitempty"`
	Region           *string         `json:"region,omitempty"`
	VintageYear      *int            `json:"vintage_year,omitempty"`
	BottleSizeML     *int            `json:"bottle_size_ml,omitempty"`
	GlassesPerBottle *int            `json:"glasses_per_bottle,omitempty"`
	WineType         *model.WineType `json:"wine_type,omitempty"`
	AlcoholContent   *float64        `json:"alcohol_content,omitempty"`
	Description      *string         `json:"description,omitempty"`
	PriceBottle      *float64        `json:"price_bottle,omitempty"`
	PriceGlass       *float64        `json:"price_glass,omitempty"`
}

func (r UpdateWineRequest) Validate() error {
	if r.WineType != nil {
		return validateWineType(*r.WineType)
	}
	return nil
}

func (r UpdateWineRequest) apply(w *model.Wine) {
	setIf(&w.Name, r.Name)
	setIf(&w.Producer, r.Producer)
	setIf(&w.Country, r.Country)
	setIf(&w.Region, r.Region)
	setIf(&w.VintageYear, r.VintageYear)
	setIf(&w.BottleSizeML, r.BottleSizeML)
	setIf(&w.GlassesPerBottle, r.GlassesPerBottle)
	setIf(&w.WineType, r.WineType)
	setIf(&w.AlcoholContent, r.AlcoholContent)
	setIf(&w.PriceBottle, r.PriceBottle)
	setIf(&w.PriceGlass, r.PriceGlass)
	if r.Description != nil {
		d := *r.Description
		w.Description = &d
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func validateWineType(t model.WineType) error {
	if !t.Valid() {
		return model.Validationf("invalid wine_type %q (allowed: still, sparkling, rose, dessert)", t)
	}
	return nil
}

// DeleteResponse confirms a wine delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
