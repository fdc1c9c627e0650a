package catalog

import (
	"zigueroutine/internal/model"
)

// seed is the static tire table. Prices are in euros, VAT included.
var seed = []model.Tire{
	{ID: 1, Brand: "Michelin", Name: "205/55 R16 91V", Price: 62, Class: model.ClassPassenger},
	{ID: 2, Brand: "Michelin", Name: "195/65 R15 91H", Price: 55, Class: model.ClassPassenger},
	{ID: 3, Brand: "Michelin", Name: "225/45 R17 94W", Price: 78, Class: model.ClassPassenger},
	{ID: 4, Brand: "Continental", Name: "185/60 R15 84T", Price: 48, Class: model.ClassPassenger},
	{ID: 5, Brand: "Continental", Name: "215/55 R17 98W", Price: 85, Class: model.ClassPassenger},
	{ID: 6, Brand: "Bridgestone", Name: "225/40 R18 92Y", Price: 95, Class: model.ClassPassenger},
	{ID: 7, Brand: "Bridgestone", Name: "195/55 R16 87H", Price: 58, Class: model.ClassPassenger},
	{ID: 8, Brand: "Bridgestone", Name: "235/55 R19 105V", Price: 110, Class: model.ClassPassenger},
	{ID: 9, Brand: "Goodyear", Name: "205/60 R16 92H", Price: 64, Class: model.ClassPassenger},
	{ID: 10, Brand: "Kumho", Name: "195/65 R15 91T", Price: 37, Class: model.ClassPassenger},
	{ID: 11, Brand: "Kumho", Name: "205/55 R16 91V", Price: 42, Class: model.ClassPassenger},
	{ID: 12, Brand: "Michelin", Name: "215/75 R16C 113R", Price: 128, Class: model.ClassCommercial},
	{ID: 13, Brand: "Goodyear", Name: "225/65 R16C 112T", Price: 119, Class: model.ClassCommercial},
}

// Catalog is the immutable in-memory tire catalogue.
type Catalog struct {
	tires []model.Tire
	byID  map[int]model.Tire
}

// New creates a catalogue loaded with the static tire table.
func New() *Catalog {
	byID := make(map[int]model.Tire, len(seed))
	for _, t := range seed {
		byID[t.ID] = t
	}
	return &Catalog{
		tires: seed,
		byID:  byID,
	}
}

// All returns every tire in catalogue order.
func (c *Catalog) All() []model.Tire {
	out := make([]model.Tire, len(c.tires))
	copy(out, c.tires)
	return out
}

// GetByID returns the tire with the given id, or nil if it does not exist.
func (c *Catalog) GetByID(id int) *model.Tire {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &t
}

// Filter returns the tires matching the given brand and class. Empty filter
// values match everything.
func (c *Catalog) Filter(brand, class string) []model.Tire {
	out := make([]model.Tire, 0, len(c.tires))
	for _, t := range c.tires {
		if brand != "" && t.Brand != brand {
			continue
		}
		if class != "" && t.Class != class {
			continue
		}
		out = append(out, t)
	}
	return out
}
