package catalog

import (
	"testing"

	"zigueroutine/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_All(t *testing.T) {
	c := New()

	tires := c.All()
	require.NotEmpty(t, tires)

	// Mutating the returned slice must not touch the catalogue.
	tires[0].Price = 0
	assert.NotEqual(t, 0.0, c.All()[0].Price)
}

func TestCatalog_GetByID(t *testing.T) {
	c := New()

	tire := c.GetByID(1)
	require.NotNil(t, tire)
	assert.Equal(t, "Michelin", tire.Brand)
	assert.Equal(t, "205/55 R16 91V", tire.Name)
	assert.Equal(t, 62.0, tire.Price)

	assert.Nil(t, c.GetByID(9999))
}

func TestCatalog_Filter(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		brand string
		class string
		check func(t *testing.T, tires []model.Tire)
	}{
		{
			name: "No filter returns everything",
			check: func(t *testing.T, tires []model.Tire) {
				assert.Len(t, tires, len(c.All()))
			},
		},
		{
			name:  "Filter by brand",
			brand: "Kumho",
			check: func(t *testing.T, tires []model.Tire) {
				require.NotEmpty(t, tires)
				for _, tire := range tires {
					assert.Equal(t, "Kumho", tire.Brand)
				}
			},
		},
		{
			name:  "Filter by class",
			class: model.ClassCommercial,
			check: func(t *testing.T, tires []model.Tire) {
				require.NotEmpty(t, tires)
				for _, tire := range tires {
					assert.Equal(t, model.ClassCommercial, tire.Class)
				}
			},
		},
		{
			name:  "Filter by brand and class",
			brand: "Goodyear",
			class: model.ClassCommercial,
			check: func(t *testing.T, tires []model.Tire) {
				require.Len(t, tires, 1)
				assert.Equal(t, "Goodyear", tires[0].Brand)
			},
		},
		{
			name:  "Unknown brand matches nothing",
			brand: "Nokian",
			check: func(t *testing.T, tires []model.Tire) {
				assert.Empty(t, tires)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, c.Filter(tt.brand, tt.class))
		})
	}
}
