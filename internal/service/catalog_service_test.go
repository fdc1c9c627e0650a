package service

import (
	"context"
	"testing"

	"zigueroutine/internal/catalog"
	"zigueroutine/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListTires_GroupsByBrand(t *testing.T) {
	svc := NewCatalogService(catalog.New(), zerolog.Nop())

	groups, err := svc.ListTires(context.Background(), "", "")
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	seen := make(map[string]bool)
	total := 0
	for _, g := range groups {
		require.False(t, seen[g.Brand], "brand %s grouped twice", g.Brand)
		seen[g.Brand] = true
		require.NotEmpty(t, g.Tires)
		for _, tire := range g.Tires {
			assert.Equal(t, g.Brand, tire.Brand)
		}
		total += len(g.Tires)
	}

	assert.Equal(t, len(catalog.New().All()), total)
	// Catalogue order puts Michelin first.
	assert.Equal(t, "Michelin", groups[0].Brand)
}

func TestCatalogService_ListTires_ClassFilter(t *testing.T) {
	svc := NewCatalogService(catalog.New(), zerolog.Nop())

	groups, err := svc.ListTires(context.Background(), "", model.ClassCommercial)
	require.NoError(t, err)

	for _, g := range groups {
		for _, tire := range g.Tires {
			assert.Equal(t, model.ClassCommercial, tire.Class)
		}
	}
}

func TestCatalogService_GetTire(t *testing.T) {
	svc := NewCatalogService(catalog.New(), zerolog.Nop())

	tire, err := svc.GetTire(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Kumho", tire.Brand)
	assert.Equal(t, 37.0, tire.Price)

	_, err = svc.GetTire(context.Background(), 9999)
	assert.ErrorIs(t, err, model.ErrTireNotFound)
}
