package service

import (
	"context"

	"zigueroutine/internal/catalog"
	"zigueroutine/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(c *catalog.Catalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: c,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// ListTires returns the matching tires grouped by brand, preserving
// catalogue order within and across groups.
func (s *catalogService) ListTires(ctx context.Context, brand, class string) ([]model.TireGroup, error) {
	tires := s.catalog.Filter(brand, class)

	groups := make([]model.TireGroup, 0)
	index := make(map[string]int)
	for _, t := range tires {
		i, ok := index[t.Brand]
		if !ok {
			i = len(groups)
			index[t.Brand] = i
			groups = append(groups, model.TireGroup{Brand: t.Brand})
		}
		groups[i].Tires = append(groups[i].Tires, t)
	}

	s.logger.Debug().
		Str("brand", brand).
		Str("class", class).
		Int("count", len(tires)).
		Msg("listed tires")

	return groups, nil
}

// GetTire retrieves a single tire by id.
func (s *catalogService) GetTire(ctx context.Context, id int) (*model.Tire, error) {
	tire := s.catalog.GetByID(id)
	if tire == nil {
		s.logger.Debug().Int("tire_id", id).Msg("tire not found")
		return nil, model.ErrTireNotFound
	}
	return tire, nil
}
