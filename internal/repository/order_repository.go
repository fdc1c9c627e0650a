package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"zigueroutine/internal/model"

	"github.com/rs/zerolog"
)

const recordExt = ".json"

// fsOrderRepository implements OrderRepository on the local filesystem:
// one pretty-printed JSON file per order, named by its code.
type fsOrderRepository struct {
	dir    string
	logger zerolog.Logger
}

// NewOrderRepository creates a filesystem-backed order repository rooted at
// dir. The directory is created on first use.
func NewOrderRepository(dir string, logger zerolog.Logger) OrderRepository {
	return &fsOrderRepository{
		dir:    dir,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists the order at <dir>/<code>.json. The file is opened with
// O_EXCL, so two writers racing on the same code cannot both succeed; the
// loser gets ErrCodeExists and the caller allocates a fresh code.
func (r *fsOrderRepository) Create(ctx context.Context, order *model.Order) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create orders directory: %w", err)
	}

	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", order.Code, err)
	}

	path := r.path(order.Code)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			r.logger.Warn().Str("code", order.Code).Msg("order code collision on write")
			return ErrCodeExists
		}
		return fmt.Errorf("failed to create order file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		// A half-written record must not be discoverable by later
		// enumerations.
		os.Remove(path)
		return fmt.Errorf("failed to write order file: %w", err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to sync order file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close order file: %w", err)
	}

	r.logger.Debug().Str("code", order.Code).Str("path", path).Msg("order record written")
	return nil
}

// GetByCode reads the record for code. Returns nil without error when no
// record exists.
func (r *fsOrderRepository) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	data, err := os.ReadFile(r.path(code))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read order file: %w", err)
	}

	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", code, err)
	}

	return &order, nil
}

// ListCodes derives the set of used codes from the storage file names.
func (r *fsOrderRepository) ListCodes(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list orders directory: %w", err)
	}

	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, recordExt) {
			continue
		}
		codes = append(codes, strings.TrimSuffix(name, recordExt))
	}
	return codes, nil
}

func (r *fsOrderRepository) path(code string) string {
	return filepath.Join(r.dir, code+recordExt)
}
