package catalog

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

var ErrNotFound = errors.New("wash_type_not_found")

// Repository stores the wash catalog.
type Repository interface {
	List(ctx context.Context) ([]models.WashType, error)
	Get(ctx context.Context, id uint) (*models.WashType, error)
	Create(ctx context.Context, wt *models.WashType) error
	Update(ctx context.Context, wt *models.WashType) error
	Delete(ctx context.Context, id uint) error
}

// Cache holds a copy of the full catalog list.
//
// Every Invalidate bumps a generation counter. Set only stores items read
// under the generation passed in, so a list loaded before a write is never
// cached after it.
type Cache interface {
	Get(ctx context.Context) ([]models.WashType, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, items []models.WashType) error
	Invalidate(ctx context.Context) error
}

// ImageStore publishes an encoded image and returns its public URL.
type ImageStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ImageEncoder converts an uploaded picture into the stored format.
type ImageEncoder interface {
	Encode(r io.Reader) ([]byte, error)
	ContentType() string
	Extension() string
}

// CheckFields validates the editable fields of a wash type.
func CheckFields(name string, price decimal.Decimal, durationMin int) error {
	if strings.TrimSpace(name) == "" {
		return httperr.ErrBusinessMsg("invalid_name", "El nombre es obligatorio.")
	}
	if price.IsNegative() {
		return httperr.ErrBusinessMsg("invalid_price", "El precio no puede ser negativo.")
	}
	if durationMin < 0 {
		return httperr.ErrBusinessMsg("invalid_duration", "La duración no puede ser negativa.")
	}
	return nil
}

// Active filters out disabled entries, preserving order.
func Active(items []models.WashType) []models.WashType {
	out := make([]models.WashType, 0, len(items))
	for _, wt := range items {
		if wt.Active {
			out = append(out, wt)
		}
	}
	return out
}
