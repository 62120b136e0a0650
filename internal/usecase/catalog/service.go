package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateWashTypeInput struct {
	Name        string
	Description string
	DurationMin int
	Price       decimal.Decimal
	Active      *bool
}

// UpdateWashTypeInput only touches the fields that are set.
type UpdateWashTypeInput struct {
	Name        *string
	Description *string
	DurationMin *int
	Price       *decimal.Decimal
	Active      *bool
}

// ======================================================
// SERVICE
// ======================================================

// Service manages the wash catalog. cache and images are optional.
type Service struct {
	repo    domain.Repository
	cache   domain.Cache
	images  domain.ImageStore
	encoder domain.ImageEncoder
	audit   *audit.Dispatcher
	log     zerolog.Logger
}

func NewService(
	repo domain.Repository,
	cache domain.Cache,
	images domain.ImageStore,
	encoder domain.ImageEncoder,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		images:  images,
		encoder: encoder,
		audit:   audit,
		log:     log,
	}
}

// List returns the whole catalog, served from the cache when possible.
// A cache failure never fails the read.
func (s *Service) List(ctx context.Context) ([]models.WashType, error) {
	fill := false
	var gen int64

	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		if ok {
			return items, nil
		}

		// generation antes da leitura do banco
		if gen, err = s.cache.Generation(ctx); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache generation failed")
		} else {
			fill = true
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if fill {
		if err := s.cache.Set(ctx, gen, items); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return items, nil
}

// ListActive is what the public booking form offers.
func (s *Service) ListActive(ctx context.Context) ([]models.WashType, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Active(items), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*models.WashType, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, userID *uint, in CreateWashTypeInput) (*models.WashType, error) {
	if err := domain.CheckFields(in.Name, in.Price, in.DurationMin); err != nil {
		return nil, err
	}

	wt := &models.WashType{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		DurationMin: in.DurationMin,
		Price:       in.Price,
		Active:      true,
	}
	if in.Active != nil {
		wt.Active = *in.Active
	}

	if err := s.repo.Create(ctx, wt); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "wash_type_created",
		Entity:   "wash_type",
		EntityID: &wt.ID,
		Metadata: map[string]any{"name": wt.Name},
	})
	return wt, nil
}

func (s *Service) Update(ctx context.Context, userID *uint, id uint, in UpdateWashTypeInput) (*models.WashType, error) {
	wt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		wt.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		wt.Description = strings.TrimSpace(*in.Description)
	}
	if in.DurationMin != nil {
		wt.DurationMin = *in.DurationMin
	}
	if in.Price != nil {
		wt.Price = *in.Price
	}
	if in.Active != nil {
		wt.Active = *in.Active
	}

	if err := domain.CheckFields(wt.Name, wt.Price, wt.DurationMin); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, wt); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "wash_type_updated",
		Entity:   "wash_type",
		EntityID: &wt.ID,
	})
	return wt, nil
}

// Delete fails with wash_type_in_use while appointments reference the entry;
// deactivating it is the way to retire it.
func (s *Service) Delete(ctx context.Context, userID *uint, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "wash_type_deleted",
		Entity:   "wash_type",
		EntityID: &id,
	})
	return nil
}

// SetImage re-encodes the upload and publishes it as the wash type picture.
func (s *Service) SetImage(ctx context.Context, userID *uint, id uint, upload io.Reader) (*models.WashType, error) {
	if s.images == nil || s.encoder == nil {
		return nil, httperr.ErrBusinessMsg("image_storage_disabled", "El almacenamiento de imágenes no está configurado.")
	}

	wt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := s.encoder.Encode(upload)
	if err != nil {
		return nil, httperr.ErrBusinessMsg("invalid_image", "La imagen no es válida.")
	}

	key := fmt.Sprintf("wash-types/%d%s", wt.ID, s.encoder.Extension())
	url, err := s.images.Put(ctx, key, body, s.encoder.ContentType())
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	wt.ImageURL = url
	if err := s.repo.Update(ctx, wt); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "wash_type_image_updated",
		Entity:   "wash_type",
		EntityID: &wt.ID,
		Metadata: map[string]any{"url": url, "bytes": len(body)},
	})
	return wt, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
