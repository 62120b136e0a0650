package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type WashTypeGormRepository struct {
	db *gorm.DB
}

func NewWashTypeGormRepository(db *gorm.DB) *WashTypeGormRepository {
	return &WashTypeGormRepository{db: db}
}

// List returns the whole catalog, inactive entries included.
func (r *WashTypeGormRepository) List(ctx context.Context) ([]models.WashType, error) {
	var items []models.WashType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WashTypeGormRepository) Get(ctx context.Context, id uint) (*models.WashType, error) {
	var wt models.WashType
	if err := r.db.WithContext(ctx).First(&wt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &wt, nil
}

func (r *WashTypeGormRepository) Create(ctx context.Context, wt *models.WashType) error {
	if err := r.db.WithContext(ctx).Create(wt).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusinessMsg("wash_type_exists", "Ya existe un tipo de lavado con ese nombre.")
		}
		return err
	}
	return nil
}

func (r *WashTypeGormRepository) Update(ctx context.Context, wt *models.WashType) error {
	if err := r.db.WithContext(ctx).Save(wt).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusinessMsg("wash_type_exists", "Ya existe un tipo de lavado con ese nombre.")
		}
		return err
	}
	return nil
}

func (r *WashTypeGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.WashType{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return httperr.ErrBusinessMsg("wash_type_in_use", "El tipo de lavado tiene citas asociadas.")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

var (
	_ domain.Catalog     = (*WashTypeGormRepository)(nil)
	_ catalog.Repository = (*WashTypeGormRepository)(nil)
)
