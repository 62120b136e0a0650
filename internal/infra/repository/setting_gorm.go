package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/preferences"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

// SettingGormStore is a preferences.Store over the settings table.
type SettingGormStore struct {
	db *gorm.DB
}

func NewSettingGormStore(db *gorm.DB) *SettingGormStore {
	return &SettingGormStore{db: db}
}

func (s *SettingGormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.Setting
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *SettingGormStore) Set(ctx context.Context, key, value string) error {
	row := models.Setting{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

var _ preferences.Store = (*SettingGormStore)(nil)
