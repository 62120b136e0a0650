package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// Search lists clients, newest first, optionally matching name, phone or email.
func (r *ClientGormRepository) Search(ctx context.Context, query string) ([]models.Client, error) {
	q := r.db.WithContext(ctx)

	if query = strings.ToLower(strings.TrimSpace(query)); query != "" {
		like := containsPattern(query)
		q = q.Where(clientSearchClause, like, like, like)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
