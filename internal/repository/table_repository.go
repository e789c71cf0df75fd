package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-booking/internal/model"
)

type TableRepository interface {
	// Весь каталог столов в порядке id.
	List(ctx context.Context) ([]model.Table, error)
	// Найти стол по ID.
	GetByID(ctx context.Context, id int64) (*model.Table, error)
}

// Реализация на GORM.
type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) List(ctx context.Context) ([]model.Table, error) {
	var tables []model.Table
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormTableRepository) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	var t model.Table
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
