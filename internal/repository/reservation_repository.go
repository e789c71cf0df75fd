package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-booking/internal/model"
)

type ReservationRepository interface {
	// Все брони с клиентом и столом.
	List(ctx context.Context) ([]model.Reservation, error)
	// Брони с fecha_hora в полуинтервале [from, to).
	ListByRange(ctx context.Context, from, to time.Time) ([]model.Reservation, error)
	// Получить бронь по ID.
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
}

// Реализация на GORM. Только чтение: записью занимается бэкенд.
type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Preload("Client").
		Preload("Table")
}

func (r *GormReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.withRelations(ctx).Order("fecha_hora ASC, id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) ListByRange(ctx context.Context, from, to time.Time) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.withRelations(ctx).
		Where("fecha_hora >= ? AND fecha_hora < ?", from, to).
		Order("fecha_hora ASC, id ASC").
		Find(&reservations).
		Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	var res model.Reservation
	if err := r.withRelations(ctx).First(&res, "reservas.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}
