package model

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate создаёт схему бэкенда ресторана.
// Нужна для локальной SQLite и тестов: в проде схемой владеет бэкенд.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Table{},
		&Client{},
		&Reservation{},
	)
}

// Стартовый зал ресторана.
var DefaultTables = []Table{
	{Number: 1, Capacity: 2, Available: true},
	{Number: 2, Capacity: 4, Available: true},
	{Number: 3, Capacity: 4, Available: true},
	{Number: 4, Capacity: 6, Available: true},
	{Number: 5, Capacity: 8, Available: true},
}

// SeedTables заполняет каталог столов, если он пуст.
func SeedTables(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Table{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count > 0 {
		return nil
	}

	tables := make([]Table, len(DefaultTables))
	copy(tables, DefaultTables)
	if err := db.Create(&tables).Error; err != nil {
		return fmt.Errorf("seed tables: %w", err)
	}
	return nil
}
