package model

import "time"

// Статусы так, как их пишет бэкенд ресторана.
const (
	ReservationStatusPending   = "pendiente"
	ReservationStatusConfirmed = "confirmada"
	ReservationStatusCancelled = "cancelada"
)

// reservas
type Reservation struct {
	ID       int64 `gorm:"primaryKey"`
	ClientID int64 `gorm:"column:cliente_id;not null;index"`
	TableID  int64 `gorm:"column:mesa_id;not null;index"`

	// Время без пояса, как его хранит бэкенд.
	StartsAt  time.Time `gorm:"column:fecha_hora;not null;index"`
	PartySize int       `gorm:"column:num_personas;not null"`
	Status    string    `gorm:"column:estado;type:varchar(20)"`
	Notes     string    `gorm:"column:notas;type:text"`
	CreatedAt time.Time `gorm:"column:creada_en"`

	// Навигационные поля для Preload.
	Client *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Table  *Table  `gorm:"foreignKey:TableID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Reservation) TableName() string { return "reservas" }
