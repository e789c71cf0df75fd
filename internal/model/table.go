package model

// mesas
type Table struct {
	ID        int64 `gorm:"primaryKey"`
	Number    int   `gorm:"column:numero;not null;uniqueIndex"`
	Capacity  int   `gorm:"column:capacidad;not null"`
	Available bool  `gorm:"column:disponible;not null"`
}

func (Table) TableName() string { return "mesas" }
