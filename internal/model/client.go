package model

// clientes
type Client struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"column:nombre;type:varchar(100);not null"`
	Email string `gorm:"column:email;type:varchar(120);not null;uniqueIndex"`
	Phone string `gorm:"column:telefono;type:varchar(20);not null"`
}

func (Client) TableName() string { return "clientes" }
