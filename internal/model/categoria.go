package model

import "time"

// Categoria groups products. Hard-deleted (no soft delete marker).
type Categoria struct {
	ID          uint    `gorm:"primaryKey"`
	Nombre      string  `gorm:"size:100;uniqueIndex;not null"`
	Descripcion *string
	Estado      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Categoria) TableName() string { return "categorias" }
