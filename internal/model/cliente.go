package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cliente wraps a Persona with commercial credit terms.
// Soft-deletable: DeletedAt excludes the record from default queries but the
// row remains recoverable via Restaurar.
type Cliente struct {
	ID                 uint            `gorm:"primaryKey"`
	PersonaID          uint            `gorm:"not null;index"`
	Codigo             string          `gorm:"size:20;uniqueIndex;not null"`
	DiasCredito        int             `gorm:"not null;default:0"`
	CreditoDisponible  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Estado             bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	Persona *Persona `gorm:"foreignKey:PersonaID"`
}

func (Cliente) TableName() string { return "clientes" }
