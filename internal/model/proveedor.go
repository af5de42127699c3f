package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Proveedor wraps a Persona with supplier-specific commercial data.
// TipoProveedor: "producto" | "servicio" | "ambos"
type Proveedor struct {
	ID               uint            `gorm:"primaryKey"`
	PersonaID        uint            `gorm:"not null;index"`
	Codigo           string          `gorm:"size:20;uniqueIndex;not null"`
	TipoProveedor    string          `gorm:"size:20;not null"`
	Rubro            *string         `gorm:"size:150"`
	LimiteCredito    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreditoUsado     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DiasCredito      int             `gorm:"not null;default:0"`
	DescuentoGeneral decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CuentaBancaria   *string         `gorm:"size:50"`
	Banco            *string         `gorm:"size:100"`
	NombreContacto   *string         `gorm:"size:150"`
	CargoContacto    *string         `gorm:"size:100"`
	TelefonoContacto *string         `gorm:"size:20"`
	EmailContacto    *string         `gorm:"size:150"`
	Observaciones    *string
	FechaRegistro    *time.Time `gorm:"type:date"`
	UltimaCompra     *time.Time `gorm:"type:date"`
	TotalCompras     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	// Calificacion 1-5; 3 = neutral default
	Calificacion int  `gorm:"not null;default:3"`
	Estado       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Persona *Persona `gorm:"foreignKey:PersonaID"`
}

func (Proveedor) TableName() string { return "proveedores" }

// CreditoDisponible is derived, never stored.
func (p *Proveedor) CreditoDisponible() decimal.Decimal {
	return p.LimiteCredito.Sub(p.CreditoUsado)
}
