package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a sellable item. Margin and low-stock are pure functions of the
// persisted fields, recomputed on every read — never stored.
type Producto struct {
	ID           uint    `gorm:"primaryKey"`
	Codigo       string  `gorm:"size:20;uniqueIndex;not null"`
	Nombre       string  `gorm:"size:150;index;not null"`
	Descripcion  *string
	CategoriaID  uint            `gorm:"not null;index"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecioVenta  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock        int             `gorm:"not null;default:0"`
	StockMinimo  int             `gorm:"not null;default:5"`
	UnidadMedida string          `gorm:"size:20;not null;default:'unidad'"`
	Imagen       *string         `gorm:"size:250"`
	Estado       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }

var cien = decimal.NewFromInt(100)

// MargenUtilidad is the profit margin percentage, rounded to 2 decimals.
// Zero when the purchase price is zero (avoid division by zero).
func (p *Producto) MargenUtilidad() decimal.Decimal {
	if !p.PrecioCompra.IsPositive() {
		return decimal.Zero
	}
	return p.PrecioVenta.Sub(p.PrecioCompra).Div(p.PrecioCompra).Mul(cien).Round(2)
}

// TieneStockBajo reports stock at or below the minimum threshold.
func (p *Producto) TieneStockBajo() bool {
	return p.Stock <= p.StockMinimo
}
