package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra is a purchase document header, mirror of Venta against a Proveedor.
type Compra struct {
	ID                  uint   `gorm:"primaryKey"`
	Codigo              string `gorm:"size:20;uniqueIndex;not null"`
	ProveedorID         uint   `gorm:"not null;index"`
	TipoCompra          string `gorm:"size:20;not null"` // contado | credito
	TipoComprobante     string `gorm:"size:20;not null"`
	NumeroComprobante   string `gorm:"size:30;not null"`
	FechaCompra         time.Time  `gorm:"type:date;not null"`
	FechaVencimiento    *time.Time `gorm:"type:date"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PorcentajeImpuesto  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Impuesto            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Descuento           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Total               decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Estado              string          `gorm:"size:20;not null;default:'pendiente'"`
	Observaciones       *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Proveedor *Proveedor      `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleCompra `gorm:"foreignKey:CompraID"`
}

func (Compra) TableName() string { return "compras" }

func (c *Compra) PuedeEditarse() bool {
	return puedeEditarse(c.Estado, c.CreatedAt)
}

// DetalleCompra is one ordered line item of a Compra.
type DetalleCompra struct {
	ID                  uint            `gorm:"primaryKey"`
	CompraID            uint            `gorm:"not null;index"`
	ProductoID          uint            `gorm:"not null;index"`
	Cantidad            int             `gorm:"not null"`
	PrecioUnitario      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Descuento           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total               decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleCompra) TableName() string { return "detalle_compras" }
