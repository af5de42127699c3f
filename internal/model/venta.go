package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados compartidos por ventas y compras.
const (
	EstadoPendiente  = "pendiente"
	EstadoCompletada = "completada"
	EstadoPagada     = "pagada"
	EstadoAnulada    = "anulada"
)

// ventanaEdicion: documentos completados siguen siendo editables por 24h.
const ventanaEdicion = 24 * time.Hour

// Venta is a sale document header owning an ordered collection of detalle
// lines. Totals are computed server-side at creation and re-validated on
// update; they are never accepted verbatim from clients.
type Venta struct {
	ID                  uint   `gorm:"primaryKey"`
	Codigo              string `gorm:"size:20;uniqueIndex;not null"`
	ClienteID           uint   `gorm:"not null;index"`
	TipoVenta           string `gorm:"size:20;not null"` // contado | credito
	TipoComprobante     string `gorm:"size:20;not null"`
	NumeroComprobante   string `gorm:"size:30;not null"`
	FechaVenta          time.Time  `gorm:"type:date;not null"`
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

	Cliente  *Cliente       `gorm:"foreignKey:ClienteID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// PuedeEditarse derives editability from estado and age: anuladas and pagadas
// are frozen, pendientes always editable, completadas only within 24h.
func (v *Venta) PuedeEditarse() bool {
	return puedeEditarse(v.Estado, v.CreatedAt)
}

func puedeEditarse(estado string, creado time.Time) bool {
	switch estado {
	case EstadoAnulada, EstadoPagada:
		return false
	case EstadoPendiente:
		return true
	default:
		return time.Since(creado) <= ventanaEdicion
	}
}

// DetalleVenta is one ordered line item of a Venta.
type DetalleVenta struct {
	ID                  uint            `gorm:"primaryKey"`
	VentaID             uint            `gorm:"not null;index"`
	ProductoID          uint            `gorm:"not null;index"`
	Cantidad            int             `gorm:"not null"`
	PrecioUnitario      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PorcentajeDescuento decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Descuento           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total               decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }
