package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleRequest struct {
	ProductoID          uint             `json:"producto_id"          validate:"required"`
	Cantidad            int              `json:"cantidad"             validate:"required,min=1"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`
}

type CrearVentaRequest struct {
	ClienteID           uint             `json:"cliente_id"           validate:"required"`
	TipoVenta           string           `json:"tipo_venta"           validate:"required,oneof=contado credito"`
	TipoComprobante     string           `json:"tipo_comprobante"     validate:"required,max=20"`
	NumeroComprobante   string           `json:"numero_comprobante"   validate:"required,max=30"`
	FechaVenta          string           `json:"fecha_venta"          validate:"required,datetime=2006-01-02"`
	FechaVencimiento    *string          `json:"fecha_vencimiento"    validate:"omitempty,datetime=2006-01-02"`
	PorcentajeImpuesto  *decimal.Decimal `json:"porcentaje_impuesto"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`
	Observaciones       *string          `json:"observaciones"`
	Detalles            []DetalleRequest `json:"detalles"             validate:"required,min=1,dive"`
}

// ActualizarVentaRequest only touches header fields; line items are immutable
// once the document exists. Rejected with 409 when PuedeEditarse() is false.
type ActualizarVentaRequest struct {
	TipoComprobante   *string `json:"tipo_comprobante"  validate:"omitempty,max=20"`
	NumeroComprobante *string `json:"numero_comprobante" validate:"omitempty,max=30"`
	FechaVencimiento  *string `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	Observaciones     *string `json:"observaciones"`
	Estado            *string `json:"estado"            validate:"omitempty,oneof=pendiente completada pagada"`
}

type VentaFilter struct {
	Estado string `form:"estado"` // pendiente | completada | pagada | anulada | all
	Fecha  string `form:"fecha"`  // YYYY-MM-DD
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ID                  uint            `json:"id"`
	ProductoID          uint            `json:"producto_id"`
	ProductoNombre      *string         `json:"producto_nombre"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento"`
	Descuento           decimal.Decimal `json:"descuento"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	Total               decimal.Decimal `json:"total"`
}

type VentaResponse struct {
	ID                  uint                   `json:"id"`
	Codigo              string                 `json:"codigo"`
	Cliente             *ClienteResponse       `json:"cliente,omitempty"`
	TipoVenta           string                 `json:"tipo_venta"`
	TipoComprobante     string                 `json:"tipo_comprobante"`
	NumeroComprobante   string                 `json:"numero_comprobante"`
	FechaVenta          string                 `json:"fecha_venta"`
	FechaVencimiento    *string                `json:"fecha_vencimiento"`
	Subtotal            decimal.Decimal        `json:"subtotal"`
	PorcentajeImpuesto  decimal.Decimal        `json:"porcentaje_impuesto"`
	Impuesto            decimal.Decimal        `json:"impuesto"`
	PorcentajeDescuento decimal.Decimal        `json:"porcentaje_descuento"`
	Descuento           decimal.Decimal        `json:"descuento"`
	Total               decimal.Decimal        `json:"total"`
	Estado              string                 `json:"estado"`
	Observaciones       *string                `json:"observaciones"`
	Detalles            []DetalleVentaResponse `json:"detalles,omitempty"`
	CanEdit             bool                   `json:"can_edit"`
	CreatedAt           string                 `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
