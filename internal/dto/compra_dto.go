package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCompraRequest struct {
	ProveedorID         uint             `json:"proveedor_id"         validate:"required"`
	TipoCompra          string           `json:"tipo_compra"          validate:"required,oneof=contado credito"`
	TipoComprobante     string           `json:"tipo_comprobante"     validate:"required,max=20"`
	NumeroComprobante   string           `json:"numero_comprobante"   validate:"required,max=30"`
	FechaCompra         string           `json:"fecha_compra"         validate:"required,datetime=2006-01-02"`
	FechaVencimiento    *string          `json:"fecha_vencimiento"    validate:"omitempty,datetime=2006-01-02"`
	PorcentajeImpuesto  *decimal.Decimal `json:"porcentaje_impuesto"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`
	Observaciones       *string          `json:"observaciones"`
	Detalles            []DetalleRequest `json:"detalles"             validate:"required,min=1,dive"`
}

type ActualizarCompraRequest struct {
	TipoComprobante   *string `json:"tipo_comprobante"   validate:"omitempty,max=20"`
	NumeroComprobante *string `json:"numero_comprobante" validate:"omitempty,max=30"`
	FechaVencimiento  *string `json:"fecha_vencimiento"  validate:"omitempty,datetime=2006-01-02"`
	Observaciones     *string `json:"observaciones"`
	Estado            *string `json:"estado"             validate:"omitempty,oneof=pendiente completada pagada"`
}

type CompraFilter struct {
	Estado string `form:"estado"`
	Fecha  string `form:"fecha"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
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

type CompraResponse struct {
	ID                  uint                    `json:"id"`
	Codigo              string                  `json:"codigo"`
	Proveedor           *ProveedorResponse      `json:"proveedor,omitempty"`
	TipoCompra          string                  `json:"tipo_compra"`
	TipoComprobante     string                  `json:"tipo_comprobante"`
	NumeroComprobante   string                  `json:"numero_comprobante"`
	FechaCompra         string                  `json:"fecha_compra"`
	FechaVencimiento    *string                 `json:"fecha_vencimiento"`
	PorcentajeImpuesto  decimal.Decimal         `json:"porcentaje_impuesto"`
	PorcentajeDescuento decimal.Decimal         `json:"porcentaje_descuento"`
	Total               decimal.Decimal         `json:"total"`
	Estado              string                  `json:"estado"`
	Observaciones       *string                 `json:"observaciones"`
	Detalles            []DetalleCompraResponse `json:"detalles,omitempty"`
	CanEdit             bool                    `json:"can_edit"`
	CreatedAt           string                  `json:"created_at"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
