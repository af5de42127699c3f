package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	// Codigo is optional — generated (PROD + secuencia) when omitted.
	Codigo       *string         `json:"codigo"        validate:"omitempty,min=5,max=20"`
	Nombre       string          `json:"nombre"        validate:"required,min=2,max=150"`
	Descripcion  *string         `json:"descripcion"`
	CategoriaID  uint            `json:"categoria_id"  validate:"required"`
	PrecioCompra decimal.Decimal `json:"precio_compra" validate:"min=0"`
	PrecioVenta  decimal.Decimal `json:"precio_venta"  validate:"required"`
	Stock        int             `json:"stock"         validate:"min=0"`
	StockMinimo  int             `json:"stock_minimo"  validate:"min=0"`
	UnidadMedida string          `json:"unidad_medida"`
	Imagen       *string         `json:"imagen"`
}

type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=2,max=150"`
	Descripcion  *string          `json:"descripcion"`
	CategoriaID  *uint            `json:"categoria_id"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	Stock        *int             `json:"stock"         validate:"omitempty,min=0"`
	StockMinimo  *int             `json:"stock_minimo"  validate:"omitempty,min=0"`
	UnidadMedida *string          `json:"unidad_medida"`
	Imagen       *string          `json:"imagen"`
	Estado       *bool            `json:"estado"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	// Estado: "false" = inactivos, "all" = todos, default activos
	Estado      string `form:"estado"`
	CategoriaID uint   `form:"categoria_id"`
	StockBajo   bool   `form:"stock_bajo"`
	Buscar      string `form:"buscar"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID             uint               `json:"id"`
	Codigo         string             `json:"codigo"`
	Nombre         string             `json:"nombre"`
	Descripcion    *string            `json:"descripcion"`
	CategoriaID    uint               `json:"categoria_id"`
	Categoria      *CategoriaResponse `json:"categoria,omitempty"`
	PrecioCompra   decimal.Decimal    `json:"precio_compra"`
	PrecioVenta    decimal.Decimal    `json:"precio_venta"`
	MargenUtilidad decimal.Decimal    `json:"margen_utilidad"`
	Stock          int                `json:"stock"`
	StockMinimo    int                `json:"stock_minimo"`
	TieneStockBajo bool               `json:"tiene_stock_bajo"`
	UnidadMedida   string             `json:"unidad_medida"`
	Imagen         *string            `json:"imagen"`
	ImagenURL      *string            `json:"imagen_url"`
	Estado         bool               `json:"estado"`
	CreatedAt      string             `json:"created_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
