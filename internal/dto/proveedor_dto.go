package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	Persona          PersonaRequest   `json:"persona"           validate:"required"`
	TipoProveedor    string           `json:"tipo_proveedor"    validate:"required,oneof=producto servicio ambos"`
	Rubro            *string          `json:"rubro"             validate:"omitempty,max=150"`
	LimiteCredito    *decimal.Decimal `json:"limite_credito"`
	DiasCredito      int              `json:"dias_credito"      validate:"min=0"`
	DescuentoGeneral *decimal.Decimal `json:"descuento_general"`
	CuentaBancaria   *string          `json:"cuenta_bancaria"   validate:"omitempty,max=50"`
	Banco            *string          `json:"banco"             validate:"omitempty,max=100"`
	NombreContacto   *string          `json:"nombre_contacto"   validate:"omitempty,max=150"`
	CargoContacto    *string          `json:"cargo_contacto"    validate:"omitempty,max=100"`
	TelefonoContacto *string          `json:"telefono_contacto" validate:"omitempty,max=20"`
	EmailContacto    *string          `json:"email_contacto"    validate:"omitempty,email"`
	Observaciones    *string          `json:"observaciones"`
	Calificacion     *int             `json:"calificacion"      validate:"omitempty,min=1,max=5"`
}

type ActualizarProveedorRequest struct {
	Persona          *PersonaRequest  `json:"persona"`
	TipoProveedor    *string          `json:"tipo_proveedor"    validate:"omitempty,oneof=producto servicio ambos"`
	Rubro            *string          `json:"rubro"             validate:"omitempty,max=150"`
	LimiteCredito    *decimal.Decimal `json:"limite_credito"`
	DiasCredito      *int             `json:"dias_credito"      validate:"omitempty,min=0"`
	DescuentoGeneral *decimal.Decimal `json:"descuento_general"`
	CuentaBancaria   *string          `json:"cuenta_bancaria"   validate:"omitempty,max=50"`
	Banco            *string          `json:"banco"             validate:"omitempty,max=100"`
	NombreContacto   *string          `json:"nombre_contacto"   validate:"omitempty,max=150"`
	CargoContacto    *string          `json:"cargo_contacto"    validate:"omitempty,max=100"`
	TelefonoContacto *string          `json:"telefono_contacto" validate:"omitempty,max=20"`
	EmailContacto    *string          `json:"email_contacto"    validate:"omitempty,email"`
	Observaciones    *string          `json:"observaciones"`
	Calificacion     *int             `json:"calificacion"      validate:"omitempty,min=1,max=5"`
	Estado           *bool            `json:"estado"`
}

type ProveedorFilter struct {
	Estado string `form:"estado"`
	Buscar string `form:"buscar"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProveedorResponse struct {
	ID                uint            `json:"id"`
	Codigo            string          `json:"codigo"`
	Nombre            *string         `json:"nombre"`
	Telefono          *string         `json:"telefono"`
	Email             *string         `json:"email"`
	TipoProveedor     string          `json:"tipo_proveedor"`
	Rubro             *string         `json:"rubro"`
	DiasCredito       int             `json:"dias_credito"`
	CreditoDisponible decimal.Decimal `json:"credito_disponible"`
	TotalCompras      decimal.Decimal `json:"total_compras"`
	UltimaCompra      *string         `json:"ultima_compra"`
	Calificacion      int             `json:"calificacion"`
	Estado            bool            `json:"estado"`
}

type ProveedorListResponse struct {
	Data  []ProveedorResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
