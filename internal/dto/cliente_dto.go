package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Persona           PersonaRequest   `json:"persona"            validate:"required"`
	DiasCredito       int              `json:"dias_credito"       validate:"min=0"`
	CreditoDisponible *decimal.Decimal `json:"credito_disponible"`
}

type ActualizarClienteRequest struct {
	Persona           *PersonaRequest  `json:"persona"`
	DiasCredito       *int             `json:"dias_credito"       validate:"omitempty,min=0"`
	CreditoDisponible *decimal.Decimal `json:"credito_disponible"`
	Estado            *bool            `json:"estado"`
}

type ClienteFilter struct {
	Estado string `form:"estado"`
	Buscar string `form:"buscar"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID                uint            `json:"id"`
	Codigo            string          `json:"codigo"`
	Nombre            *string         `json:"nombre"`
	Telefono          *string         `json:"telefono"`
	Email             *string         `json:"email"`
	DiasCredito       int             `json:"dias_credito"`
	CreditoDisponible decimal.Decimal `json:"credito_disponible"`
	Estado            bool            `json:"estado"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
