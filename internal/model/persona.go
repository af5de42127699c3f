package model

import (
	"strings"
	"time"
)

// Persona is the shared identity record (individual or company) underlying
// clientes and proveedores. Natural persons fill Nombres/Apellidos; companies
// fill RazonSocial. Both may coexist for one-person businesses.
type Persona struct {
	ID              uint    `gorm:"primaryKey"`
	Nombres         *string `gorm:"size:150"`
	Apellidos       *string `gorm:"size:150"`
	RazonSocial     *string `gorm:"size:200"`
	TipoDocumento   string  `gorm:"size:20;not null"`
	NumeroDocumento string  `gorm:"size:30;uniqueIndex;not null"`
	Telefono        *string `gorm:"size:20"`
	Email           *string `gorm:"size:150"`
	Direccion       *string `gorm:"size:250"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Persona) TableName() string { return "personas" }

// NombreCompleto joins nombres and apellidos; nil when the persona has no
// personal name (company-only record).
func (p *Persona) NombreCompleto() *string {
	if p.Nombres == nil {
		return nil
	}
	nombre := strings.TrimSpace(*p.Nombres)
	if p.Apellidos != nil {
		nombre = strings.TrimSpace(nombre + " " + *p.Apellidos)
	}
	if nombre == "" {
		return nil
	}
	return &nombre
}

// NombreParaMostrar resolves the display name with the two-level fallback:
// full personal name, else razón social, else nil.
func (p *Persona) NombreParaMostrar() *string {
	if nombre := p.NombreCompleto(); nombre != nil {
		return nombre
	}
	return p.RazonSocial
}
