package dto

// PersonaRequest is the nested identity payload for clientes y proveedores.
// Either a personal name or a razón social must be present — checked at the
// service layer since it spans two fields.
type PersonaRequest struct {
	Nombres         *string `json:"nombres"          validate:"omitempty,min=2,max=150"`
	Apellidos       *string `json:"apellidos"        validate:"omitempty,min=2,max=150"`
	RazonSocial     *string `json:"razon_social"     validate:"omitempty,min=2,max=200"`
	TipoDocumento   string  `json:"tipo_documento"   validate:"required,max=20"`
	NumeroDocumento string  `json:"numero_documento" validate:"required,max=30"`
	Telefono        *string `json:"telefono"         validate:"omitempty,max=20"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	Direccion       *string `json:"direccion"        validate:"omitempty,max=250"`
}
