package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNombreParaMostrar(t *testing.T) {
	t.Run("nombre completo tiene prioridad", func(t *testing.T) {
		p := Persona{Nombres: strPtr("Maria"), Apellidos: strPtr("Quispe"), RazonSocial: strPtr("Comercial MQ")}
		assert.Equal(t, "Maria Quispe", *p.NombreParaMostrar())
	})

	t.Run("cae a razon social", func(t *testing.T) {
		p := Persona{RazonSocial: strPtr("Importadora Andina SRL")}
		assert.Equal(t, "Importadora Andina SRL", *p.NombreParaMostrar())
	})

	t.Run("sin nombres ni razon social", func(t *testing.T) {
		p := Persona{}
		assert.Nil(t, p.NombreParaMostrar())
	})

	t.Run("nombres en blanco no cuentan", func(t *testing.T) {
		p := Persona{Nombres: strPtr("  "), RazonSocial: strPtr("La Esquina")}
		assert.Equal(t, "La Esquina", *p.NombreParaMostrar())
	})

	t.Run("solo nombres sin apellidos", func(t *testing.T) {
		p := Persona{Nombres: strPtr("Juan")}
		assert.Equal(t, "Juan", *p.NombreParaMostrar())
	})
}
