package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPuedeEditarse(t *testing.T) {
	ahora := time.Now()
	tests := []struct {
		name   string
		estado string
		creado time.Time
		want   bool
	}{
		{"pendiente siempre editable", EstadoPendiente, ahora.Add(-72 * time.Hour), true},
		{"anulada nunca", EstadoAnulada, ahora, false},
		{"pagada nunca", EstadoPagada, ahora, false},
		{"completada reciente", EstadoCompletada, ahora.Add(-1 * time.Hour), true},
		{"completada dentro de 24h", EstadoCompletada, ahora.Add(-23 * time.Hour), true},
		{"completada vencida", EstadoCompletada, ahora.Add(-25 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Venta{Estado: tt.estado, CreatedAt: tt.creado}
			assert.Equal(t, tt.want, v.PuedeEditarse())

			c := Compra{Estado: tt.estado, CreatedAt: tt.creado}
			assert.Equal(t, tt.want, c.PuedeEditarse(), "compras comparten la regla")
		})
	}
}
