package resource

import (
	"testing"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProductoSinCategoriaCargada(t *testing.T) {
	p := model.Producto{ID: 1, Codigo: "PROD000001", Nombre: "Arroz", CategoriaID: 7}
	resp := Producto(p)

	assert.Nil(t, resp.Categoria, "relacion no cargada no debe aparecer")
	assert.Equal(t, uint(7), resp.CategoriaID, "la FK si viaja siempre")
}

func TestProductoConCategoriaCargada(t *testing.T) {
	p := model.Producto{
		ID:          1,
		Codigo:      "PROD000001",
		Nombre:      "Arroz",
		CategoriaID: 7,
		Categoria:   &model.Categoria{ID: 7, Nombre: "Abarrotes", Estado: true},
	}
	resp := Producto(p)

	require.NotNil(t, resp.Categoria)
	assert.Equal(t, "Abarrotes", resp.Categoria.Nombre)
}

func TestProductoImagenURL(t *testing.T) {
	sin := Producto(model.Producto{})
	assert.Nil(t, sin.ImagenURL)

	con := Producto(model.Producto{Imagen: strPtr("productos/arroz.png")})
	require.NotNil(t, con.ImagenURL)
	assert.Equal(t, "/storage/productos/arroz.png", *con.ImagenURL)
}

func TestVentaDetallesSoloSiCargados(t *testing.T) {
	v := model.Venta{ID: 3, Codigo: "VENT000003", FechaVenta: time.Now()}
	resp := Venta(v)
	assert.Nil(t, resp.Detalles, "sin preload no hay detalles en el JSON")
	assert.Nil(t, resp.Cliente)

	v.Detalles = []model.DetalleVenta{{ID: 1, ProductoID: 9, Cantidad: 2}}
	v.Cliente = &model.Cliente{ID: 5, Codigo: "CLI000005", Persona: &model.Persona{RazonSocial: strPtr("Bodega Central")}}
	resp = Venta(v)
	require.Len(t, resp.Detalles, 1)
	require.NotNil(t, resp.Cliente)
	assert.Equal(t, "Bodega Central", *resp.Cliente.Nombre)
}

func TestVentaFechasYCanEdit(t *testing.T) {
	venc := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	v := model.Venta{
		Codigo:           "VENT000010",
		Estado:           model.EstadoPendiente,
		FechaVenta:       time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		FechaVencimiento: &venc,
		CreatedAt:        time.Now(),
	}
	resp := Venta(v)
	assert.Equal(t, "2026-02-28", resp.FechaVenta)
	require.NotNil(t, resp.FechaVencimiento)
	assert.Equal(t, "2026-03-15", *resp.FechaVencimiento)
	assert.True(t, resp.CanEdit, "pendiente siempre editable")
}

func TestClienteSinPersona(t *testing.T) {
	resp := Cliente(model.Cliente{ID: 1, Codigo: "CLI000001", CreditoDisponible: decimal.Zero})
	assert.Nil(t, resp.Nombre)
	assert.Nil(t, resp.Telefono)
	assert.Nil(t, resp.Email)
}

func TestProveedorCreditoDisponibleDerivado(t *testing.T) {
	limite, _ := decimal.NewFromString("1000")
	usado, _ := decimal.NewFromString("350.50")
	resp := Proveedor(model.Proveedor{Codigo: "PROV000001", LimiteCredito: limite, CreditoUsado: usado})
	esperado, _ := decimal.NewFromString("649.50")
	assert.True(t, esperado.Equal(resp.CreditoDisponible))
	assert.Nil(t, resp.UltimaCompra)
}
