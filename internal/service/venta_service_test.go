package service

import (
	"context"
	"testing"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCalcularLinea(t *testing.T) {
	sub, desc, total := calcularLinea(dec("10.50"), 4, dec("10"))
	assert.True(t, dec("42").Equal(sub))
	assert.True(t, dec("4.20").Equal(desc))
	assert.True(t, dec("37.80").Equal(total))

	sub, desc, total = calcularLinea(dec("3"), 2, decimal.Zero)
	assert.True(t, dec("6").Equal(sub))
	assert.True(t, decimal.Zero.Equal(desc))
	assert.True(t, dec("6").Equal(total))
}

func TestCalcularTotales(t *testing.T) {
	// subtotal 100, sin descuento de lineas, 10% descuento cabecera, 18% impuesto
	descuento, impuesto, total := calcularTotales(dec("100"), decimal.Zero, dec("10"), dec("18"))
	assert.True(t, dec("10").Equal(descuento))
	assert.True(t, dec("16.20").Equal(impuesto), "impuesto sobre la base descontada, obtuve %s", impuesto)
	assert.True(t, dec("106.20").Equal(total))

	// descuentos de linea se suman al de cabecera sobre el remanente
	descuento, impuesto, total = calcularTotales(dec("200"), dec("20"), dec("5"), decimal.Zero)
	assert.True(t, dec("29").Equal(descuento), "20 + 5%% de 180, obtuve %s", descuento)
	assert.True(t, decimal.Zero.Equal(impuesto))
	assert.True(t, dec("171").Equal(total))

	// sin porcentajes: total == subtotal - descuentos de linea
	descuento, impuesto, total = calcularTotales(dec("50"), dec("5"), decimal.Zero, decimal.Zero)
	assert.True(t, dec("5").Equal(descuento))
	assert.True(t, decimal.Zero.Equal(impuesto))
	assert.True(t, dec("45").Equal(total))
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubVentaRepo persists in memory; EnTx runs the callback with a nil tx so
// the transactional paths (create + stock deltas, anular) are exercised.
type stubVentaRepo struct {
	ventas map[uint]*model.Venta
	nextID uint
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uint]*model.Venta), nextID: 1}
}

func (s *stubVentaRepo) CrearTx(_ *gorm.DB, v *model.Venta) error {
	v.ID = s.nextID
	s.nextID++
	s.ventas[v.ID] = v
	return nil
}
func (s *stubVentaRepo) ObtenerPorID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := s.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}
func (s *stubVentaRepo) UltimaCreada(_ context.Context) (*model.Venta, error) {
	if s.nextID <= 1 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.ventas[s.nextID-1], nil
}
func (s *stubVentaRepo) Listar(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	return nil, 0, nil
}
func (s *stubVentaRepo) Actualizar(_ context.Context, v *model.Venta) error {
	s.ventas[v.ID] = v
	return nil
}
func (s *stubVentaRepo) ActualizarTx(_ *gorm.DB, v *model.Venta) error {
	s.ventas[v.ID] = v
	return nil
}
func (s *stubVentaRepo) EnTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type stubDispatcher struct {
	encolados []model.Producto
}

func (d *stubDispatcher) EncolarAlertaStock(_ context.Context, p model.Producto) error {
	d.encolados = append(d.encolados, p)
	return nil
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestConstruirLineasProductoInexistente(t *testing.T) {
	svc := &ventaService{productoRepo: newStubProductoRepo()}

	_, _, _, err := svc.construirLineas(context.Background(), []dto.DetalleRequest{
		{ProductoID: 42, Cantidad: 1},
	})
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "detalles.0.producto_id")
}

func TestConstruirLineasStockInsuficiente(t *testing.T) {
	repo := newStubProductoRepo()
	repo.productos[1] = &model.Producto{ID: 1, Nombre: "Leche", Stock: 2, PrecioVenta: dec("4")}
	svc := &ventaService{productoRepo: repo}

	_, _, _, err := svc.construirLineas(context.Background(), []dto.DetalleRequest{
		{ProductoID: 1, Cantidad: 5},
	})
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "detalles.0.cantidad")
}

func TestConstruirLineasPreciosYSubtotales(t *testing.T) {
	repo := newStubProductoRepo()
	repo.productos[1] = &model.Producto{ID: 1, Nombre: "Cafe", Stock: 100, PrecioVenta: dec("12.50")}
	repo.productos[2] = &model.Producto{ID: 2, Nombre: "Te", Stock: 100, PrecioVenta: dec("8")}
	svc := &ventaService{productoRepo: repo}

	pct := dec("10")
	lineas, subtotal, descLineas, err := svc.construirLineas(context.Background(), []dto.DetalleRequest{
		{ProductoID: 1, Cantidad: 2},
		{ProductoID: 2, Cantidad: 3, PorcentajeDescuento: &pct},
	})
	require.NoError(t, err)
	require.Len(t, lineas, 2)

	assert.True(t, dec("49").Equal(subtotal), "25 + 24, obtuve %s", subtotal)
	assert.True(t, dec("2.40").Equal(descLineas), "10%% de 24, obtuve %s", descLineas)
	assert.True(t, dec("12.50").Equal(lineas[0].detalle.PrecioUnitario), "precio tomado del producto, no del request")
}

func TestVentaActualizarBloqueadaFueraDeVentana(t *testing.T) {
	repo := &stubVentaRepo{ventas: map[uint]*model.Venta{
		1: {ID: 1, Estado: model.EstadoPagada, CreatedAt: time.Now()},
	}}
	svc := &ventaService{repo: repo}

	obs := "cambio tardio"
	_, err := svc.Actualizar(context.Background(), 1, dto.ActualizarVentaRequest{Observaciones: &obs})
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestVentaAnularDosVeces(t *testing.T) {
	repo := &stubVentaRepo{ventas: map[uint]*model.Venta{
		1: {ID: 1, Estado: model.EstadoAnulada, CreatedAt: time.Now()},
	}}
	svc := &ventaService{repo: repo}

	_, err := svc.Anular(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestVentaCrearDescuentaStock(t *testing.T) {
	clienteRepo := newStubClienteRepo()
	clienteRepo.clientes[1] = &model.Cliente{ID: 1, Estado: true}

	prodRepo := newStubProductoRepo()
	prodRepo.productos[1] = &model.Producto{ID: 1, Nombre: "Cafe", Stock: 10, StockMinimo: 2, PrecioVenta: dec("4")}

	ventaRepo := newStubVentaRepo()
	svc := NewVentaService(ventaRepo, clienteRepo, prodRepo, &stubDispatcher{})

	resp, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID:         1,
		TipoVenta:         "contado",
		TipoComprobante:   "boleta",
		NumeroComprobante: "B-001",
		FechaVenta:        "2026-03-01",
		Detalles:          []dto.DetalleRequest{{ProductoID: 1, Cantidad: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "VENT000001", resp.Codigo)
	assert.Equal(t, model.EstadoCompletada, resp.Estado, "contado se completa al crear")
	assert.True(t, dec("12").Equal(resp.Total))
	assert.Equal(t, 7, prodRepo.productos[1].Stock, "el stock baja dentro de la transaccion")
}

func TestVentaAnularDevuelveStock(t *testing.T) {
	prodRepo := newStubProductoRepo()
	prodRepo.productos[1] = &model.Producto{ID: 1, Nombre: "Cafe", Stock: 6, PrecioVenta: dec("4")}

	repo := newStubVentaRepo()
	repo.ventas[1] = &model.Venta{
		ID: 1, Estado: model.EstadoCompletada, CreatedAt: time.Now(),
		Detalles: []model.DetalleVenta{{ProductoID: 1, Cantidad: 4}},
	}

	svc := &ventaService{repo: repo, productoRepo: prodRepo}

	resp, err := svc.Anular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoAnulada, resp.Estado)
	assert.Equal(t, model.EstadoAnulada, repo.ventas[1].Estado)
	assert.Equal(t, 10, prodRepo.productos[1].Stock, "anular devuelve las cantidades al stock")
}

func TestDespacharAlertasSoloStockBajo(t *testing.T) {
	disp := &stubDispatcher{}
	svc := &ventaService{alertas: disp}

	lineas := []lineaCalculada{
		{ // 10 - 3 = 7 > minimo 5: sin alerta
			detalle:  model.DetalleVenta{Cantidad: 3},
			producto: model.Producto{ID: 1, Codigo: "PROD000001", Stock: 10, StockMinimo: 5},
		},
		{ // 6 - 2 = 4 <= minimo 5: alerta
			detalle:  model.DetalleVenta{Cantidad: 2},
			producto: model.Producto{ID: 2, Codigo: "PROD000002", Stock: 6, StockMinimo: 5},
		},
	}
	svc.despacharAlertas(context.Background(), lineas)

	require.Len(t, disp.encolados, 1)
	assert.Equal(t, uint(2), disp.encolados[0].ID)
	assert.Equal(t, 4, disp.encolados[0].Stock, "la alerta lleva el stock proyectado")
}
