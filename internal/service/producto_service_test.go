package service

import (
	"context"
	"testing"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubProductoRepo keeps products in memory and can inject duplicate-key
// failures to exercise the código retry loop.
type stubProductoRepo struct {
	productos map[uint]*model.Producto
	ultimo    *model.Producto
	nextID    uint

	// fallarCrear: number of upcoming Crear calls that fail with duplicate key
	fallarCrear int
	crearCalls  int
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto), nextID: 1}
}

func (s *stubProductoRepo) Crear(_ context.Context, p *model.Producto) error {
	s.crearCalls++
	if s.fallarCrear > 0 {
		s.fallarCrear--
		return gorm.ErrDuplicatedKey
	}
	p.ID = s.nextID
	s.nextID++
	s.productos[p.ID] = p
	s.ultimo = p
	return nil
}

func (s *stubProductoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := s.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProductoRepo) ObtenerPorCodigo(_ context.Context, codigo string) (*model.Producto, error) {
	for _, p := range s.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductoRepo) UltimoCreado(_ context.Context) (*model.Producto, error) {
	if s.ultimo == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.ultimo, nil
}

func (s *stubProductoRepo) Listar(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(s.productos))
	for _, p := range s.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *stubProductoRepo) Actualizar(_ context.Context, p *model.Producto) error {
	s.productos[p.ID] = p
	return nil
}

func (s *stubProductoRepo) Eliminar(_ context.Context, id uint) error {
	delete(s.productos, id)
	return nil
}

func (s *stubProductoRepo) AjustarStockTx(_ *gorm.DB, id uint, delta int) error {
	if p, ok := s.productos[id]; ok {
		p.Stock += delta
	}
	return nil
}

func categoriaRepoConUna(t *testing.T) (*stubCategoriaRepo, uint) {
	t.Helper()
	repo := newStubCategoriaRepo()
	c := &model.Categoria{Nombre: "General", Estado: true}
	require.NoError(t, repo.Crear(context.Background(), c))
	return repo, c.ID
}

func crearProductoReq(categoriaID uint) dto.CrearProductoRequest {
	return dto.CrearProductoRequest{
		Nombre:       "Azucar 1kg",
		CategoriaID:  categoriaID,
		PrecioCompra: decimal.NewFromInt(5),
		PrecioVenta:  decimal.NewFromInt(8),
		Stock:        50,
		StockMinimo:  10,
	}
}

func TestProductoCrearGeneraCodigo(t *testing.T) {
	catRepo, catID := categoriaRepoConUna(t)
	repo := newStubProductoRepo()
	svc := NewProductoService(repo, catRepo)

	resp, err := svc.Crear(context.Background(), crearProductoReq(catID))
	require.NoError(t, err)
	assert.Equal(t, "PROD000001", resp.Codigo, "tabla vacia arranca la secuencia")
	assert.Equal(t, "unidad", resp.UnidadMedida, "default cuando no se envia")

	resp2, err := svc.Crear(context.Background(), crearProductoReq(catID))
	require.NoError(t, err)
	assert.Equal(t, "PROD000002", resp2.Codigo)
}

func TestProductoCrearReintentaTrasColision(t *testing.T) {
	catRepo, catID := categoriaRepoConUna(t)
	repo := newStubProductoRepo()
	repo.fallarCrear = 1 // primera insercion choca con la constraint
	svc := NewProductoService(repo, catRepo)

	resp, err := svc.Crear(context.Background(), crearProductoReq(catID))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.crearCalls)
	assert.NotEmpty(t, resp.Codigo)
}

func TestProductoCrearAgotaReintentos(t *testing.T) {
	catRepo, catID := categoriaRepoConUna(t)
	repo := newStubProductoRepo()
	repo.fallarCrear = maxIntentosCodigo
	svc := NewProductoService(repo, catRepo)

	_, err := svc.Crear(context.Background(), crearProductoReq(catID))
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
	assert.Equal(t, maxIntentosCodigo, repo.crearCalls)
}

func TestProductoCrearCategoriaInexistente(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), newStubCategoriaRepo())

	_, err := svc.Crear(context.Background(), crearProductoReq(77))
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "categoria_id")
}

func TestProductoCrearCodigoExplicitoDuplicado(t *testing.T) {
	catRepo, catID := categoriaRepoConUna(t)
	repo := newStubProductoRepo()
	repo.fallarCrear = 1
	svc := NewProductoService(repo, catRepo)

	req := crearProductoReq(catID)
	codigo := "MIPROD01"
	req.Codigo = &codigo

	_, err := svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err), "codigo explicito no reintenta, devuelve 409")
	assert.Equal(t, 1, repo.crearCalls)
}

func TestProductoActualizarCambioDeCategoria(t *testing.T) {
	catRepo, catID := categoriaRepoConUna(t)
	otra := &model.Categoria{Nombre: "Bebidas", Estado: true}
	require.NoError(t, catRepo.Crear(context.Background(), otra))

	repo := newStubProductoRepo()
	svc := NewProductoService(repo, catRepo)

	creado, err := svc.Crear(context.Background(), crearProductoReq(catID))
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), creado.ID, dto.ActualizarProductoRequest{CategoriaID: &otra.ID})
	require.NoError(t, err)
	assert.Equal(t, otra.ID, resp.CategoriaID)
	assert.Nil(t, resp.Categoria, "relacion vieja no debe viajar")
}
