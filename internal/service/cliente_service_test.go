package service

import (
	"context"
	"testing"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubClienteRepo struct {
	clientes  map[uint]*model.Cliente
	borrados  map[uint]*model.Cliente
	ultimo    *model.Cliente
	nextID    uint
	personaID uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{
		clientes: make(map[uint]*model.Cliente),
		borrados: make(map[uint]*model.Cliente),
		nextID:   1,
	}
}

func (s *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	c.ID = s.nextID
	s.nextID++
	if c.Persona != nil {
		s.personaID++
		c.Persona.ID = s.personaID
		c.PersonaID = c.Persona.ID
	}
	s.clientes[c.ID] = c
	s.ultimo = c
	return nil
}

func (s *stubClienteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := s.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// UltimoCreado incluye borrados, igual que la implementacion Unscoped real.
func (s *stubClienteRepo) UltimoCreado(_ context.Context) (*model.Cliente, error) {
	if s.ultimo == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.ultimo, nil
}

func (s *stubClienteRepo) Listar(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (s *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	s.clientes[c.ID] = c
	return nil
}

func (s *stubClienteRepo) Eliminar(_ context.Context, id uint) error {
	if c, ok := s.clientes[id]; ok {
		s.borrados[id] = c
		delete(s.clientes, id)
	}
	return nil
}

func (s *stubClienteRepo) Restaurar(_ context.Context, id uint) error {
	if c, ok := s.borrados[id]; ok {
		s.clientes[id] = c
		delete(s.borrados, id)
	}
	return nil
}

func crearClienteReq() dto.CrearClienteRequest {
	nombres := "Luis"
	apellidos := "Mamani"
	return dto.CrearClienteRequest{
		Persona: dto.PersonaRequest{
			Nombres:         &nombres,
			Apellidos:       &apellidos,
			TipoDocumento:   "CI",
			NumeroDocumento: "1234567",
		},
	}
}

func TestClienteCrearGeneraCodigoYNombre(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	resp, err := svc.Crear(context.Background(), crearClienteReq())
	require.NoError(t, err)
	assert.Equal(t, "CLI000001", resp.Codigo)
	require.NotNil(t, resp.Nombre)
	assert.Equal(t, "Luis Mamani", *resp.Nombre)
	assert.True(t, resp.Estado)
}

func TestClienteCrearSinIdentidad(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	req := dto.CrearClienteRequest{Persona: dto.PersonaRequest{
		TipoDocumento: "NIT", NumeroDocumento: "99887766",
	}}
	_, err := svc.Crear(context.Background(), req)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.Status)
	assert.Contains(t, apiErr.Fields, "persona")
}

func TestClienteEliminarYRestaurar(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	ctx := context.Background()

	creado, err := svc.Crear(ctx, crearClienteReq())
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(ctx, creado.ID))
	_, err = svc.Obtener(ctx, creado.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status, "borrado logico lo saca de las consultas")

	restaurado, err := svc.Restaurar(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, creado.Codigo, restaurado.Codigo, "conserva su codigo original")
}

func TestClienteCodigoNoSeReutilizaTrasBorrado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	ctx := context.Background()

	primero, err := svc.Crear(ctx, crearClienteReq())
	require.NoError(t, err)
	require.NoError(t, svc.Eliminar(ctx, primero.ID))

	req := crearClienteReq()
	req.Persona.NumeroDocumento = "7654321"
	segundo, err := svc.Crear(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "CLI000002", segundo.Codigo, "la secuencia avanza aunque el anterior este borrado")
}
