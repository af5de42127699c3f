package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCategoriaService responde con datos fijos, sin tocar persistencia.
type stubCategoriaService struct {
	categorias []dto.CategoriaResponse
	conflicto  bool
}

func (s *stubCategoriaService) Crear(_ context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	if s.conflicto {
		return dto.CategoriaResponse{}, apierror.Conflict("Ya existe una categoria con ese nombre")
	}
	return dto.CategoriaResponse{ID: 1, Nombre: req.Nombre, Estado: true}, nil
}

func (s *stubCategoriaService) Listar(_ context.Context, _ dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	return s.categorias, nil
}

func (s *stubCategoriaService) Obtener(_ context.Context, id uint) (dto.CategoriaResponse, error) {
	for _, c := range s.categorias {
		if c.ID == id {
			return c, nil
		}
	}
	return dto.CategoriaResponse{}, apierror.NotFound("Categoria no encontrada")
}

func (s *stubCategoriaService) Actualizar(_ context.Context, id uint, _ dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	return s.Obtener(context.Background(), id)
}

func (s *stubCategoriaService) Eliminar(_ context.Context, _ uint) error { return nil }

func categoriasTestServer(svc *stubCategoriaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoriasHandler(svc)
	r := gin.New()
	r.POST("/api/v1/categorias", h.Crear)
	r.GET("/api/v1/categorias", h.Listar)
	r.GET("/api/v1/categorias/:id", h.Obtener)
	return r
}

func TestCategoriasListarEnvelope(t *testing.T) {
	svc := &stubCategoriaService{categorias: []dto.CategoriaResponse{
		{ID: 1, Nombre: "Abarrotes", Estado: true},
		{ID: 2, Nombre: "Bebidas", Estado: true},
	}}
	r := categoriasTestServer(svc)

	w := doJSON(r, http.MethodGet, "/api/v1/categorias", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	primera := data[0].(map[string]interface{})
	assert.Equal(t, "Abarrotes", primera["nombre"])
}

func TestCategoriasCrearSinNombre(t *testing.T) {
	r := categoriasTestServer(&stubCategoriaService{})

	w := doJSON(r, http.MethodPost, "/api/v1/categorias", `{"descripcion":"sin nombre"}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "nombre")
}

func TestCategoriasCrearDuplicada(t *testing.T) {
	r := categoriasTestServer(&stubCategoriaService{conflicto: true})

	w := doJSON(r, http.MethodPost, "/api/v1/categorias", `{"nombre":"Bebidas"}`, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Ya existe una categoria con ese nombre", decodeBody(t, w)["message"])
}

func TestCategoriasObtenerInexistente(t *testing.T) {
	r := categoriasTestServer(&stubCategoriaService{})

	w := doJSON(r, http.MethodGet, "/api/v1/categorias/42", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriasSinTokenNoAutorizado(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCategoriasHandler(&stubCategoriaService{})
	r := gin.New()
	r.GET("/api/v1/categorias", middleware.JWTAuth("test-secret", newMemRevoker()), h.Listar)

	w := doJSON(r, http.MethodGet, "/api/v1/categorias", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}

func TestCategoriasIDInvalido(t *testing.T) {
	r := categoriasTestServer(&stubCategoriaService{})

	w := doJSON(r, http.MethodGet, "/api/v1/categorias/abc", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID invalido", decodeBody(t, w)["message"])
}
