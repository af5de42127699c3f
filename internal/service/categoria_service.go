package service

import (
	"context"
	"errors"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"gorm.io/gorm"
)

// CategoriaService defines business operations for product categories.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error)
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id uint) (dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (dto.CategoriaResponse, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CategoriaResponse{}, err
	}
	if existing != nil {
		return dto.CategoriaResponse{}, apierror.Conflict("Ya existe una categoria con ese nombre")
	}

	c := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      true,
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, apierror.FromDB(err, "", "Ya existe una categoria con ese nombre")
	}
	return resource.Categoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	return resource.Categorias(list), nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uint) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, apierror.FromDB(err, "Categoria no encontrada", "")
	}
	return resource.Categoria(*c), nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (dto.CategoriaResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CategoriaResponse{}, apierror.FromDB(err, "Categoria no encontrada", "")
	}

	if req.Nombre != nil && *req.Nombre != c.Nombre {
		existing, err := s.repo.ObtenerPorNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CategoriaResponse{}, err
		}
		if existing != nil && existing.ID != id {
			return dto.CategoriaResponse{}, apierror.Conflict("Ya existe una categoria con ese nombre")
		}
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}
	return resource.Categoria(*c), nil
}

// Eliminar removes the categoria permanently — its lifecycle has no
// recoverable state, unlike clientes y proveedores.
func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.FromDB(err, "Categoria no encontrada", "")
	}
	return s.repo.Eliminar(ctx, id)
}
