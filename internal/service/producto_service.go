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

// maxIntentosCodigo bounds the retry loop when two concurrent creations derive
// the same código and the unique constraint rejects the second insert.
const maxIntentosCodigo = 3

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Obtener(ctx context.Context, id uint) (dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (dto.ProductoResponse, error) {
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductoResponse{}, apierror.Validation(map[string]string{"categoria_id": "la categoria no existe"})
		}
		return dto.ProductoResponse{}, err
	}

	unidad := req.UnidadMedida
	if unidad == "" {
		unidad = "unidad"
	}

	p := &model.Producto{
		Nombre:       req.Nombre,
		Descripcion:  req.Descripcion,
		CategoriaID:  req.CategoriaID,
		PrecioCompra: req.PrecioCompra,
		PrecioVenta:  req.PrecioVenta,
		Stock:        req.Stock,
		StockMinimo:  req.StockMinimo,
		UnidadMedida: unidad,
		Imagen:       req.Imagen,
		Estado:       true,
	}

	if req.Codigo != nil {
		p.Codigo = *req.Codigo
		if err := s.repo.Crear(ctx, p); err != nil {
			return dto.ProductoResponse{}, apierror.FromDB(err, "", "Ya existe un producto con ese codigo")
		}
		return resource.Producto(*p), nil
	}

	// Auto-generated código: derive from the latest record and retry on the
	// unique-constraint conflict that the read-then-increment race can cause.
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		p.Codigo, err = s.siguienteCodigo(ctx)
		if err != nil {
			return dto.ProductoResponse{}, err
		}
		err = s.repo.Crear(ctx, p)
		if err == nil {
			return resource.Producto(*p), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProductoResponse{}, err
		}
		p.ID = 0 // gorm may have assigned one before the constraint fired
	}
	return dto.ProductoResponse{}, apierror.Conflict("No se pudo generar un codigo unico, reintente")
}

func (s *productoService) siguienteCodigo(ctx context.Context) (string, error) {
	ultimo, err := s.repo.UltimoCreado(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SiguienteCodigo(model.PrefijoProducto, ""), nil
		}
		return "", err
	}
	return model.SiguienteCodigo(model.PrefijoProducto, ultimo.Codigo), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, resource.Producto(p))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productoService) Obtener(ctx context.Context, id uint) (dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ProductoResponse{}, apierror.FromDB(err, "Producto no encontrado", "")
	}
	return resource.Producto(*p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ProductoResponse{}, apierror.FromDB(err, "Producto no encontrado", "")
	}

	if req.CategoriaID != nil {
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, *req.CategoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.ProductoResponse{}, apierror.Validation(map[string]string{"categoria_id": "la categoria no existe"})
			}
			return dto.ProductoResponse{}, err
		}
		p.CategoriaID = *req.CategoriaID
		p.Categoria = nil // stale relation — caller refetches if needed
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.PrecioCompra != nil {
		p.PrecioCompra = *req.PrecioCompra
	}
	if req.PrecioVenta != nil {
		p.PrecioVenta = *req.PrecioVenta
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.StockMinimo != nil {
		p.StockMinimo = *req.StockMinimo
	}
	if req.UnidadMedida != nil {
		p.UnidadMedida = *req.UnidadMedida
	}
	if req.Imagen != nil {
		p.Imagen = req.Imagen
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}
	return resource.Producto(*p), nil
}

// Eliminar removes the producto permanently.
func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.FromDB(err, "Producto no encontrado", "")
	}
	return s.repo.Eliminar(ctx, id)
}
