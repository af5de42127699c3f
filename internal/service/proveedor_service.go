package service

import (
	"context"
	"errors"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error)
	Listar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error)
	Obtener(ctx context.Context, id uint) (dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Restaurar(ctx context.Context, id uint) (dto.ProveedorResponse, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func decimalOCero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (dto.ProveedorResponse, error) {
	if err := validarPersona(req.Persona); err != nil {
		return dto.ProveedorResponse{}, err
	}

	calificacion := 3
	if req.Calificacion != nil {
		calificacion = *req.Calificacion
	}
	hoy := time.Now()

	p := &model.Proveedor{
		Persona:          personaDesdeRequest(req.Persona),
		TipoProveedor:    req.TipoProveedor,
		Rubro:            req.Rubro,
		LimiteCredito:    decimalOCero(req.LimiteCredito),
		DiasCredito:      req.DiasCredito,
		DescuentoGeneral: decimalOCero(req.DescuentoGeneral),
		CuentaBancaria:   req.CuentaBancaria,
		Banco:            req.Banco,
		NombreContacto:   req.NombreContacto,
		CargoContacto:    req.CargoContacto,
		TelefonoContacto: req.TelefonoContacto,
		EmailContacto:    req.EmailContacto,
		Observaciones:    req.Observaciones,
		FechaRegistro:    &hoy,
		Calificacion:     calificacion,
		Estado:           true,
	}

	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		p.Codigo, err = s.siguienteCodigo(ctx)
		if err != nil {
			return dto.ProveedorResponse{}, err
		}
		err = s.repo.Crear(ctx, p)
		if err == nil {
			return resource.Proveedor(*p), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProveedorResponse{}, apierror.FromDB(err, "", "Ya existe un proveedor con esos datos")
		}
		p.ID = 0
	}
	return dto.ProveedorResponse{}, apierror.Conflict("No se pudo generar un codigo unico, reintente")
}

func (s *proveedorService) siguienteCodigo(ctx context.Context) (string, error) {
	ultimo, err := s.repo.UltimoCreado(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SiguienteCodigo(model.PrefijoProveedor, ""), nil
		}
		return "", err
	}
	return model.SiguienteCodigo(model.PrefijoProveedor, ultimo.Codigo), nil
}

func (s *proveedorService) Listar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error) {
	proveedores, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		data = append(data, resource.Proveedor(p))
	}
	return &dto.ProveedorListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uint) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ProveedorResponse{}, apierror.FromDB(err, "Proveedor no encontrado", "")
	}
	return resource.Proveedor(*p), nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) (dto.ProveedorResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ProveedorResponse{}, apierror.FromDB(err, "Proveedor no encontrado", "")
	}

	if req.Persona != nil && p.Persona != nil {
		aplicarPersona(p.Persona, *req.Persona)
	}
	if req.TipoProveedor != nil {
		p.TipoProveedor = *req.TipoProveedor
	}
	if req.Rubro != nil {
		p.Rubro = req.Rubro
	}
	if req.LimiteCredito != nil {
		p.LimiteCredito = *req.LimiteCredito
	}
	if req.DiasCredito != nil {
		p.DiasCredito = *req.DiasCredito
	}
	if req.DescuentoGeneral != nil {
		p.DescuentoGeneral = *req.DescuentoGeneral
	}
	if req.CuentaBancaria != nil {
		p.CuentaBancaria = req.CuentaBancaria
	}
	if req.Banco != nil {
		p.Banco = req.Banco
	}
	if req.NombreContacto != nil {
		p.NombreContacto = req.NombreContacto
	}
	if req.CargoContacto != nil {
		p.CargoContacto = req.CargoContacto
	}
	if req.TelefonoContacto != nil {
		p.TelefonoContacto = req.TelefonoContacto
	}
	if req.EmailContacto != nil {
		p.EmailContacto = req.EmailContacto
	}
	if req.Observaciones != nil {
		p.Observaciones = req.Observaciones
	}
	if req.Calificacion != nil {
		p.Calificacion = *req.Calificacion
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProveedorResponse{}, err
	}
	return resource.Proveedor(*p), nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.FromDB(err, "Proveedor no encontrado", "")
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *proveedorService) Restaurar(ctx context.Context, id uint) (dto.ProveedorResponse, error) {
	if err := s.repo.Restaurar(ctx, id); err != nil {
		return dto.ProveedorResponse{}, err
	}
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ProveedorResponse{}, apierror.FromDB(err, "Proveedor no encontrado", "")
	}
	return resource.Proveedor(*p), nil
}
