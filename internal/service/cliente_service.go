package service

import (
	"context"
	"errors"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Obtener(ctx context.Context, id uint) (dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Restaurar(ctx context.Context, id uint) (dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

// validarPersona enforces the cross-field rule that validator tags cannot
// express: an identity needs a personal name or a razón social.
func validarPersona(p dto.PersonaRequest) error {
	if p.Nombres == nil && p.RazonSocial == nil {
		return apierror.Validation(map[string]string{
			"persona": "se requiere nombres o razon_social",
		})
	}
	return nil
}

func personaDesdeRequest(req dto.PersonaRequest) *model.Persona {
	return &model.Persona{
		Nombres:         req.Nombres,
		Apellidos:       req.Apellidos,
		RazonSocial:     req.RazonSocial,
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Direccion:       req.Direccion,
	}
}

func aplicarPersona(p *model.Persona, req dto.PersonaRequest) {
	if req.Nombres != nil {
		p.Nombres = req.Nombres
	}
	if req.Apellidos != nil {
		p.Apellidos = req.Apellidos
	}
	if req.RazonSocial != nil {
		p.RazonSocial = req.RazonSocial
	}
	if req.TipoDocumento != "" {
		p.TipoDocumento = req.TipoDocumento
	}
	if req.NumeroDocumento != "" {
		p.NumeroDocumento = req.NumeroDocumento
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	if err := validarPersona(req.Persona); err != nil {
		return dto.ClienteResponse{}, err
	}

	credito := decimal.Zero
	if req.CreditoDisponible != nil {
		credito = *req.CreditoDisponible
	}

	c := &model.Cliente{
		Persona:           personaDesdeRequest(req.Persona),
		DiasCredito:       req.DiasCredito,
		CreditoDisponible: credito,
		Estado:            true,
	}

	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		c.Codigo, err = siguienteCodigoCliente(ctx, s.repo)
		if err != nil {
			return dto.ClienteResponse{}, err
		}
		err = s.repo.Crear(ctx, c)
		if err == nil {
			return resource.Cliente(*c), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ClienteResponse{}, apierror.FromDB(err, "", "Ya existe un cliente con esos datos")
		}
		c.ID = 0
	}
	return dto.ClienteResponse{}, apierror.Conflict("No se pudo generar un codigo unico, reintente")
}

func siguienteCodigoCliente(ctx context.Context, repo repository.ClienteRepository) (string, error) {
	ultimo, err := repo.UltimoCreado(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SiguienteCodigo(model.PrefijoCliente, ""), nil
		}
		return "", err
	}
	return model.SiguienteCodigo(model.PrefijoCliente, ultimo.Codigo), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	clientes, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		data = append(data, resource.Cliente(c))
	}
	return &dto.ClienteListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uint) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, apierror.FromDB(err, "Cliente no encontrado", "")
	}
	return resource.Cliente(*c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, apierror.FromDB(err, "Cliente no encontrado", "")
	}

	if req.Persona != nil && c.Persona != nil {
		aplicarPersona(c.Persona, *req.Persona)
	}
	if req.DiasCredito != nil {
		c.DiasCredito = *req.DiasCredito
	}
	if req.CreditoDisponible != nil {
		c.CreditoDisponible = *req.CreditoDisponible
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.ClienteResponse{}, err
	}
	return resource.Cliente(*c), nil
}

// Eliminar is a logical delete: the cliente disappears from default queries
// but stays recoverable via Restaurar.
func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.FromDB(err, "Cliente no encontrado", "")
	}
	return s.repo.Eliminar(ctx, id)
}

func (s *clienteService) Restaurar(ctx context.Context, id uint) (dto.ClienteResponse, error) {
	if err := s.repo.Restaurar(ctx, id); err != nil {
		return dto.ClienteResponse{}, err
	}
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, apierror.FromDB(err, "Cliente no encontrado", "")
	}
	return resource.Cliente(*c), nil
}
