package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (dto.CompraResponse, error)
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
	Obtener(ctx context.Context, id uint) (dto.CompraResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCompraRequest) (dto.CompraResponse, error)
	Anular(ctx context.Context, id uint) (dto.CompraResponse, error)
}

type compraService struct {
	repo          repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
) CompraService {
	return &compraService{repo: repo, proveedorRepo: proveedorRepo, productoRepo: productoRepo}
}

func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (dto.CompraResponse, error) {
	proveedor, err := s.proveedorRepo.ObtenerPorID(ctx, req.ProveedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CompraResponse{}, apierror.Validation(map[string]string{"proveedor_id": "el proveedor no existe"})
		}
		return dto.CompraResponse{}, err
	}
	if !proveedor.Estado {
		return dto.CompraResponse{}, apierror.Validation(map[string]string{"proveedor_id": "el proveedor esta inactivo"})
	}

	fechaCompra, err := parseFecha(req.FechaCompra)
	if err != nil {
		return dto.CompraResponse{}, apierror.Validation(map[string]string{"fecha_compra": "fecha invalida"})
	}
	fechaVenc, err := parseFechaOpcional(req.FechaVencimiento)
	if err != nil {
		return dto.CompraResponse{}, apierror.Validation(map[string]string{"fecha_vencimiento": "fecha invalida"})
	}

	detalles := make([]model.DetalleCompra, 0, len(req.Detalles))
	subtotal := decimal.Zero
	descLineas := decimal.Zero
	for i, d := range req.Detalles {
		p, err := s.productoRepo.ObtenerPorID(ctx, d.ProductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				campo := fmt.Sprintf("detalles.%d.producto_id", i)
				return dto.CompraResponse{}, apierror.Validation(map[string]string{campo: "el producto no existe"})
			}
			return dto.CompraResponse{}, err
		}

		pctDesc := decimalOCero(d.PorcentajeDescuento)
		sub, desc, tot := calcularLinea(p.PrecioCompra, d.Cantidad, pctDesc)
		subtotal = subtotal.Add(sub)
		descLineas = descLineas.Add(desc)

		detalles = append(detalles, model.DetalleCompra{
			ProductoID:          p.ID,
			Cantidad:            d.Cantidad,
			PrecioUnitario:      p.PrecioCompra,
			PorcentajeDescuento: pctDesc,
			Descuento:           desc,
			Subtotal:            sub,
			Total:               tot,
		})
	}

	pctDesc := decimalOCero(req.PorcentajeDescuento)
	pctImp := decimalOCero(req.PorcentajeImpuesto)
	descuento, impuesto, total := calcularTotales(subtotal, descLineas, pctDesc, pctImp)

	esCredito := req.TipoCompra == "credito"
	if esCredito && proveedor.LimiteCredito.IsPositive() {
		if total.GreaterThan(proveedor.CreditoDisponible()) {
			return dto.CompraResponse{}, apierror.Validation(map[string]string{
				"tipo_compra": "la compra excede el credito disponible del proveedor",
			})
		}
	}

	estado := model.EstadoPendiente
	if !esCredito {
		estado = model.EstadoCompletada
	}

	c := &model.Compra{
		ProveedorID:         req.ProveedorID,
		TipoCompra:          req.TipoCompra,
		TipoComprobante:     req.TipoComprobante,
		NumeroComprobante:   req.NumeroComprobante,
		FechaCompra:         fechaCompra,
		FechaVencimiento:    fechaVenc,
		Subtotal:            subtotal,
		PorcentajeImpuesto:  pctImp,
		Impuesto:            impuesto,
		PorcentajeDescuento: pctDesc,
		Descuento:           descuento,
		Total:               total,
		Estado:              estado,
		Observaciones:       req.Observaciones,
		Detalles:            detalles,
	}

	if err := s.crearConReintento(ctx, c, proveedor, esCredito); err != nil {
		return dto.CompraResponse{}, err
	}

	creada, err := s.repo.ObtenerPorID(ctx, c.ID)
	if err != nil {
		return dto.CompraResponse{}, err
	}
	return resource.Compra(*creada), nil
}

// crearConReintento persists the document, raises stock, and refreshes the
// supplier aggregates in one transaction, retrying on código collision.
func (s *compraService) crearConReintento(ctx context.Context, c *model.Compra, proveedor *model.Proveedor, esCredito bool) error {
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		c.Codigo, err = s.siguienteCodigo(ctx)
		if err != nil {
			return err
		}
		err = s.repo.EnTx(ctx, func(tx *gorm.DB) error {
			if err := s.repo.CrearTx(tx, c); err != nil {
				return err
			}
			for _, d := range c.Detalles {
				if err := s.productoRepo.AjustarStockTx(tx, d.ProductoID, d.Cantidad); err != nil {
					return err
				}
			}
			proveedor.UltimaCompra = &c.FechaCompra
			proveedor.TotalCompras = proveedor.TotalCompras.Add(c.Total)
			if esCredito {
				proveedor.CreditoUsado = proveedor.CreditoUsado.Add(c.Total)
			}
			return s.proveedorRepo.ActualizarTx(tx, proveedor)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		c.ID = 0
		for i := range c.Detalles {
			c.Detalles[i].ID = 0
			c.Detalles[i].CompraID = 0
		}
	}
	return apierror.Conflict("No se pudo generar un codigo unico, reintente")
}

func (s *compraService) siguienteCodigo(ctx context.Context) (string, error) {
	ultima, err := s.repo.UltimaCreada(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SiguienteCodigo(model.PrefijoCompra, ""), nil
		}
		return "", err
	}
	return model.SiguienteCodigo(model.PrefijoCompra, ultima.Codigo), nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	compras, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompraResponse, 0, len(compras))
	for _, c := range compras {
		data = append(data, resource.Compra(c))
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *compraService) Obtener(ctx context.Context, id uint) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CompraResponse{}, apierror.FromDB(err, "Compra no encontrada", "")
	}
	return resource.Compra(*c), nil
}

func (s *compraService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCompraRequest) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CompraResponse{}, apierror.FromDB(err, "Compra no encontrada", "")
	}
	if !c.PuedeEditarse() {
		return dto.CompraResponse{}, apierror.Conflict("La compra ya no puede editarse")
	}

	if req.TipoComprobante != nil {
		c.TipoComprobante = *req.TipoComprobante
	}
	if req.NumeroComprobante != nil {
		c.NumeroComprobante = *req.NumeroComprobante
	}
	if req.FechaVencimiento != nil {
		fv, err := parseFechaOpcional(req.FechaVencimiento)
		if err != nil {
			return dto.CompraResponse{}, apierror.Validation(map[string]string{"fecha_vencimiento": "fecha invalida"})
		}
		c.FechaVencimiento = fv
	}
	if req.Observaciones != nil {
		c.Observaciones = req.Observaciones
	}
	if req.Estado != nil {
		// pagar una compra a credito libera el credito usado del proveedor
		if *req.Estado == model.EstadoPagada && c.Estado != model.EstadoPagada && c.TipoCompra == "credito" {
			if err := s.liberarCredito(ctx, c); err != nil {
				return dto.CompraResponse{}, err
			}
		}
		c.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.CompraResponse{}, err
	}
	return resource.Compra(*c), nil
}

func (s *compraService) liberarCredito(ctx context.Context, c *model.Compra) error {
	p, err := s.proveedorRepo.ObtenerPorID(ctx, c.ProveedorID)
	if err != nil {
		return err
	}
	p.CreditoUsado = p.CreditoUsado.Sub(c.Total)
	if p.CreditoUsado.IsNegative() {
		p.CreditoUsado = decimal.Zero
	}
	return s.proveedorRepo.Actualizar(ctx, p)
}

// Anular reverts the stock increase and the supplier aggregates.
func (s *compraService) Anular(ctx context.Context, id uint) (dto.CompraResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.CompraResponse{}, apierror.FromDB(err, "Compra no encontrada", "")
	}
	if c.Estado == model.EstadoAnulada {
		return dto.CompraResponse{}, apierror.Conflict("La compra ya esta anulada")
	}

	proveedor, err := s.proveedorRepo.ObtenerPorID(ctx, c.ProveedorID)
	if err != nil {
		return dto.CompraResponse{}, err
	}

	err = s.repo.EnTx(ctx, func(tx *gorm.DB) error {
		for _, d := range c.Detalles {
			if err := s.productoRepo.AjustarStockTx(tx, d.ProductoID, -d.Cantidad); err != nil {
				return err
			}
		}
		proveedor.TotalCompras = proveedor.TotalCompras.Sub(c.Total)
		if proveedor.TotalCompras.IsNegative() {
			proveedor.TotalCompras = decimal.Zero
		}
		if c.TipoCompra == "credito" && c.Estado != model.EstadoPagada {
			proveedor.CreditoUsado = proveedor.CreditoUsado.Sub(c.Total)
			if proveedor.CreditoUsado.IsNegative() {
				proveedor.CreditoUsado = decimal.Zero
			}
		}
		if err := s.proveedorRepo.ActualizarTx(tx, proveedor); err != nil {
			return err
		}
		c.Estado = model.EstadoAnulada
		return s.repo.ActualizarTx(tx, c)
	})
	if err != nil {
		return dto.CompraResponse{}, err
	}
	return resource.Compra(*c), nil
}
