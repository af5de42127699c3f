package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const formatoFecha = "2006-01-02"

var cien = decimal.NewFromInt(100)

// AlertaStockDispatcher queues low-stock notifications for async delivery.
// Enqueue failures never abort the business operation that detected them.
type AlertaStockDispatcher interface {
	EncolarAlertaStock(ctx context.Context, p model.Producto) error
}

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Obtener(ctx context.Context, id uint) (dto.VentaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarVentaRequest) (dto.VentaResponse, error)
	Anular(ctx context.Context, id uint) (dto.VentaResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	alertas      AlertaStockDispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	alertas AlertaStockDispatcher,
) VentaService {
	return &ventaService{repo: repo, clienteRepo: clienteRepo, productoRepo: productoRepo, alertas: alertas}
}

// lineaCalculada carries one computed detalle plus the producto it consumed,
// so post-commit stock alerts can look at the projected stock level.
type lineaCalculada struct {
	detalle  model.DetalleVenta
	producto model.Producto
}

// calcularLinea prices one line: subtotal = precio * cantidad, descuento from
// the line percentage, total = subtotal - descuento. All rounded to 2 places.
func calcularLinea(precio decimal.Decimal, cantidad int, pctDesc decimal.Decimal) (subtotal, descuento, total decimal.Decimal) {
	subtotal = precio.Mul(decimal.NewFromInt(int64(cantidad))).Round(2)
	descuento = subtotal.Mul(pctDesc).Div(cien).Round(2)
	total = subtotal.Sub(descuento)
	return
}

// calcularTotales derives the document totals. The header discount percentage
// applies over what remains after line discounts; tax applies over the
// discounted base.
func calcularTotales(subtotal, descLineas, pctDesc, pctImp decimal.Decimal) (descuento, impuesto, total decimal.Decimal) {
	base := subtotal.Sub(descLineas)
	descuento = descLineas.Add(base.Mul(pctDesc).Div(cien).Round(2))
	base = subtotal.Sub(descuento)
	impuesto = base.Mul(pctImp).Div(cien).Round(2)
	total = base.Add(impuesto)
	return
}

func parseFecha(s string) (time.Time, error) {
	return time.Parse(formatoFecha, s)
}

func parseFechaOpcional(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(formatoFecha, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (dto.VentaResponse, error) {
	cliente, err := s.clienteRepo.ObtenerPorID(ctx, req.ClienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VentaResponse{}, apierror.Validation(map[string]string{"cliente_id": "el cliente no existe"})
		}
		return dto.VentaResponse{}, err
	}
	if !cliente.Estado {
		return dto.VentaResponse{}, apierror.Validation(map[string]string{"cliente_id": "el cliente esta inactivo"})
	}

	fechaVenta, err := parseFecha(req.FechaVenta)
	if err != nil {
		return dto.VentaResponse{}, apierror.Validation(map[string]string{"fecha_venta": "fecha invalida"})
	}
	fechaVenc, err := parseFechaOpcional(req.FechaVencimiento)
	if err != nil {
		return dto.VentaResponse{}, apierror.Validation(map[string]string{"fecha_vencimiento": "fecha invalida"})
	}

	lineas, subtotal, descLineas, err := s.construirLineas(ctx, req.Detalles)
	if err != nil {
		return dto.VentaResponse{}, err
	}

	pctDesc := decimalOCero(req.PorcentajeDescuento)
	pctImp := decimalOCero(req.PorcentajeImpuesto)
	descuento, impuesto, total := calcularTotales(subtotal, descLineas, pctDesc, pctImp)

	estado := model.EstadoPendiente
	if req.TipoVenta == "contado" {
		estado = model.EstadoCompletada
	}

	v := &model.Venta{
		ClienteID:           req.ClienteID,
		TipoVenta:           req.TipoVenta,
		TipoComprobante:     req.TipoComprobante,
		NumeroComprobante:   req.NumeroComprobante,
		FechaVenta:          fechaVenta,
		FechaVencimiento:    fechaVenc,
		Subtotal:            subtotal,
		PorcentajeImpuesto:  pctImp,
		Impuesto:            impuesto,
		PorcentajeDescuento: pctDesc,
		Descuento:           descuento,
		Total:               total,
		Estado:              estado,
		Observaciones:       req.Observaciones,
	}
	for _, l := range lineas {
		v.Detalles = append(v.Detalles, l.detalle)
	}

	if err := s.crearConReintento(ctx, v, lineas); err != nil {
		return dto.VentaResponse{}, err
	}

	s.despacharAlertas(ctx, lineas)

	creada, err := s.repo.ObtenerPorID(ctx, v.ID)
	if err != nil {
		return dto.VentaResponse{}, err
	}
	return resource.Venta(*creada), nil
}

// construirLineas prices every requested line and verifies stock up front.
// The definitive stock check happens inside the transaction via the atomic
// decrement, this pass just produces friendlier errors.
func (s *ventaService) construirLineas(ctx context.Context, detalles []dto.DetalleRequest) ([]lineaCalculada, decimal.Decimal, decimal.Decimal, error) {
	lineas := make([]lineaCalculada, 0, len(detalles))
	subtotal := decimal.Zero
	descLineas := decimal.Zero

	for i, d := range detalles {
		p, err := s.productoRepo.ObtenerPorID(ctx, d.ProductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				campo := fmt.Sprintf("detalles.%d.producto_id", i)
				return nil, decimal.Zero, decimal.Zero, apierror.Validation(map[string]string{campo: "el producto no existe"})
			}
			return nil, decimal.Zero, decimal.Zero, err
		}
		if p.Stock < d.Cantidad {
			campo := fmt.Sprintf("detalles.%d.cantidad", i)
			return nil, decimal.Zero, decimal.Zero, apierror.Validation(map[string]string{
				campo: fmt.Sprintf("stock insuficiente para %s (disponible: %d)", p.Nombre, p.Stock),
			})
		}

		pctDesc := decimalOCero(d.PorcentajeDescuento)
		sub, desc, tot := calcularLinea(p.PrecioVenta, d.Cantidad, pctDesc)
		subtotal = subtotal.Add(sub)
		descLineas = descLineas.Add(desc)

		lineas = append(lineas, lineaCalculada{
			detalle: model.DetalleVenta{
				ProductoID:          p.ID,
				Cantidad:            d.Cantidad,
				PrecioUnitario:      p.PrecioVenta,
				PorcentajeDescuento: pctDesc,
				Descuento:           desc,
				Subtotal:            sub,
				Total:               tot,
			},
			producto: *p,
		})
	}
	return lineas, subtotal, descLineas, nil
}

// crearConReintento runs the whole creation transaction, retrying when the
// generated código collides with a concurrent insert.
func (s *ventaService) crearConReintento(ctx context.Context, v *model.Venta, lineas []lineaCalculada) error {
	var err error
	for intento := 0; intento < maxIntentosCodigo; intento++ {
		v.Codigo, err = s.siguienteCodigo(ctx)
		if err != nil {
			return err
		}
		err = s.repo.EnTx(ctx, func(tx *gorm.DB) error {
			if err := s.repo.CrearTx(tx, v); err != nil {
				return err
			}
			for _, l := range lineas {
				if err := s.productoRepo.AjustarStockTx(tx, l.producto.ID, -l.detalle.Cantidad); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		v.ID = 0
		for i := range v.Detalles {
			v.Detalles[i].ID = 0
			v.Detalles[i].VentaID = 0
		}
	}
	return apierror.Conflict("No se pudo generar un codigo unico, reintente")
}

func (s *ventaService) siguienteCodigo(ctx context.Context) (string, error) {
	ultima, err := s.repo.UltimaCreada(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SiguienteCodigo(model.PrefijoVenta, ""), nil
		}
		return "", err
	}
	return model.SiguienteCodigo(model.PrefijoVenta, ultima.Codigo), nil
}

// despacharAlertas enqueues a notification for every line whose projected
// stock fell to or below the product's minimum. Runs after commit; a failed
// enqueue only logs.
func (s *ventaService) despacharAlertas(ctx context.Context, lineas []lineaCalculada) {
	if s.alertas == nil {
		return
	}
	for _, l := range lineas {
		p := l.producto
		p.Stock -= l.detalle.Cantidad
		if !p.TieneStockBajo() {
			continue
		}
		if err := s.alertas.EncolarAlertaStock(ctx, p); err != nil {
			log.Warn().Err(err).Str("producto", p.Codigo).Msg("no se pudo encolar alerta de stock")
		}
	}
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	ventas, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, resource.Venta(v))
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *ventaService) Obtener(ctx context.Context, id uint) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.VentaResponse{}, apierror.FromDB(err, "Venta no encontrada", "")
	}
	return resource.Venta(*v), nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarVentaRequest) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.VentaResponse{}, apierror.FromDB(err, "Venta no encontrada", "")
	}
	if !v.PuedeEditarse() {
		return dto.VentaResponse{}, apierror.Conflict("La venta ya no puede editarse")
	}

	if req.TipoComprobante != nil {
		v.TipoComprobante = *req.TipoComprobante
	}
	if req.NumeroComprobante != nil {
		v.NumeroComprobante = *req.NumeroComprobante
	}
	if req.FechaVencimiento != nil {
		fv, err := parseFechaOpcional(req.FechaVencimiento)
		if err != nil {
			return dto.VentaResponse{}, apierror.Validation(map[string]string{"fecha_vencimiento": "fecha invalida"})
		}
		v.FechaVencimiento = fv
	}
	if req.Observaciones != nil {
		v.Observaciones = req.Observaciones
	}
	if req.Estado != nil {
		v.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, v); err != nil {
		return dto.VentaResponse{}, err
	}
	return resource.Venta(*v), nil
}

// Anular cancels the document and returns every line's quantity to stock,
// atomically. Idempotence is rejected: a second anulación is a 409.
func (s *ventaService) Anular(ctx context.Context, id uint) (dto.VentaResponse, error) {
	v, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.VentaResponse{}, apierror.FromDB(err, "Venta no encontrada", "")
	}
	if v.Estado == model.EstadoAnulada {
		return dto.VentaResponse{}, apierror.Conflict("La venta ya esta anulada")
	}

	err = s.repo.EnTx(ctx, func(tx *gorm.DB) error {
		for _, d := range v.Detalles {
			if err := s.productoRepo.AjustarStockTx(tx, d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}
		v.Estado = model.EstadoAnulada
		return s.repo.ActualizarTx(tx, v)
	})
	if err != nil {
		return dto.VentaResponse{}, err
	}
	return resource.Venta(*v), nil
}
