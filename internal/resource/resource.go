// Package resource maps loaded models to their versioned JSON shapes.
// Transformers are pure: a relation appears in the output only when it was
// eagerly loaded by the caller's query (non-nil pointer / non-nil slice) —
// they never trigger a fetch of their own.
package resource

import (
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"
)

const fechaWire = "2006-01-02" // date-only wire format

func fecha(t time.Time) string { return t.Format(fechaWire) }

func fechaOpcional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(fechaWire)
	return &s
}

func Categoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Estado:      c.Estado,
	}
}

func Categorias(list []model.Categoria) []dto.CategoriaResponse {
	out := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, Categoria(c))
	}
	return out
}

func Producto(p model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:             p.ID,
		Codigo:         p.Codigo,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		CategoriaID:    p.CategoriaID,
		PrecioCompra:   p.PrecioCompra,
		PrecioVenta:    p.PrecioVenta,
		MargenUtilidad: p.MargenUtilidad(),
		Stock:          p.Stock,
		StockMinimo:    p.StockMinimo,
		TieneStockBajo: p.TieneStockBajo(),
		UnidadMedida:   p.UnidadMedida,
		Imagen:         p.Imagen,
		ImagenURL:      imagenURL(p.Imagen),
		Estado:         p.Estado,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.Categoria != nil {
		cat := Categoria(*p.Categoria)
		resp.Categoria = &cat
	}
	return resp
}

func imagenURL(imagen *string) *string {
	if imagen == nil {
		return nil
	}
	url := "/storage/" + *imagen
	return &url
}

func Cliente(c model.Cliente) dto.ClienteResponse {
	resp := dto.ClienteResponse{
		ID:                c.ID,
		Codigo:            c.Codigo,
		DiasCredito:       c.DiasCredito,
		CreditoDisponible: c.CreditoDisponible,
		Estado:            c.Estado,
	}
	if c.Persona != nil {
		resp.Nombre = c.Persona.NombreParaMostrar()
		resp.Telefono = c.Persona.Telefono
		resp.Email = c.Persona.Email
	}
	return resp
}

func Proveedor(p model.Proveedor) dto.ProveedorResponse {
	resp := dto.ProveedorResponse{
		ID:                p.ID,
		Codigo:            p.Codigo,
		TipoProveedor:     p.TipoProveedor,
		Rubro:             p.Rubro,
		DiasCredito:       p.DiasCredito,
		CreditoDisponible: p.CreditoDisponible(),
		TotalCompras:      p.TotalCompras,
		UltimaCompra:      fechaOpcional(p.UltimaCompra),
		Calificacion:      p.Calificacion,
		Estado:            p.Estado,
	}
	if p.Persona != nil {
		resp.Nombre = p.Persona.NombreParaMostrar()
		resp.Telefono = p.Persona.Telefono
		resp.Email = p.Persona.Email
	}
	return resp
}

func DetalleVenta(d model.DetalleVenta) dto.DetalleVentaResponse {
	resp := dto.DetalleVentaResponse{
		ID:                  d.ID,
		ProductoID:          d.ProductoID,
		Cantidad:            d.Cantidad,
		PrecioUnitario:      d.PrecioUnitario,
		PorcentajeDescuento: d.PorcentajeDescuento,
		Descuento:           d.Descuento,
		Subtotal:            d.Subtotal,
		Total:               d.Total,
	}
	if d.Producto != nil {
		resp.ProductoNombre = &d.Producto.Nombre
	}
	return resp
}

func Venta(v model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:                  v.ID,
		Codigo:              v.Codigo,
		TipoVenta:           v.TipoVenta,
		TipoComprobante:     v.TipoComprobante,
		NumeroComprobante:   v.NumeroComprobante,
		FechaVenta:          fecha(v.FechaVenta),
		FechaVencimiento:    fechaOpcional(v.FechaVencimiento),
		Subtotal:            v.Subtotal,
		PorcentajeImpuesto:  v.PorcentajeImpuesto,
		Impuesto:            v.Impuesto,
		PorcentajeDescuento: v.PorcentajeDescuento,
		Descuento:           v.Descuento,
		Total:               v.Total,
		Estado:              v.Estado,
		Observaciones:       v.Observaciones,
		CanEdit:             v.PuedeEditarse(),
		CreatedAt:           v.CreatedAt.Format(time.RFC3339),
	}
	if v.Cliente != nil {
		cli := Cliente(*v.Cliente)
		resp.Cliente = &cli
	}
	if v.Detalles != nil {
		resp.Detalles = make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
		for _, d := range v.Detalles {
			resp.Detalles = append(resp.Detalles, DetalleVenta(d))
		}
	}
	return resp
}

func DetalleCompra(d model.DetalleCompra) dto.DetalleCompraResponse {
	resp := dto.DetalleCompraResponse{
		ID:                  d.ID,
		ProductoID:          d.ProductoID,
		Cantidad:            d.Cantidad,
		PrecioUnitario:      d.PrecioUnitario,
		PorcentajeDescuento: d.PorcentajeDescuento,
		Descuento:           d.Descuento,
		Subtotal:            d.Subtotal,
		Total:               d.Total,
	}
	if d.Producto != nil {
		resp.ProductoNombre = &d.Producto.Nombre
	}
	return resp
}

func Compra(c model.Compra) dto.CompraResponse {
	resp := dto.CompraResponse{
		ID:                  c.ID,
		Codigo:              c.Codigo,
		TipoCompra:          c.TipoCompra,
		TipoComprobante:     c.TipoComprobante,
		NumeroComprobante:   c.NumeroComprobante,
		FechaCompra:         fecha(c.FechaCompra),
		FechaVencimiento:    fechaOpcional(c.FechaVencimiento),
		PorcentajeImpuesto:  c.PorcentajeImpuesto,
		PorcentajeDescuento: c.PorcentajeDescuento,
		Total:               c.Total,
		Estado:              c.Estado,
		Observaciones:       c.Observaciones,
		CanEdit:             c.PuedeEditarse(),
		CreatedAt:           c.CreatedAt.Format(time.RFC3339),
	}
	if c.Proveedor != nil {
		prov := Proveedor(*c.Proveedor)
		resp.Proveedor = &prov
	}
	if c.Detalles != nil {
		resp.Detalles = make([]dto.DetalleCompraResponse, 0, len(c.Detalles))
		for _, d := range c.Detalles {
			resp.Detalles = append(resp.Detalles, DetalleCompra(d))
		}
	}
	return resp
}

func User(u model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
