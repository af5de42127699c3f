package repository

import (
	"context"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"gorm.io/gorm"
)

type VentaRepository interface {
	// CrearTx persists the header with its detalle lines inside the caller's
	// transaction (stock adjustments ride the same tx).
	CrearTx(tx *gorm.DB, v *model.Venta) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Venta, error)
	UltimaCreada(ctx context.Context) (*model.Venta, error)
	Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	Actualizar(ctx context.Context, v *model.Venta) error
	ActualizarTx(tx *gorm.DB, v *model.Venta) error

	// EnTx runs fn inside one database transaction; the *Tx methods of this
	// and other repositories ride the tx it provides.
	EnTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CrearTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente.Persona").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalle_ventas.id asc") }).
		Preload("Detalles.Producto").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) UltimaCreada(ctx context.Context) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Order("id desc").First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("fecha_venta = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente.Persona").Order("id desc").
		Limit(filter.Limit).Offset(offset).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) Actualizar(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) ActualizarTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Save(v).Error
}

func (r *ventaRepo) EnTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
