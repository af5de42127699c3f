package repository

import (
	"context"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"gorm.io/gorm"
)

type CompraRepository interface {
	CrearTx(tx *gorm.DB, c *model.Compra) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Compra, error)
	UltimaCreada(ctx context.Context) (*model.Compra, error)
	Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	Actualizar(ctx context.Context, c *model.Compra) error
	ActualizarTx(tx *gorm.DB, c *model.Compra) error

	// EnTx runs fn inside one database transaction.
	EnTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) CrearTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Proveedor.Persona").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalle_compras.id asc") }).
		Preload("Detalles.Producto").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) UltimaCreada(ctx context.Context) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).Order("id desc").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *compraRepo) Listar(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var compras []model.Compra
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Compra{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("fecha_compra = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Proveedor.Persona").Order("id desc").
		Limit(filter.Limit).Offset(offset).Find(&compras).Error
	return compras, total, err
}

func (r *compraRepo) Actualizar(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *compraRepo) ActualizarTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Save(c).Error
}

func (r *compraRepo) EnTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}
