package repository

import (
	"context"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Crear(ctx context.Context, p *model.Proveedor) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Proveedor, error)
	UltimoCreado(ctx context.Context) (*model.Proveedor, error)
	Listar(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, int64, error)
	Actualizar(ctx context.Context, p *model.Proveedor) error
	ActualizarTx(tx *gorm.DB, p *model.Proveedor) error
	Eliminar(ctx context.Context, id uint) error
	Restaurar(ctx context.Context, id uint) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Crear(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Preload("Persona").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) UltimoCreado(ctx context.Context) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).Unscoped().Order("id desc").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Listar(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, int64, error) {
	var proveedores []model.Proveedor
	var total int64

	q := porEstado(r.db.WithContext(ctx).Model(&model.Proveedor{}), filter.Estado)

	if filter.Buscar != "" {
		like := "%" + filter.Buscar + "%"
		q = q.Joins("JOIN personas ON personas.id = proveedores.persona_id").
			Where("proveedores.codigo ILIKE ? OR proveedores.rubro ILIKE ? OR personas.nombres ILIKE ? OR personas.razon_social ILIKE ?",
				like, like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Persona").Order("proveedores.id asc").
		Limit(filter.Limit).Offset(offset).Find(&proveedores).Error
	return proveedores, total, err
}

func (r *proveedorRepo) Actualizar(ctx context.Context, p *model.Proveedor) error {
	if p.Persona != nil {
		if err := r.db.WithContext(ctx).Save(p.Persona).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Save(p).Error
}

// ActualizarTx updates supplier aggregates inside the caller's transaction
// (ultima_compra / total_compras / credito_usado during purchase creation).
func (r *proveedorRepo) ActualizarTx(tx *gorm.DB, p *model.Proveedor) error {
	return tx.Save(p).Error
}

func (r *proveedorRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, id).Error
}

func (r *proveedorRepo) Restaurar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Proveedor{}).
		Where("id = ?", id).Update("deleted_at", nil).Error
}
