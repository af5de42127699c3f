package repository

import (
	"context"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	ObtenerPorID(ctx context.Context, id uint) (*model.Cliente, error)
	UltimoCreado(ctx context.Context) (*model.Cliente, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, id uint) error
	Restaurar(ctx context.Context, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

// Crear persists the cliente and its associated Persona in one go (GORM
// cascades the non-nil Persona pointer).
func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Persona").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UltimoCreado includes soft-deleted rows: codes must never be reissued even
// after a logical delete.
func (r *clienteRepo) UltimoCreado(ctx context.Context) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Unscoped().Order("id desc").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64

	q := porEstado(r.db.WithContext(ctx).Model(&model.Cliente{}), filter.Estado)

	if filter.Buscar != "" {
		like := "%" + filter.Buscar + "%"
		q = q.Joins("JOIN personas ON personas.id = clientes.persona_id").
			Where("clientes.codigo ILIKE ? OR personas.nombres ILIKE ? OR personas.apellidos ILIKE ? OR personas.razon_social ILIKE ?",
				like, like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Persona").Order("clientes.id asc").
		Limit(filter.Limit).Offset(offset).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	if c.Persona != nil {
		if err := r.db.WithContext(ctx).Save(c.Persona).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Save(c).Error
}

// Eliminar marks the row deleted (gorm.DeletedAt); default queries skip it.
func (r *clienteRepo) Eliminar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

// Restaurar clears the soft-delete marker, bringing the cliente back.
func (r *clienteRepo) Restaurar(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Model(&model.Cliente{}).
		Where("id = ?", id).Update("deleted_at", nil).Error
}
