package repository

import "gorm.io/gorm"

// Named query scopes, combinable by callers via db.Scopes(...).
// Soft-deleted rows (clientes, proveedores) are already excluded by GORM's
// default DeletedAt handling; these only filter the estado flag and stock.

func Activos(db *gorm.DB) *gorm.DB {
	return db.Where("estado = ?", true)
}

func Inactivos(db *gorm.DB) *gorm.DB {
	return db.Where("estado = ?", false)
}

// StockBajo selects productos with stock at or below the minimum threshold.
func StockBajo(db *gorm.DB) *gorm.DB {
	return db.Where("stock <= stock_minimo")
}

// porEstado applies the conventional estado filter from query strings:
// "false" = inactivos, "all" = todos, anything else = activos (default).
func porEstado(q *gorm.DB, estado string) *gorm.DB {
	switch estado {
	case "false":
		return q.Scopes(Inactivos)
	case "all":
		return q
	default:
		return q.Scopes(Activos)
	}
}
