package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Código prefixes per entity. All business codes are PREFIX + zero-padded
// sequence, e.g. PROD000001.
const (
	PrefijoProducto  = "PROD"
	PrefijoCliente   = "CLI"
	PrefijoProveedor = "PROV"
	PrefijoVenta     = "VENT"
	PrefijoCompra    = "COMP"

	codigoAncho = 6
)

// SiguienteCodigo derives the next business code from the latest existing one.
// With no prior record (ultimo == "") the sequence starts at 1. The numeric
// suffix is parsed after the prefix, incremented, and re-padded to six digits.
//
// This read-then-increment scheme is not race-free: two concurrent creations
// can derive the same code. Uniqueness is enforced by the DB constraint on the
// codigo column; callers retry on that conflict (see apierror.IsConflict).
func SiguienteCodigo(prefijo, ultimo string) string {
	numero := 1
	if sufijo, ok := strings.CutPrefix(ultimo, prefijo); ok {
		if n, err := strconv.Atoi(sufijo); err == nil {
			numero = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefijo, codigoAncho, numero)
}
