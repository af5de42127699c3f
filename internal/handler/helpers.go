package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Error maps keyed by the wire names, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
}

// ── Response envelope ─────────────────────────────────────────────────────────
// Every endpoint answers {success:true, data:...} or {success:false, message}.

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string, fields map[string]string) {
	body := gin.H{"success": false, "message": msg}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	c.JSON(status, body)
}

// fail maps service errors onto the envelope. Unknown errors are attached to
// the context so ErrorHandler logs them, and surface as an opaque 500.
func fail(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		respondError(c, apiErr.Status, apiErr.Message, apiErr.Fields)
		return
	}
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, "Error interno del servidor", nil)
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, http.StatusBadRequest, "JSON invalido: "+err.Error(), nil)
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		respondError(c, http.StatusUnprocessableEntity, "Error de validacion", fields)
		return false
	}
	return true
}

// bindQuery binds querystring filters (form tags with defaults) and validates.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		respondError(c, http.StatusBadRequest, "Parametros invalidos: "+err.Error(), nil)
		return false
	}
	if err := validate.Struct(filter); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		respondError(c, http.StatusUnprocessableEntity, "Error de validacion", fields)
		return false
	}
	return true
}

// parseID reads the :id path parameter. Writes the 400 itself on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "ID invalido", nil)
		return 0, false
	}
	return uint(id), true
}
