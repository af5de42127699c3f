package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthServer(pingDB, pingCache Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler(pingDB, pingCache))
	return r
}

func pingOK(_ context.Context) error    { return nil }
func pingCaido(_ context.Context) error { return errors.New("sin conexion") }

func TestHealthTodoConectado(t *testing.T) {
	r := healthServer(pingOK, pingOK)

	w := doJSON(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "conectado", data["postgres"])
	assert.Equal(t, "conectado", data["redis"])
}

func TestHealthRedisCaido(t *testing.T) {
	r := healthServer(pingOK, pingCaido)

	w := doJSON(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "conectado", data["postgres"])
	assert.Equal(t, "error", data["redis"])
}
