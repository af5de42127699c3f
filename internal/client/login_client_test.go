package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginServer(t *testing.T, status int, body interface{}, delay time.Duration) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestLoginClientExitoso(t *testing.T) {
	srv := loginServer(t, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"token": "tok-123",
			"user":  map[string]interface{}{"id": 1, "name": "Ana", "email": "ana@empresa.com"},
		},
	}, 0)
	defer srv.Close()

	c := NewLoginClient(srv.URL)
	var gotUser dto.UserResponse
	c.OnSuccess = func(token string, user dto.UserResponse) { gotUser = user }

	ok := c.Login(context.Background(), "ana@empresa.com", "secreto123")
	require.True(t, ok)
	assert.Equal(t, "tok-123", c.Token())
	assert.Empty(t, c.MensajeError())
	assert.Equal(t, "Ana", gotUser.Name)
	assert.False(t, c.Cargando())
}

func TestLoginClientMuestraMensajeDelServidor(t *testing.T) {
	srv := loginServer(t, http.StatusForbidden, map[string]interface{}{
		"success": false,
		"message": "Usuario inactivo. Contacte al administrador.",
	}, 0)
	defer srv.Close()

	c := NewLoginClient(srv.URL)
	ok := c.Login(context.Background(), "baja@empresa.com", "secreto123")
	require.False(t, ok)
	assert.Equal(t, "Usuario inactivo. Contacte al administrador.", c.MensajeError(),
		"el mensaje del servidor se muestra tal cual")
}

func TestLoginClientErrorDeRed(t *testing.T) {
	srv := loginServer(t, http.StatusOK, nil, 0)
	srv.Close() // conexion rechazada

	c := NewLoginClient(srv.URL)
	ok := c.Login(context.Background(), "ana@empresa.com", "secreto123")
	require.False(t, ok)
	assert.Equal(t, "Error de conexion. Intente nuevamente.", c.MensajeError())
}

func TestLoginClientUnEnvioALaVez(t *testing.T) {
	srv := loginServer(t, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"token": "tok", "user": map[string]interface{}{"id": 1}},
	}, 150*time.Millisecond)
	defer srv.Close()

	c := NewLoginClient(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Login(context.Background(), "ana@empresa.com", "secreto123")
	}()

	// esperar a que el primer envio este en vuelo
	require.Eventually(t, c.Cargando, time.Second, 5*time.Millisecond)

	assert.False(t, c.Login(context.Background(), "ana@empresa.com", "secreto123"),
		"segundo envio ignorado mientras hay uno en vuelo")
	wg.Wait()
	assert.Equal(t, "tok", c.Token())
}

func TestLoginClientLimpiaErrorAlReintentar(t *testing.T) {
	fallo := loginServer(t, http.StatusUnauthorized, map[string]interface{}{
		"success": false,
		"message": "Credenciales incorrectas",
	}, 0)
	defer fallo.Close()

	c := NewLoginClient(fallo.URL)
	c.Login(context.Background(), "ana@empresa.com", "mala")
	require.Equal(t, "Credenciales incorrectas", c.MensajeError())

	exito := loginServer(t, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"token": "tok-2", "user": map[string]interface{}{"id": 1}},
	}, 0)
	defer exito.Close()

	c.baseURL = exito.URL
	require.True(t, c.Login(context.Background(), "ana@empresa.com", "secreto123"))
	assert.Empty(t, c.MensajeError())
}
