// Package client provides a small programmatic consumer of the auth API,
// with the same submission semantics as the web login form: one request in
// flight at a time, a loading flag, and the last error message kept for
// display until the next attempt.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
)

const mensajeErrorGenerico = "Error de conexion. Intente nuevamente."

// LoginClient submits credentials against POST /api/v1/auth/login.
type LoginClient struct {
	baseURL string
	httpc   *http.Client

	// OnSuccess runs after a successful login with the issued token and the
	// authenticated user. Optional.
	OnSuccess func(token string, user dto.UserResponse)

	mu       sync.Mutex
	cargando bool
	mensaje  string
	token    string
}

func NewLoginClient(baseURL string) *LoginClient {
	return &LoginClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Cargando reports whether a submission is in flight.
func (c *LoginClient) Cargando() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cargando
}

// MensajeError returns the last submission's error message, empty after a
// successful login or before any attempt.
func (c *LoginClient) MensajeError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mensaje
}

// Token returns the bearer token of the last successful login.
func (c *LoginClient) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

type loginEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *dto.LoginData `json:"data"`
}

// Login submits the credentials. While a submission is in flight further
// calls are ignored (returns false), mirroring the disabled submit button.
// On failure the server's message is kept verbatim for 401/403; transport
// errors collapse into a generic message.
func (c *LoginClient) Login(ctx context.Context, email, password string) bool {
	c.mu.Lock()
	if c.cargando {
		c.mu.Unlock()
		return false
	}
	c.cargando = true
	c.mensaje = ""
	c.mu.Unlock()

	ok := c.submit(ctx, email, password)

	c.mu.Lock()
	c.cargando = false
	c.mu.Unlock()
	return ok
}

func (c *LoginClient) submit(ctx context.Context, email, password string) bool {
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.setMensaje(mensajeErrorGenerico)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		c.setMensaje(mensajeErrorGenerico)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.setMensaje(mensajeErrorGenerico)
		return false
	}
	defer resp.Body.Close()

	var envelope loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.setMensaje(mensajeErrorGenerico)
		return false
	}

	if resp.StatusCode == http.StatusOK && envelope.Success && envelope.Data != nil {
		c.mu.Lock()
		c.token = envelope.Data.Token
		c.mu.Unlock()
		if c.OnSuccess != nil {
			c.OnSuccess(envelope.Data.Token, envelope.Data.User)
		}
		return true
	}

	// 401/403 carry a user-facing message; show it tal cual.
	if envelope.Message != "" {
		c.setMensaje(envelope.Message)
	} else {
		c.setMensaje(mensajeErrorGenerico)
	}
	return false
}

func (c *LoginClient) setMensaje(msg string) {
	c.mu.Lock()
	c.mensaje = msg
	c.mu.Unlock()
}
