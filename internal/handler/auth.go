package handler

import (
	"net/http"
	"strings"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/middleware"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginData
// @Failure 401 {object} apierror.APIError
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	data, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, data)
}

// Logout revokes the presented token. Runs behind JWTAuth, so the header is
// known to carry a valid bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenStr := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.svc.Logout(c.Request.Context(), tokenStr); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sesion cerrada"})
}

// User returns the authenticated user's profile.
func (h *AuthHandler) User(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Autenticacion requerida", nil)
		return
	}
	user, err := h.svc.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}
