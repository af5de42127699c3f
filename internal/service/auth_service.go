package service

import (
	"context"
	"time"

	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/apierror"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/config"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/dto"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/repository"
	"github.com/octavioticonaA20/MIS-711-sistema-ventas/internal/resource"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Mensajes de error del contrato de autenticacion. El frontend muestra estos
// textos tal cual — cambiarlos rompe a los consumidores.
const (
	MsgCredencialesIncorrectas = "Credenciales incorrectas"
	MsgUsuarioInactivo         = "Usuario inactivo. Contacte al administrador."
)

// TokenRevoker is the revoked-token denylist. Logout stores the token's jti
// until its natural expiry; the auth middleware checks it on every request.
type TokenRevoker interface {
	Revocar(ctx context.Context, jti string, ttl time.Duration) error
	EstaRevocado(ctx context.Context, jti string) (bool, error)
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error)
	Logout(ctx context.Context, tokenStr string) error
	Profile(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	repo    repository.UserRepository
	revoker TokenRevoker
	cfg     *config.Config
}

func NewAuthService(repo repository.UserRepository, revoker TokenRevoker, cfg *config.Config) AuthService {
	return &authService{repo: repo, revoker: revoker, cfg: cfg}
}

// Login checks credentials against bcrypt, enforces the account-active flag,
// and issues an HS256 bearer token. Wrong email and wrong password produce
// the same 401 so the endpoint does not leak which accounts exist.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Authentication(MsgCredencialesIncorrectas)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Authentication(MsgCredencialesIncorrectas)
	}

	if !user.Estado {
		return nil, apierror.Authorization(MsgUsuarioInactivo)
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginData{Token: token, User: resource.User(*user)}, nil
}

// Logout puts the token's jti on the denylist until the token would have
// expired anyway. An unparsable token is already unusable — treated as 401.
func (s *authService) Logout(ctx context.Context, tokenStr string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return apierror.Authentication("Token invalido")
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return s.revoker.Revocar(ctx, claims.ID, ttl)
}

func (s *authService) Profile(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apierror.NotFound("Usuario no encontrado")
	}
	resp := resource.User(*user)
	return &resp, nil
}

func (s *authService) generateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"jti":     uuid.NewString(),
		"user_id": userID,
		"email":   email,
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
