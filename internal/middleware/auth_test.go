package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClaimsSinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// un handler mal ruteado no debe tumbar el proceso
	assert.NotPanics(t, func() {
		assert.Nil(t, GetClaims(c))
	})
}

func TestGetClaimsConClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ClaimsKey, &JWTClaims{UserID: 7, Email: "ana@empresa.com"})

	claims := GetClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestGetClaimsTipoInesperado(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ClaimsKey, "no son claims")

	assert.Nil(t, GetClaims(c))
}
