package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/api/middleware"
)

func generateJWTKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(publicPEM)
}

func signJWT(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate_APIKey(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one", "key-two"}}

	result := middleware.Authenticate("apikey key-one", cfg)
	assert.True(t, result.Success)
	assert.Equal(t, "apikey", result.AuthType)

	result = middleware.Authenticate("apikey wrong-key", cfg)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_APIKey_NoneConfigured(t *testing.T) {
	result := middleware.Authenticate("apikey anything", middleware.AuthConfig{})
	assert.False(t, result.Success)
}

func TestAuthenticate_JWT(t *testing.T) {
	key, publicPEM := generateJWTKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	token := signJWT(t, key, jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.True(t, result.Success)
	assert.Equal(t, "jwt", result.AuthType)
	assert.Equal(t, "admin@example.com", result.AuthSubject)
}

func TestAuthenticate_JWT_Expired(t *testing.T) {
	key, publicPEM := generateJWTKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM}

	token := signJWT(t, key, jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestAuthenticate_JWT_WrongKey(t *testing.T) {
	key, _ := generateJWTKeyPair(t)
	_, otherPublicPEM := generateJWTKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: otherPublicPEM}

	token := signJWT(t, key, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	result := middleware.Authenticate("Bearer "+token, cfg)
	assert.False(t, result.Success)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key"}}

	for _, header := range []string{"", "apikey", "Basic dXNlcjpwYXNz"} {
		result := middleware.Authenticate(header, cfg)
		assert.False(t, result.Success, "header %q", header)
	}
}

func TestAuth_Middleware(t *testing.T) {
	cfg := middleware.AuthConfig{APIKeys: []string{"key-one"}}

	router := gin.New()
	router.Use(middleware.Auth(cfg))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"auth_type": c.GetString(middleware.AUTH_TYPE_KEY)})
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "apikey key-one")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "apikey")

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
