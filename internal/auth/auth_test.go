package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func testClaims() Claims {
	return Claims{
		UserID:     uuid.New(),
		Email:      "ana@example.com",
		Role:       "player",
		PlayerName: "Ana",
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService(testSecret)
	claims := testClaims()

	token, expiresAt, err := service.GenerateToken(claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, "Ana", parsed.PlayerName)
	assert.Equal(t, "player", parsed.Role)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	service := NewJWTService(testSecret)

	refresh, _, err := service.GenerateRefreshToken(testClaims())
	require.NoError(t, err)
	_, err = service.ValidateToken(refresh)
	assert.Error(t, err)

	access, _, err := service.GenerateToken(testClaims())
	require.NoError(t, err)
	_, err = service.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	issuer := NewJWTService(testSecret)
	issuer.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, _, err := issuer.GenerateToken(testClaims())
	require.NoError(t, err)

	_, err = NewJWTService(testSecret).ValidateToken(expired)
	assert.Error(t, err)

	foreign, _, err := NewJWTService("other-secret").GenerateToken(testClaims())
	require.NoError(t, err)
	_, err = NewJWTService(testSecret).ValidateToken(foreign)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := hashWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("battery staple", hash))
}

func TestPrincipal_CanSubmitFor(t *testing.T) {
	admin := Principal{Role: "superadmin"}
	player := Principal{Role: "player", PlayerName: "Ana"}
	unlinked := Principal{Role: "player"}

	assert.True(t, admin.CanSubmitFor("Anyone"))
	assert.True(t, player.CanSubmitFor("Ana"))
	assert.False(t, player.CanSubmitFor("Bruno"))
	assert.False(t, unlinked.CanSubmitFor(""))
}

func setupRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware...)
	handler := func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"player": p.PlayerName})
	}
	router.GET("/me", handler)
	router.POST("/me", handler)
	return router
}

func TestJWTMiddleware(t *testing.T) {
	token, _, err := NewJWTService(testSecret).GenerateToken(testClaims())
	require.NoError(t, err)
	router := setupRouter(JWTMiddleware(testSecret))

	tests := []struct {
		name       string
		method     string
		header     string
		cookies    []*http.Cookie
		csrfHeader string
		expected   int
	}{
		{name: "missing token", method: "GET", expected: http.StatusUnauthorized},
		{name: "not bearer", method: "GET", header: token, expected: http.StatusUnauthorized},
		{name: "bad token", method: "GET", header: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "bearer token", method: "GET", header: "Bearer " + token, expected: http.StatusOK},
		{name: "bearer post needs no csrf", method: "POST", header: "Bearer " + token, expected: http.StatusOK},
		{name: "cookie get", method: "GET", cookies: []*http.Cookie{{Name: "auth_token", Value: token}}, expected: http.StatusOK},
		{name: "cookie post without csrf", method: "POST", cookies: []*http.Cookie{{Name: "auth_token", Value: token}}, expected: http.StatusForbidden},
		{
			name:   "cookie post with csrf",
			method: "POST",
			cookies: []*http.Cookie{
				{Name: "auth_token", Value: token},
				{Name: "csrf_token", Value: "abc"},
			},
			csrfHeader: "abc",
			expected:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			for _, c := range tt.cookies {
				req.AddCookie(c)
			}
			if tt.csrfHeader != "" {
				req.Header.Set("X-CSRF-Token", tt.csrfHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	service := NewJWTService(testSecret)
	playerToken, _, _ := service.GenerateToken(testClaims())
	adminClaims := testClaims()
	adminClaims.Role = "superadmin"
	adminToken, _, _ := service.GenerateToken(adminClaims)

	router := setupRouter(JWTMiddleware(testSecret), RequireSuperAdmin())

	for token, expected := range map[string]int{playerToken: http.StatusForbidden, adminToken: http.StatusOK} {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, expected, w.Code)
	}
}
