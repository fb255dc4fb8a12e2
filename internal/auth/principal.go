package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Bigyayos/appgolf/internal/models"
)

const principalKey = "principal"

// Principal is the authenticated caller. Services take it explicitly instead of
// reading identity from ambient state.
type Principal struct {
	UserID     uuid.UUID
	Email      string
	Role       string
	PlayerName string
}

// PrincipalFromClaims builds a Principal from validated token claims
func PrincipalFromClaims(claims *Claims) Principal {
	return Principal{
		UserID:     claims.UserID,
		Email:      claims.Email,
		Role:       claims.Role,
		PlayerName: claims.PlayerName,
	}
}

// IsSuperAdmin reports whether the caller manages the whole league
func (p Principal) IsSuperAdmin() bool {
	return p.Role == string(models.RoleSuperAdmin)
}

// CanSubmitFor reports whether the caller may record a result for playerName.
// Super admins may submit for anyone; players only for their own linked player.
func (p Principal) CanSubmitFor(playerName string) bool {
	if p.IsSuperAdmin() {
		return true
	}
	return p.PlayerName != "" && p.PlayerName == playerName
}

// SetPrincipal stores the caller in the gin context
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the caller stored by JWTMiddleware
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// RequireSuperAdmin aborts requests from callers without the superadmin role
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "UNAUTHORIZED"})
			c.Abort()
			return
		}
		if !p.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Super admin access required", "code": "FORBIDDEN"})
			c.Abort()
			return
		}
		c.Next()
	}
}
