package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// ownerClaims are tried in order to identify the caller.
var ownerClaims = []string{"sub", "userID"}

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized) // No token found in the header.
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized) // Malformed Authorization header.
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if _, ok := owner(claims); !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// Owner returns the caller's identity from the claims stored by Authoriz.
func Owner(c *gin.Context) (string, bool) {
	raw, ok := c.Get(ContextUserClaims)
	if !ok {
		return "", false
	}
	claims, ok := raw.(map[string]any)
	if !ok {
		return "", false
	}
	return owner(claims)
}

func owner(claims map[string]any) (string, bool) {
	for _, key := range ownerClaims {
		v, ok := claims[key]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s, true
		}
	}
	return "", false
}
