package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pickmyschool/internal/model"
)

// Error codes returned alongside error messages
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNoToken      = "NO_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

const contextUserKey = "currentUser"

// UserResolver resolves an opaque bearer token to a user
type UserResolver interface {
	GetUserByToken(ctx context.Context, token string) (*model.User, error)
}

func respondError(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message, "code": code})
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

// OptionalAuth attaches the requester's user to the context when a
// valid token is presented, and lets anonymous requests through
func OptionalAuth(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := resolver.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to resolve token: "+err.Error(), CodeInternal)
			return
		}
		if user != nil {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "No authorization token provided", CodeNoToken)
			return
		}

		user, err := resolver.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to resolve token: "+err.Error(), CodeInternal)
			return
		}
		if user == nil {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token", CodeInvalidToken)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireRole rejects authenticated requesters whose role differs
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != role {
			respondError(c, http.StatusForbidden, "Access restricted to "+role+" accounts", CodeForbidden)
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user from the context, nil for
// anonymous requests
func currentUser(c *gin.Context) *model.User {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
