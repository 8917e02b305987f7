package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// userIDFromToken extracts the authenticated user from a bearer token, if
// one was sent. No Authorization header is not an error; an invalid or
// expired token is.
func (h ApiHandler) userIDFromToken(c *gin.Context) (*uuid.UUID, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")
	claims := jwt.StandardClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.JwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse auth token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in auth token: %w", err)
	}

	return &userID, nil
}

// resolveUserID prefers the token's subject, falling back to an explicit
// userID from the request. Requests with neither cannot be served.
func (h ApiHandler) resolveUserID(c *gin.Context, explicit *string) (uuid.UUID, error) {
	tokenUserID, err := h.userIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	if tokenUserID != nil {
		return *tokenUserID, nil
	}

	if explicit == nil || *explicit == "" {
		return uuid.Nil, fmt.Errorf("no user id provided")
	}
	userID, err := uuid.Parse(*explicit)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", *explicit, err)
	}

	return userID, nil
}

func queryStrPtr(c *gin.Context, key string) *string {
	if v, ok := c.GetQuery(key); ok {
		return &v
	}
	return nil
}
