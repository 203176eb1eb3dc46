package handler

import (
	"strings"

	"marketing-server/internal/apierrors"
	"marketing-server/internal/auth/processor"
	"marketing-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's id as a string.
const UserIDKey = "User-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	userID, err := h.authProcessor.UserIDFromToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		c.Abort()
		return
	}

	c.Set(UserIDKey, userID.String())
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
	))
	c.Next()
}
