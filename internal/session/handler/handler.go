package handler

import (
	"context"
	"errors"
	"net/http"

	"marketing-server/internal/apierrors"
	authhandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/observability"
	"marketing-server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Resolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (string, error)
}

type Handler struct {
	sessions Resolver
	logger   *observability.Logger
}

func New(sessions Resolver, logger *observability.Logger) Handler {
	return Handler{sessions: sessions, logger: logger}
}

// HandleGetSession returns the caller's chat session id, creating it on first use
func (h *Handler) HandleGetSession(c *gin.Context) {
	ctx := c.Request.Context()

	userIDStr, exists := c.Get(authhandler.UserIDKey)
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return
	}
	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid user ID format")
		return
	}

	id, err := h.sessions.Resolve(ctx, userID)
	if errors.Is(err, session.ErrMalformedID) {
		apierrors.InternalErrorWithCode(c, "SESSION_CORRUPT", "Stored session is invalid", err)
		return
	}
	if err != nil {
		apierrors.ServiceUnavailable(c, "SESSION_UNAVAILABLE", "Session storage is unavailable", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": id})
}
