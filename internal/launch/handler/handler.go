package handler

import (
	"context"
	"errors"
	"net/http"

	"marketing-server/internal/apierrors"
	authhandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/launch/processor"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

// Launcher is the subset of the launch processor the HTTP layer drives.
type Launcher interface {
	PreviewTimeline(ctx context.Context, userID, campaignID uuid.UUID, launchDate string) (processor.TimelinePreview, error)
	ConfirmLaunch(ctx context.Context, userID, campaignID uuid.UUID, launchDate string) (processor.LaunchResult, error)
	GetSchedule(ctx context.Context, userID, campaignID uuid.UUID) ([]store.PostWithPlatforms, error)
}

type Handler struct {
	launcher Launcher
	logger   *observability.Logger
}

func New(launcher Launcher, logger *observability.Logger) Handler {
	return Handler{
		launcher: launcher,
		logger:   logger,
	}
}

// LaunchDateRequest carries the date the user picked for the campaign launch
type LaunchDateRequest struct {
	LaunchDate string `json:"launch_date" binding:"required,datetime=2006-01-02"`
}

// HandlePreviewTimeline returns the computed timeline for a launch date without saving it
func (h *Handler) HandlePreviewTimeline(c *gin.Context) {
	ctx, userID, campaignID, req, ok := h.bindLaunchRequest(c)
	if !ok {
		return
	}

	preview, err := h.launcher.PreviewTimeline(ctx, userID, campaignID, req.LaunchDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// HandleConfirmLaunch persists the timeline and generated posts and notifies downstream systems
func (h *Handler) HandleConfirmLaunch(c *gin.Context) {
	ctx, userID, campaignID, req, ok := h.bindLaunchRequest(c)
	if !ok {
		return
	}

	result, err := h.launcher.ConfirmLaunch(ctx, userID, campaignID, req.LaunchDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info(ctx, "campaign launch confirmed")
	c.JSON(http.StatusOK, result)
}

// HandleGetSchedule lists the campaign's scheduled posts with their platform entries
func (h *Handler) HandleGetSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	posts, err := h.launcher.GetSchedule(ctx, userID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) bindLaunchRequest(c *gin.Context) (context.Context, uuid.UUID, uuid.UUID, LaunchDateRequest, bool) {
	ctx := c.Request.Context()

	userID, ok := h.getUserID(c)
	if !ok {
		return ctx, uuid.UUID{}, uuid.UUID{}, LaunchDateRequest{}, false
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return ctx, uuid.UUID{}, uuid.UUID{}, LaunchDateRequest{}, false
	}

	var req LaunchDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return ctx, uuid.UUID{}, uuid.UUID{}, LaunchDateRequest{}, false
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "launch_date", Value: req.LaunchDate},
	)
	return ctx, userID, campaignID, req, true
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get(authhandler.UserIDKey)
	if !exists {
		apierrors.Unauthorized(c, "User ID not found in context")
		return uuid.UUID{}, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid user ID format")
		return uuid.UUID{}, false
	}
	return userID, true
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidInput):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Launch date must be a valid date in YYYY-MM-DD format")
	case errors.Is(err, processor.ErrNoPhases):
		apierrors.UnprocessableEntity(c, "NO_PHASES", "Campaign has no phases to schedule")
	case errors.Is(err, processor.ErrUnauthorized):
		apierrors.Forbidden(c, apierrors.CodeForbidden, "You do not have access to this campaign")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrStepTimeout):
		apierrors.GatewayTimeout(c, "STEP_TIMEOUT", stepMessage(err, "Launch step timed out"), err)
	case errors.Is(err, processor.ErrCampaignUpdateFailed):
		apierrors.InternalErrorWithCode(c, "CAMPAIGN_UPDATE_FAILED", "Failed to update campaign dates", err)
	case errors.Is(err, processor.ErrPhaseUpdateFailed):
		apierrors.InternalErrorWithCode(c, "PHASE_UPDATE_FAILED", "Failed to update phase dates", err)
	case errors.Is(err, processor.ErrPostPersistFailed):
		apierrors.InternalErrorWithCode(c, "POST_PERSIST_FAILED", "Failed to save scheduled posts", err)
	default:
		apierrors.InternalError(c, err)
	}
}

// stepMessage names the failed step when err is a LaunchError.
func stepMessage(err error, fallback string) string {
	var launchErr *processor.LaunchError
	if errors.As(err, &launchErr) {
		return fallback + " while " + string(launchErr.Step)
	}
	return fallback
}
