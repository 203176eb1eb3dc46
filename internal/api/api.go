package api

import (
	"net/http"

	authHandler "marketing-server/internal/auth/handler"
	launchHandler "marketing-server/internal/launch/handler"
	sessionHandler "marketing-server/internal/session/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router         *gin.RouterGroup
	authHandler    authHandler.Handler
	launchHandler  launchHandler.Handler
	sessionHandler sessionHandler.Handler
	launchLimit    gin.HandlerFunc
}

// New wires the routes. launchLimit guards launch confirmation and may be nil.
func New(router *gin.RouterGroup, authHandler authHandler.Handler, launchHandler launchHandler.Handler, sessionHandler sessionHandler.Handler, launchLimit gin.HandlerFunc) API {
	if launchLimit == nil {
		launchLimit = func(c *gin.Context) { c.Next() }
	}
	return API{
		router:         router,
		authHandler:    authHandler,
		launchHandler:  launchHandler,
		sessionHandler: sessionHandler,
		launchLimit:    launchLimit,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		campaignGroup := protectedGroup.Group("/campaigns/:campaign_id")
		campaignGroup.POST("/timeline", a.launchHandler.HandlePreviewTimeline)
		campaignGroup.POST("/launch", a.launchLimit, a.launchHandler.HandleConfirmLaunch)
		campaignGroup.GET("/posts", a.launchHandler.HandleGetSchedule)

		protectedGroup.GET("/session", a.sessionHandler.HandleGetSession)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
