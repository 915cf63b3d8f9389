package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
	"basegraph.app/planboard/internal/http/middleware"
	"basegraph.app/planboard/internal/service"
)

type RouterConfig struct {
	DashboardURL   string
	IsProduction   bool
	RequestTimeout time.Duration
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := services.Auth()
	requireAuth := middleware.RequireAuth(auth)

	authHandler := handler.NewAuthHandler(auth, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Timeout(cfg.RequestTimeout), requireAuth)
	{
		analytics := services.Analytics()

		WorkspaceRouter(v1.Group("/workspaces"), handler.NewWorkspaceHandler(services.Workspaces(), analytics))
		MemberRouter(v1.Group("/members"), handler.NewMemberHandler(services.Members()))
		ProjectRouter(v1.Group("/projects"), handler.NewProjectHandler(services.Projects(), analytics))
		TaskRouter(v1.Group("/tasks"), handler.NewTaskHandler(services.Tasks()))
		CommentRouter(v1.Group("/comments"), handler.NewCommentHandler(services.Comments()))
		StorageRouter(v1.Group("/storage"), handler.NewFileHandler(services.Files()))
	}
}
