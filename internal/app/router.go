package app

import (
	"lab_backend/docs"
	"lab_backend/internal/config"
	"lab_backend/internal/middleware"
	"lab_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// everything else needs a session
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		// attempt lifecycle
		authGroup.GET("/attempts", c.attempt.ListAttempts)
		authGroup.POST("/attempts", c.attempt.CreateAttempt)
		authGroup.PUT("/attempts", c.attempt.ResolveAttempt)
		authGroup.DELETE("/attempts", c.attempt.DeleteAttempt)
		authGroup.GET("/attempts/discussions", c.attempt.GetDiscussions)
		authGroup.POST("/attempts/discussions", c.attempt.AddDiscussion)

		// problem sheet
		authGroup.GET("/sheet", c.sheet.GetSheet)
		authGroup.GET("/sheet/filter", c.sheet.FilterSheet)
		authGroup.PUT("/sheet/problems/:id/mark", c.sheet.MarkProblem)

		// practice/focus sessions
		authGroup.GET("/sessions", c.session.ListSessions)
		authGroup.POST("/sessions", c.session.StartSession)
		authGroup.PUT("/sessions/:id/finish", c.session.FinishSession)
		authGroup.DELETE("/sessions/:id", c.session.DeleteSession)

		// mock interviews
		authGroup.GET("/interviews", c.interview.ListInterviews)
		authGroup.POST("/interviews", c.interview.StartInterview)
		authGroup.GET("/interviews/:id", c.interview.GetInterview)
		authGroup.POST("/interviews/:id/advance", c.interview.AdvanceInterview)
		authGroup.POST("/interviews/:id/feedback", c.interview.RecordFeedback)

		// journal
		authGroup.GET("/journal", c.journal.ListEntries)
		authGroup.POST("/journal", c.journal.CreateEntry)
		authGroup.GET("/journal/:id", c.journal.GetEntry)
		authGroup.PUT("/journal/:id", c.journal.UpdateEntry)
		authGroup.DELETE("/journal/:id", c.journal.DeleteEntry)

		// dashboard
		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}
}
