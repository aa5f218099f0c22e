package app

import (
	"twigane_backend/docs"
	"twigane_backend/internal/config"
	"twigane_backend/internal/middleware"
	"twigane_backend/internal/model"
	"twigane_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerForumRoutes(router, c, repos, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerLearnerRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/achievements/catalog", c.achievement.Catalog)

		// Catalog browsing works for guests; signed-in viewers get their
		// derived lesson states.
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", middleware.TryAuthMiddleware(cfg), c.course.GetCourse)
	}
}

func (a *App) registerForumRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	// TryAuth runs first so the activity touch sees claims on reads too.
	forum := router.Group("/api/forum")
	forum.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		forum.GET("/posts", c.community.ListPosts)
		forum.GET("/posts/:id", c.community.GetPost)

		authorized := forum.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("/posts", c.community.CreatePost)
			authorized.POST("/posts/:id/replies", c.community.CreateReply)
			authorized.POST("/posts/:id/upvote", c.community.UpvotePost)
		}
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)
	rg.POST("/user/checkin", c.user.Checkin)
	rg.GET("/dashboard", c.dashboard.Get)

	rg.GET("/lessons/:id", c.course.GetLesson)
	rg.POST("/lessons/:id/complete", c.progress.CompleteLesson)
	rg.POST("/lessons/:id/quiz", c.progress.SubmitQuiz)
	rg.GET("/progress", c.progress.GetMyProgress)
	rg.GET("/courses/:id/progress", c.progress.GetCourseProgress)

	rg.GET("/achievements", c.achievement.ListMine)
	rg.GET("/achievements/leaderboard", c.user.Leaderboard)

	rg.POST("/projects", c.project.Submit)
	rg.GET("/projects", c.project.ListMine)
	rg.GET("/projects/:id", c.project.Get)

	assistant := rg.Group("/assistant")
	{
		assistant.POST("/sessions", c.assistant.StartSession)
		assistant.GET("/sessions", c.assistant.ListSessions)
		assistant.GET("/sessions/:id/messages", c.assistant.GetMessages)
		assistant.POST("/sessions/:id/messages", c.assistant.SendMessage)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/courses", c.admin.ListCourses)
		admin.POST("/courses", c.admin.CreateCourse)
		admin.PUT("/courses/:id", c.admin.UpdateCourse)
		admin.DELETE("/courses/:id", c.admin.DeleteCourse)
		admin.POST("/courses/:id/lessons", c.admin.AddLesson)
		admin.PUT("/lessons/:id", c.admin.UpdateLesson)
		admin.POST("/thumbnails", c.admin.UploadThumbnail)

		admin.GET("/stats", c.admin.Stats)
		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id/disabled", c.admin.SetUserDisabled)

		admin.GET("/projects", c.project.ListPending)
		admin.PUT("/projects/:id/review", c.project.Review)
	}
}
