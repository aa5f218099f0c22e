package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"twigane_backend/internal/config"
	"twigane_backend/internal/controller"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/service"
	"twigane_backend/pkg/database"
	"twigane_backend/pkg/logger"
	"twigane_backend/pkg/monitoring"
	"twigane_backend/pkg/security"
	"twigane_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	course      *repository.CourseRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	checkin     *repository.CheckinRepository
	forum       *repository.ForumRepository
	chat        *repository.ChatRepository
	project     *repository.ProjectRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	catalog     *service.CatalogService
	progress    *service.ProgressService
	achievement *service.AchievementService
	user        *service.UserService
	community   *service.CommunityService
	assistant   *service.AssistantService
	project     *service.ProjectService
	dashboard   *service.DashboardService
	admin       *service.AdminService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	course      *controller.CourseController
	progress    *controller.ProgressController
	achievement *controller.AchievementController
	community   *controller.CommunityController
	assistant   *controller.AssistantController
	project     *controller.ProjectController
	dashboard   *controller.DashboardController
	admin       *controller.AdminController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		course:      repository.NewCourseRepository(db),
		progress:    repository.NewProgressRepository(db),
		achievement: repository.NewAchievementRepository(db),
		checkin:     repository.NewCheckinRepository(db),
		forum:       repository.NewForumRepository(db),
		chat:        repository.NewChatRepository(db),
		project:     repository.NewProjectRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.catalog = service.NewCatalogService(repos.course, repos.progress, rdb, cfg)
	s.progress = service.NewProgressService(a.DB, repos.progress, repos.course, repos.user, repos.achievement)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.user = service.NewUserService(a.DB, repos.user, repos.checkin, repos.progress, repos.achievement)
	s.community = service.NewCommunityService(repos.forum)
	s.assistant = service.NewAssistantService(repos.chat)
	s.project = service.NewProjectService(repos.project, repos.course)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.progress, repos.achievement, s.catalog)
	s.admin = service.NewAdminService(repos.course, repos.user, repos.progress, repos.achievement, s.catalog)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user, s.storage),
		course:      controller.NewCourseController(s.catalog),
		progress:    controller.NewProgressController(s.progress),
		achievement: controller.NewAchievementController(s.achievement),
		community:   controller.NewCommunityController(s.community),
		assistant:   controller.NewAssistantController(s.assistant),
		project:     controller.NewProjectController(s.project),
		dashboard:   controller.NewDashboardController(s.dashboard),
		admin:       controller.NewAdminController(s.admin, s.storage),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized")

	// Release deployments migrate explicitly via the -migrate flag.
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("twigane-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
