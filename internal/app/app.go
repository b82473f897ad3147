package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/controller"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/pkg/database"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"
	"ai_tutor_backend/pkg/security"
	"ai_tutor_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	session  *repository.SessionRepository
	message  *repository.MessageRepository
	quiz     *repository.QuizRepository
	path     *repository.LearningPathRepository
	progress *repository.ProgressRepository
	analytic *repository.AnalyticsRepository
	history  *repository.SubjectHistoryRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	ai        *service.AIService
	video     *service.VideoService
	catalog   *service.CatalogService
	tutor     *service.TutorService
	quiz      *service.QuizService
	progress  *service.ProgressService
	path      *service.LearningPathService
	recommend *service.RecommendService
	dashboard *service.DashboardService
}

type controllers struct {
	auth     *controller.AuthController
	tutor    *controller.TutorController
	quiz     *controller.QuizController
	path     *controller.LearningPathController
	progress *controller.ProgressController
	catalog  *controller.CatalogController
	user     *controller.UserController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// Reload applies a freshly parsed config to registered listeners.
func (a *App) Reload(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		session:  repository.NewSessionRepository(db),
		message:  repository.NewMessageRepository(db),
		quiz:     repository.NewQuizRepository(db),
		path:     repository.NewLearningPathRepository(db),
		progress: repository.NewProgressRepository(db),
		analytic: repository.NewAnalyticsRepository(db),
		history:  repository.NewSubjectHistoryRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)

	s.ai = service.NewAIService(cfg.AI)
	s.video = service.NewVideoService(cfg.Video)
	s.catalog = service.NewCatalogService(cfg.Catalog, rdb)

	s.progress = service.NewProgressService(repos.path, repos.progress, repos.analytic, repos.quiz)
	s.tutor = service.NewTutorService(repos.session, repos.message, repos.history, s.ai)
	s.quiz = service.NewQuizService(repos.quiz, repos.path, repos.history, s.progress, s.ai, s.video)
	s.path = service.NewLearningPathService(repos.path, repos.progress, s.catalog)
	s.recommend = service.NewRecommendService(repos.path, repos.progress, repos.quiz, repos.history)
	s.dashboard = service.NewDashboardService(repos.progress, repos.analytic, repos.quiz, repos.history)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, repos *repositories) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		tutor:    controller.NewTutorController(s.tutor),
		quiz:     controller.NewQuizController(s.quiz),
		path:     controller.NewLearningPathController(s.path, s.progress, s.recommend),
		progress: controller.NewProgressController(s.progress, s.dashboard, s.recommend, repos.history),
		catalog:  controller.NewCatalogController(s.catalog),
		user:     controller.NewUserController(s.user, s.storage),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, repos)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ai-tutor", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
