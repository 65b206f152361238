package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"omr_exam_backend/internal/config"
	"omr_exam_backend/internal/controller"
	"omr_exam_backend/internal/middleware"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"
	"omr_exam_backend/pkg/configwatcher"
	"omr_exam_backend/pkg/database"
	"omr_exam_backend/pkg/logger"
	"omr_exam_backend/pkg/monitoring"
	"omr_exam_backend/pkg/security"
	"omr_exam_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	chapter      *repository.ChapterRepository
	attempt      *repository.AttemptRepository
	analytics    *repository.AnalyticsRepository
	exportRecord *repository.ExportRecordRepository
}

type services struct {
	storage   *service.StorageService
	analytics *service.AnalyticsService
	export    *service.ExportService
	chapter   *service.ChapterService
	attempt   *service.AttemptService
	theme     *service.ThemeService
}

type controllers struct {
	chapter   *controller.ChapterController
	exam      *controller.ExamController
	analytics *controller.AnalyticsController
	export    *controller.ExportController
	theme     *controller.ThemeController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		chapter:      repository.NewChapterRepository(db),
		attempt:      repository.NewAttemptRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
		exportRecord: repository.NewExportRecordRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.analytics = service.NewAnalyticsService(
		repos.analytics,
		repos.chapter,
		rdb,
		time.Duration(cfg.Analytics.CacheTTLSeconds)*time.Second,
		cfg.Analytics.TopPerformersLimit,
	)
	s.export = service.NewExportService(repos.exportRecord, repos.attempt, repos.chapter, s.storage)
	s.chapter = service.NewChapterService(repos.chapter, s.analytics, s.export)
	s.attempt = service.NewAttemptService(repos.attempt, repos.chapter, s.analytics)
	s.theme = service.NewThemeService()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		chapter:   controller.NewChapterController(s.chapter, s.attempt, s.analytics),
		exam:      controller.NewExamController(s.attempt),
		analytics: controller.NewAnalyticsController(s.analytics),
		export:    controller.NewExportController(s.export),
		theme:     controller.NewThemeController(s.theme),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	// 定时预热统计缓存
	if a.Redis != nil {
		go func() {
			s.analytics.WarmCache()
			ticker := time.NewTicker(time.Duration(cfg.Analytics.WarmIntervalMinutes) * time.Minute)
			for range ticker.C {
				s.analytics.WarmCache()
			}
		}()
	}

	// 监听配置文件变更，热更新日志级别与统计缓存参数
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.ApplyMode(newCfg.Server.Mode)
		s.analytics.CacheTTL = time.Duration(newCfg.Analytics.CacheTTLSeconds) * time.Second
		s.analytics.TopLimit = newCfg.Analytics.TopPerformersLimit
		logger.Log.Info("配置已热更新",
			zap.String("mode", newCfg.Server.Mode),
			zap.Int("cacheTtlSeconds", newCfg.Analytics.CacheTTLSeconds))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("omr-exam-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	// 本地存储时直接挂载导出目录，报表 URL 即可直接访问
	if cfg.Storage.Type == util.StorageLocal || cfg.Storage.Type == "" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services, cfg)

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

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
