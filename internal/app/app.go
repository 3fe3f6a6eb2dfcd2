package app

import (
	"context"
	"edupiyasa_backend/internal/config"
	"edupiyasa_backend/internal/controller"
	"edupiyasa_backend/internal/repository"
	"edupiyasa_backend/internal/service"
	"edupiyasa_backend/internal/util"
	"edupiyasa_backend/pkg/database"
	"edupiyasa_backend/pkg/logger"
	"edupiyasa_backend/pkg/monitoring"
	"edupiyasa_backend/pkg/security"
	"edupiyasa_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	user         *repository.UserRepository
	subject      *repository.SubjectRepository
	lesson       *repository.LessonRepository
	quiz         *repository.QuizRepository
	activity     *repository.ActivityRepository
	assignment   *repository.AssignmentRepository
	textbook     *repository.TextbookRepository
	learningPlan *repository.LearningPlanRepository
	emotional    *repository.EmotionalRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	subject      *service.SubjectService
	lesson       *service.LessonService
	quiz         *service.QuizService
	activity     *service.ActivityService
	textbook     *service.TextbookService
	content      *service.ContentService
	parent       *service.ParentService
	learningPlan *service.LearningPlanService
	storage      *service.StorageService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	subject      *controller.SubjectController
	lesson       *controller.LessonController
	quiz         *controller.QuizController
	activity     *controller.ActivityController
	textbook     *controller.TextbookController
	admin        *controller.AdminController
	parent       *controller.ParentController
	learningPlan *controller.LearningPlanController
	i18n         *controller.I18nController
	health       *controller.HealthController
}

// RegisterConfigCallback subscribes to config file reloads.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to the registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		subject:      repository.NewSubjectRepository(db),
		lesson:       repository.NewLessonRepository(db),
		quiz:         repository.NewQuizRepository(db),
		activity:     repository.NewActivityRepository(db),
		assignment:   repository.NewAssignmentRepository(db),
		textbook:     repository.NewTextbookRepository(db),
		learningPlan: repository.NewLearningPlanRepository(db),
		emotional:    repository.NewEmotionalRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.subject = service.NewSubjectService(repos.subject, repos.lesson, rdb)
	s.lesson = service.NewLessonService(repos.lesson, repos.user, s.user)
	s.quiz = service.NewQuizService(repos.quiz, repos.user, s.user)
	s.activity = service.NewActivityService(repos.activity, repos.user, s.user)
	s.textbook = service.NewTextbookService(repos.textbook)
	s.content = service.NewContentService(
		repos.lesson,
		repos.assignment,
		repos.textbook,
		repos.activity,
		repos.user,
		s.storage,
	)
	s.parent = service.NewParentService(repos.user, repos.quiz, repos.activity, repos.emotional)
	s.learningPlan = service.NewLearningPlanService(repos.learningPlan, repos.subject)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user),
		subject:      controller.NewSubjectController(s.subject),
		lesson:       controller.NewLessonController(s.lesson),
		quiz:         controller.NewQuizController(s.quiz),
		activity:     controller.NewActivityController(s.activity),
		textbook:     controller.NewTextbookController(s.textbook),
		admin:        controller.NewAdminController(s.content, s.subject),
		parent:       controller.NewParentController(s.parent),
		learningPlan: controller.NewLearningPlanController(s.learningPlan),
		i18n:         controller.NewI18nController(),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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
	logger.InitLogger(cfg)

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
		rdb = nil
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

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("edupiyasa-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
}
