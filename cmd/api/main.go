package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fsociety/arcade-api/internal/config"
	"github.com/fsociety/arcade-api/internal/handler"
	"github.com/fsociety/arcade-api/internal/middleware"
	pgRepo "github.com/fsociety/arcade-api/internal/repository/postgres"
	redisRepo "github.com/fsociety/arcade-api/internal/repository/redis"
	"github.com/fsociety/arcade-api/internal/service"
	ws "github.com/fsociety/arcade-api/internal/websocket"
	"github.com/fsociety/arcade-api/pkg/auth"
	"github.com/fsociety/arcade-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	categoryRepo := pgRepo.NewCategoryRepo(db)
	scoreRepo := pgRepo.NewScoreRepo(db)
	achievementRepo := pgRepo.NewAchievementRepo(db)
	statsRepo := pgRepo.NewStatsRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Сервис демо-токенов
	jwtService, err := auth.NewJWTService(cfg.Auth.TokenSecret, cfg.Auth.TokenExpiryHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Почта: noop, пока не сконфигурирован провайдер.
	// Демо-forgot-password при noop ничего не отправляет.
	var emailService service.EmailService = &service.NoopEmailService{}
	if cfg.Email.APIKey != "" {
		resendService, errEmail := service.NewResendEmailService(cfg.Email.APIKey, cfg.Email.From)
		if errEmail != nil {
			log.Printf("Ошибка инициализации Resend, остаёмся на noop: %v", errEmail)
		} else {
			log.Println("Resend email provider сконфигурирован")
			emailService = resendService
		}
	}

	// Лента результатов
	scoreHub := ws.NewHub()
	go scoreHub.Run()

	// Инициализируем сервисы
	authService := service.NewAuthService(jwtService, emailService)
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo)
	scoreService := service.NewScoreService(scoreRepo, scoreHub)
	achievementService := service.NewAchievementService(achievementRepo)
	statsService := service.NewStatsService(statsRepo)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	statsHandler := handler.NewStatsHandler(statsService)
	wsHandler := handler.NewWSHandler(scoreHub, cfg.WebSocket)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:5000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Демо-аутентификация: список учёток захардкожен, БД не используется
		authGroup := api.Group("/auth")
		authGroup.Use(rateLimiter.Limit(middleware.AuthRateLimitConfig()))
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		}

		api.GET("/health", authHandler.Health)

		// Категории игр
		api.GET("/categories", categoryHandler.ListCategories)
		api.POST("/categories", authMiddleware.RequireAuth(), categoryHandler.CreateCategory)

		// Результаты и достижения
		api.POST("/scores", authMiddleware.RequireAuth(), scoreHandler.RecordScore)
		api.POST("/achievements", authMiddleware.RequireAuth(), achievementHandler.AwardAchievement)

		// Данные пользователя для дашборда
		users := api.Group("/users/:id")
		users.Use(middleware.ExtractUintParam("id", "userID"))
		{
			users.GET("/scores", scoreHandler.GetUserScores)
			users.GET("/scores/best", scoreHandler.GetUserBestScores)
			users.GET("/scores/export", authMiddleware.RequireAuth(), scoreHandler.ExportUserScores)
			users.GET("/achievements", achievementHandler.GetUserAchievements)
			users.GET("/stats", statsHandler.GetUserStats)
		}
	}

	// Лента результатов
	router.GET("/ws", wsHandler.HandleConnection)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Останавливаем ленту результатов
	scoreHub.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
