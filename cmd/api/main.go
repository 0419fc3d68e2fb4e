package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Remarks/internal/handler/http"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/auth"
	redisclient "github.com/mikiasgoitom/Remarks/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Remarks/internal/infrastructure/database"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/metrics"
	passwordservice "github.com/mikiasgoitom/Remarks/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/repository/gormrepo"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/store"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Remarks/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewSlogLoggerTo(os.Stdout, appConfig.LogLevel)
	slog.SetDefault(appLogger.Slog())

	if appConfig.JWTSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}

	// Register custom validators
	if err := validator.RegisterCustomValidators(); err != nil {
		appLogger.Fatalf("Failed to register validators: %v", err)
	}

	// Relational store: users, posts and, by default, remarks
	db, err := database.OpenSQL(database.SQLOptions{
		Driver:       appConfig.DBDriver,
		DSN:          appConfig.DBDSN,
		LogLevel:     appConfig.LogLevel,
		MaxOpenConns: appConfig.DBMaxOpenConns,
		MaxIdleConns: appConfig.DBMaxIdleConns,
		Logger:       appLogger.Slog(),
	})
	if err != nil {
		appLogger.Fatalf("Failed to open %s database: %v", appConfig.DBDriver, err)
	}
	defer database.CloseSQL(db)
	if err := gormrepo.Migrate(db); err != nil {
		appLogger.Fatalf("Failed to migrate database: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := gormrepo.NewUserRepository(db)
	postRepo := gormrepo.NewPostRepository(db)

	var remarkRepo contract.IRemarkRepository = gormrepo.NewRemarkRepository(db)
	var subjectLister usecase.RemarkedSubjectLister
	if appConfig.StoreDriver == config.StoreMongo {
		if appConfig.MongoURI == "" {
			appLogger.Fatalf("MONGODB_URI environment variable not set")
		}
		mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
		if err != nil {
			appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()

		mongoRemarks := mongodb.NewRemarkRepository(mongoClient.Client.Database(appConfig.MongoDBName), uuidgen.NewGenerator())
		if err := mongoRemarks.EnsureIndexes(context.Background()); err != nil {
			appLogger.Fatalf("Failed to create remark indexes: %v", err)
		}
		remarkRepo = mongoRemarks
		subjectLister = mongoRemarks
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()

	// Dependency Injection: Usecases
	remarkUsecase := usecase.NewRemarkUsecase(remarkRepo, auth.NewContextActorResolver(), appLogger)
	remarkUsecase.SetRecorder(metrics.NewRemarkMetrics(prometheus.DefaultRegisterer))
	if subjectLister != nil {
		remarkUsecase.SetSubjectLister(subjectLister)
	}
	userUsecase := usecase.NewUserUsecase(userRepo, remarkUsecase, hasher, jwtService, appLogger, appConfig, appValidator)
	postUsecase := usecase.NewPostUsecase(postRepo, remarkUsecase, appLogger)

	// Optional Dependency Injection: Redis token denylist
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		userUsecase.SetDenylist(store.NewTokenDenylistStore(rdb))
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, postUsecase, remarkUsecase, handlerHttp.RouterOptions{
		AllowOrigins:       appConfig.CORSAllowOrigins,
		RateLimitPerSecond: appConfig.RateLimitPerSec,
	})
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s (remark store: %s)", appConfig.Port, appConfig.StoreDriver)
	if err := router.Run(":" + appConfig.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
