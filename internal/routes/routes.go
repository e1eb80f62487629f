package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"career-finder/internal/controllers"
	"career-finder/internal/repositories"
	"career-finder/internal/services"
	"career-finder/pkg/config"
	"career-finder/pkg/middleware"
	"career-finder/pkg/service"
)

// InitRouter собирает весь граф зависимостей и регистрирует маршруты.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	logger.Info("InitRouter: регистрация маршрутов")

	// --- РЕПОЗИТОРИИ ---
	txManager := repositories.NewTxManager(dbConn)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	profileRepo := repositories.NewProfileRepository(dbConn, logger)
	companyRepo := repositories.NewCompanyRepository(dbConn, logger)
	vacancyRepo := repositories.NewVacancyRepository(dbConn, logger)
	applicationRepo := repositories.NewApplicationRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- СЕРВИСЫ ---
	// Без SMTP-учётки письма уходят в лог, а не наружу.
	var notificationService services.NotificationServiceInterface
	if cfg.SMTP.Username != "" {
		notificationService = services.NewSMTPNotificationService(cfg.SMTP, logger)
	} else {
		notificationService = services.NewMockNotificationService(logger)
	}
	authService := services.NewAuthService(
		userRepo, profileRepo, companyRepo, cacheRepo,
		txManager, notificationService, &cfg.Auth, logger,
	)
	vacancyService := services.NewVacancyService(
		vacancyRepo, applicationRepo, companyRepo, profileRepo,
		userRepo, notificationService, logger,
	)
	companyService := services.NewCompanyService(companyRepo)
	profileService := services.NewProfileService(profileRepo, applicationRepo)
	searchService := services.NewSearchService(vacancyRepo, companyRepo)
	statsService := services.NewStatsService(vacancyRepo, companyRepo)

	// --- КОНТРОЛЛЕРЫ ---
	authController := controllers.NewAuthController(authService, jwtSvc, logger)
	vacancyController := controllers.NewVacancyController(vacancyService, searchService, authService, logger)
	companyController := controllers.NewCompanyController(companyService, searchService, logger)
	profileController := controllers.NewProfileController(profileService, logger)
	apiController := controllers.NewApiController(statsService, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authService, logger)

	// --- МАРШРУТЫ ---
	runAuthRouter(e, authController, authMW)
	runVacancyRouter(e, vacancyController, authMW)
	runCompanyRouter(e, companyController, authMW)
	runProfileRouter(e, profileController, authMW)
	runApiRouter(e, apiController)
}
