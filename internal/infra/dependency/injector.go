// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/ledgertree/backend/config"
	"github.com/ledgertree/backend/internal/application/usecase/auth"
	"github.com/ledgertree/backend/internal/application/usecase/category"
	"github.com/ledgertree/backend/internal/application/usecase/summary"
	"github.com/ledgertree/backend/internal/application/usecase/transaction"
	"github.com/ledgertree/backend/internal/infra/server/router"
	"github.com/ledgertree/backend/internal/integration/adapters"
	"github.com/ledgertree/backend/internal/integration/entrypoint/controller"
	"github.com/ledgertree/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgertree/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create category use cases
	authorizer := category.NewAuthorizer(categoryRepo)
	seedDefaultsUseCase := category.NewSeedUserDefaultsUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, authorizer)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, authorizer)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, authorizer)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, seedDefaultsUseCase)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, authorizer)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, authorizer)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create summary use case
	getSummaryUseCase := summary.NewGetSummaryUseCase(transactionRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)

	summaryController := controller.NewSummaryController(getSummaryUseCase)

	// Create middleware. Test environments get a limit high enough that
	// scenarios never trip it.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
