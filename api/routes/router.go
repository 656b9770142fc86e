// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cryptofolio/internal/alerts"
	"cryptofolio/internal/auth"
	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/portfolio"
	"cryptofolio/internal/shared/config"
	"cryptofolio/internal/shared/constants"
	"cryptofolio/internal/shared/database"
	"cryptofolio/internal/transactions"
	"cryptofolio/internal/users"
	"cryptofolio/internal/wallets"
	"cryptofolio/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier alerts.Notifier

	cacheService  cache.Service
	authGuard     gin.HandlerFunc
	walletService wallets.Service
	cryptoService cryptos.Service
	alertService  alerts.Service
}

// NewRouter creates a new router instance. The notifier receives triggered
// price alerts; pass nil to disable outbound notifications.
func NewRouter(cfg *config.Config, db *database.DB, notifier alerts.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.cacheService = cache.NewService(r.db.GetRedisClient())

	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth first: every protected group needs the guard it produces
		r.setupAuthRoutes(api)

		r.setupUserRoutes(api)

		// Wallets before portfolio and transactions for ownership checks
		r.setupWalletRoutes(api)

		r.setupCryptoRoutes(api)
		r.setupPortfolioRoutes(api)
		r.setupTransactionRoutes(api)
		r.setupAlertRoutes(api)
	}
}

// AlertService exposes the alert service for the background evaluation job.
// Only valid after SetupRoutes has run.
func (r *Router) AlertService() alerts.Service {
	return r.alertService
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cryptofolio-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cryptofolio-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes and builds the access guard
// every protected route group shares
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	tokenStore := auth.NewTokenStore(r.db.GetRedisClient())
	authService := auth.NewService(authRepo, tokenStore, r.config)
	authController := auth.NewController(authService)

	r.authGuard = auth.AccessGuard(authService)

	authRouter := auth.NewRouter(authController, r.authGuard)
	authRouter.SetupRoutes(rg)
}

func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	userService := users.NewService(userRepo)
	userController := users.NewController(userService)

	users.SetupUserRoutes(rg, userController, r.authGuard)
}

func (r *Router) setupWalletRoutes(rg *gin.RouterGroup) {
	walletRepo := wallets.NewRepository(r.db.GetPostgreSQL())
	r.walletService = wallets.NewService(walletRepo)
	walletController := wallets.NewController(r.walletService)

	wallets.SetupWalletRoutes(rg, walletController, r.authGuard)
}

func (r *Router) setupCryptoRoutes(rg *gin.RouterGroup) {
	cryptoRepo := cryptos.NewRepository(r.db.GetPostgreSQL())
	r.cryptoService = cryptos.NewService(cryptoRepo, r.cacheService, constants.TTL_CRYPTOS_LIST)
	cryptoController := cryptos.NewController(r.cryptoService)

	cryptos.SetupCryptoRoutes(rg, cryptoController, r.authGuard)
}

func (r *Router) setupPortfolioRoutes(rg *gin.RouterGroup) {
	portfolioRepo := portfolio.NewRepository(r.db.GetPostgreSQL())
	portfolioService := portfolio.NewService(portfolioRepo, r.walletService)
	portfolioController := portfolio.NewController(portfolioService)

	portfolio.SetupPortfolioRoutes(rg, portfolioController, r.authGuard)
}

func (r *Router) setupTransactionRoutes(rg *gin.RouterGroup) {
	txnRepo := transactions.NewRepository(r.db.GetPostgreSQL())
	txnService := transactions.NewService(txnRepo, r.walletService, r.cryptoService)
	txnController := transactions.NewController(txnService)

	transactions.SetupTransactionRoutes(rg, txnController, r.authGuard)
}

func (r *Router) setupAlertRoutes(rg *gin.RouterGroup) {
	alertRepo := alerts.NewRepository(r.db.GetPostgreSQL())
	r.alertService = alerts.NewService(alertRepo, r.notifier)
	alertController := alerts.NewController(r.alertService)

	alerts.SetupAlertRoutes(rg, alertController, r.authGuard)
}
