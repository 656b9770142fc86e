package wallets

import (
	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
)

func SetupWalletRoutes(router *gin.RouterGroup, controller *Controller, authMW gin.HandlerFunc) {
	// User routes - wallets are always scoped to the caller
	userWallets := router.Group("/wallets")
	userWallets.Use(authMW)
	{
		userWallets.GET("", controller.ListMyWallets)
		userWallets.POST("", controller.CreateWallet)
	}

	// Admin routes - every wallet in the system
	adminWallets := router.Group("/admin/wallets")
	adminWallets.Use(authMW, middleware.RequireAdmin())
	{
		adminWallets.GET("", controller.ListAllWallets)
	}
}
