package cryptos

import (
	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
)

func SetupCryptoRoutes(router *gin.RouterGroup, controller Controller, authMW gin.HandlerFunc) {
	// Public routes - anyone can browse market data
	publicCryptos := router.Group("/cryptos")
	{
		publicCryptos.GET("", controller.ListCryptos)
		publicCryptos.GET("/top5", controller.TopCryptos)
		publicCryptos.GET("/:id", controller.GetCrypto)
	}

	// Admin routes - listing management
	adminCryptos := router.Group("/admin/cryptos")
	adminCryptos.Use(authMW, middleware.RequireAdmin())
	{
		adminCryptos.POST("", controller.CreateCrypto)
		adminCryptos.PUT("/:id", controller.UpdateCrypto)
		adminCryptos.DELETE("/:id", controller.DeleteCrypto)
	}
}
