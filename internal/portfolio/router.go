package portfolio

import (
	"github.com/gin-gonic/gin"
)

func SetupPortfolioRoutes(router *gin.RouterGroup, controller *Controller, authMW gin.HandlerFunc) {
	portfolio := router.Group("/portfolio")
	portfolio.Use(authMW)
	{
		portfolio.GET("", controller.GetMyPortfolio)
		portfolio.GET("/wallet/:walletId", controller.GetWalletPortfolio)
	}
}
