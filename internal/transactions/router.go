package transactions

import (
	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
)

func SetupTransactionRoutes(router *gin.RouterGroup, controller *Controller, authMW gin.HandlerFunc) {
	txns := router.Group("/transactions")
	txns.Use(authMW)
	{
		txns.GET("", controller.ListMyTransactions)
		txns.POST("", controller.CreateTransaction)
	}

	adminTxns := router.Group("/admin/transactions")
	adminTxns.Use(authMW, middleware.RequireAdmin())
	{
		adminTxns.GET("", controller.ListAllTransactions)
	}
}
