package alerts

import (
	"github.com/gin-gonic/gin"
)

func SetupAlertRoutes(router *gin.RouterGroup, controller *Controller, authMW gin.HandlerFunc) {
	alerts := router.Group("/alerts")
	alerts.Use(authMW)
	{
		alerts.GET("", controller.ListMyAlerts)
		alerts.POST("", controller.CreateAlert)
		alerts.DELETE("/:id", controller.DeleteAlert)
	}
}
