package alerts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cryptofolio/internal/shared/middleware"
	"cryptofolio/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) ListMyAlerts(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	list, err := c.service.ListUserAlerts(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch alerts", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Alerts retrieved successfully", list, nil)
}

func (c *Controller) CreateAlert(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	alert, err := c.service.CreateAlert(ctx.Request.Context(), userID, &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create alert", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Alert created successfully", alert, nil)
}

func (c *Controller) DeleteAlert(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	alertID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid alert ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteAlert(ctx.Request.Context(), uint(alertID), userID); err != nil {
		switch err {
		case ErrAlertNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Alert not found", nil, nil)
		case ErrNotAlertOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Alert does not belong to user", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete alert", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Alert deleted successfully", nil, nil)
}
