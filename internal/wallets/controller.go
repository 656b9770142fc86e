package wallets

import (
	"net/http"

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

func (c *Controller) ListMyWallets(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	list, err := c.service.ListUserWallets(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch wallets", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Wallets retrieved successfully", list, nil)
}

func (c *Controller) ListAllWallets(ctx *gin.Context) {
	list, err := c.service.ListAllWallets(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch wallets", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Wallets retrieved successfully", list, nil)
}

func (c *Controller) CreateWallet(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	wallet, err := c.service.CreateWallet(ctx.Request.Context(), userID, &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create wallet", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Wallet created successfully", wallet, nil)
}
