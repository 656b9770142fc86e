package portfolio

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
	"cryptofolio/internal/shared/utils/response"
	"cryptofolio/internal/wallets"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetMyPortfolio(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	holdings, err := c.service.GetUserPortfolio(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch portfolio", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Portfolio retrieved successfully", holdings, nil)
}

func (c *Controller) GetWalletPortfolio(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	walletID, err := strconv.ParseUint(ctx.Param("walletId"), 10, 32)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid wallet ID", nil, err.Error())
		return
	}

	holdings, err := c.service.GetWalletPortfolio(ctx.Request.Context(), uint(walletID), userID)
	if err != nil {
		switch err {
		case wallets.ErrWalletNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Wallet not found", nil, nil)
		case wallets.ErrNotWalletOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Wallet does not belong to user", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch portfolio", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Portfolio retrieved successfully", holdings, nil)
}
