package transactions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/shared/middleware"
	"cryptofolio/internal/shared/utils/response"
	"cryptofolio/internal/wallets"
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

func (c *Controller) ListMyTransactions(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	list, err := c.service.ListUserTransactions(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch transactions", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Transactions retrieved successfully", list, nil)
}

func (c *Controller) ListAllTransactions(ctx *gin.Context) {
	list, err := c.service.ListAllTransactions(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch transactions", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Transactions retrieved successfully", list, nil)
}

func (c *Controller) CreateTransaction(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Wallet and Crypto are required", nil, err.Error())
		return
	}

	txn, err := c.service.CreateTransaction(ctx.Request.Context(), userID, &req)
	if err != nil {
		switch err {
		case wallets.ErrWalletNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Wallet not found", nil, nil)
		case wallets.ErrNotWalletOwner:
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Wallet does not belong to user", nil, nil)
		case cryptos.ErrCryptoNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Crypto not found", nil, nil)
		case ErrInsufficientHolding:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Insufficient holding to sell", nil, nil)
		case ErrInsufficientFunds:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Insufficient wallet balance", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to add transaction", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Transaction added successfully", txn, nil)
}
