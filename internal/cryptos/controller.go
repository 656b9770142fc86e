package cryptos

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/utils/response"
)

type Controller interface {
	ListCryptos(c *gin.Context)
	TopCryptos(c *gin.Context)
	GetCrypto(c *gin.Context)
	CreateCrypto(c *gin.Context)
	UpdateCrypto(c *gin.Context)
	DeleteCrypto(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListCryptos(c *gin.Context) {
	list, err := ctrl.service.ListCryptos(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch cryptos", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cryptos retrieved successfully", list, nil)
}

func (ctrl *controller) TopCryptos(c *gin.Context) {
	list, err := ctrl.service.TopCryptos(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch top cryptos", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Top cryptos retrieved successfully", list, nil)
}

func (ctrl *controller) GetCrypto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid crypto ID", nil, err.Error())
		return
	}

	crypto, err := ctrl.service.GetCrypto(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrCryptoNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Crypto not found", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to fetch crypto", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Crypto retrieved successfully", crypto, nil)
}

func (ctrl *controller) CreateCrypto(c *gin.Context) {
	var req CreateCryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	crypto, err := ctrl.service.CreateCrypto(c.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create crypto", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Crypto created successfully", crypto, nil)
}

func (ctrl *controller) UpdateCrypto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid crypto ID", nil, err.Error())
		return
	}

	var req UpdateCryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	crypto, err := ctrl.service.UpdateCrypto(c.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrCryptoNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Crypto not found", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update crypto", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Crypto updated successfully", crypto, nil)
}

func (ctrl *controller) DeleteCrypto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid crypto ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteCrypto(c.Request.Context(), id); err != nil {
		switch err {
		case ErrCryptoNotFound:
			response.RespondJSON(c, "error", http.StatusNotFound, "Crypto not found", nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete crypto", nil, nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Crypto deleted successfully", nil, nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
