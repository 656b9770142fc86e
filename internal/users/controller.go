package users

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

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

func (c *Controller) ListUsers(ctx *gin.Context) {
	list, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch users", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Users retrieved successfully", list, nil)
}

func (c *Controller) GetUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	user, err := c.service.GetUser(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to fetch user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User retrieved successfully", user, nil)
}

func (c *Controller) CreateUser(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	user, err := c.service.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrEmailAlreadyUsed:
			response.RespondJSON(ctx, "error", http.StatusConflict, "User with this email already exists", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "User and wallet created successfully", user, nil)
}

func (c *Controller) UpdateUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	user, err := c.service.UpdateUser(ctx.Request.Context(), id, &req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		case ErrEmailAlreadyUsed:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Email already in use", nil, nil)
		case ErrNoFieldsToUpdate:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "No fields to update", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User updated successfully", user, nil)
}

func (c *Controller) DeleteUser(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteUser(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrUserNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "User not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete user", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "User deleted successfully", nil, nil)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
