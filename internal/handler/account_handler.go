package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/middleware"
	"github.com/budgetbank/budget-api/internal/models"
	"github.com/budgetbank/budget-api/internal/utils"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error)
	DeleteAccount(ctx context.Context, cmd cqrs.DeleteAccountCommand) error
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// CreateAccountRequest mirrors the wire schema: balance is optional and
// accepted as either a JSON number or a numeric string; a malformed value
// coerces to 0 rather than failing the request.
type CreateAccountRequest struct {
	User        string `json:"user" validate:"required"`
	Currency    string `json:"currency" validate:"required"`
	Description string `json:"description"`
	Balance     any    `json:"balance"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		User:           req.User,
		Currency:       req.Currency,
		Description:    req.Description,
		InitialBalance: utils.CoerceAmount(req.Balance),
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateUser):
			middleware.RespondWithError(c, http.StatusConflict, "User already exists")
		case errors.Is(err, models.ErrMissingParameter):
			middleware.RespondWithError(c, http.StatusBadRequest, "Missing parameters")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{
		User: c.Param("user"),
	})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		} else {
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		}
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	err := h.commands.DeleteAccount(c.Request.Context(), cqrs.DeleteAccountCommand{
		User: c.Param("user"),
	})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		} else {
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
