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

// LedgerCommander defines the write-side operations used by TransactionHandler.
type LedgerCommander interface {
	AddTransaction(ctx context.Context, cmd cqrs.AddTransactionCommand) (*models.Transaction, error)
	RemoveTransaction(ctx context.Context, cmd cqrs.RemoveTransactionCommand) error
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, q cqrs.GetTransactionQuery) (*models.Transaction, error)
}

type TransactionHandler struct {
	commands LedgerCommander
	queries  TransactionQuerier
}

// AddTransactionRequest mirrors the wire schema: amount is required and
// accepted as either a JSON number or a numeric string, but unlike the
// initial balance it must parse to a finite number.
type AddTransactionRequest struct {
	Date   string `json:"date" validate:"required"`
	Object string `json:"object" validate:"required"`
	Amount any    `json:"amount" validate:"required"`
}

type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

func NewTransactionHandler(commands LedgerCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	user := c.Param("user")

	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	amount, ok := utils.ParseAmount(req.Amount)
	if !ok {
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be a number")
		return
	}

	transaction, err := h.commands.AddTransaction(c.Request.Context(), cqrs.AddTransactionCommand{
		User:   user,
		Date:   req.Date,
		Object: req.Object,
		Amount: amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		case errors.Is(err, models.ErrDuplicateTransaction):
			middleware.RespondWithError(c, http.StatusConflict, "Transaction already exists")
		case errors.Is(err, models.ErrInvalidAmount):
			middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be a number")
		case errors.Is(err, models.ErrMissingParameter):
			middleware.RespondWithError(c, http.StatusBadRequest, "Missing parameters")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to add transaction")
		}
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{
		User: c.Param("user"),
	})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		} else {
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list transactions")
		}
		return
	}

	c.JSON(http.StatusOK, ListTransactionsResponse{Transactions: transactions})
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.queries.GetTransaction(c.Request.Context(), cqrs.GetTransactionQuery{
		User:          c.Param("user"),
		TransactionID: c.Param("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		case errors.Is(err, models.ErrTransactionNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Transaction does not exist")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get transaction")
		}
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) RemoveTransaction(c *gin.Context) {
	err := h.commands.RemoveTransaction(c.Request.Context(), cqrs.RemoveTransactionCommand{
		User:          c.Param("user"),
		TransactionID: c.Param("id"),
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAccountNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "User does not exist")
		case errors.Is(err, models.ErrTransactionNotFound):
			middleware.RespondWithError(c, http.StatusNotFound, "Transaction does not exist")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to remove transaction")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
