package v1

import (
	"context"
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
	logger         *logger.Logger
}

func NewExpenseHandler(expenseService service.ExpenseService, logger *logger.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// @Summary Create a new expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense request"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses [post]
// @Security ApiKeyAuth
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get an expense by ID
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [get]
// @Security ApiKeyAuth
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("expense ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.expenseService.GetExpense(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param filter query dto.ExpenseFilter false "Filter"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses [get]
// @Security ApiKeyAuth
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var filter dto.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.expenseService.ListExpenses(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Expense update request"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [put]
// @Security ApiKeyAuth
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("expense ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.expenseService.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete an expense
// @Tags Expenses
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /expenses/{id} [delete]
// @Security ApiKeyAuth
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("expense ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Approve an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses/{id}/approve [post]
// @Security ApiKeyAuth
func (h *ExpenseHandler) ApproveExpense(c *gin.Context) {
	h.transition(c, h.expenseService.ApproveExpense)
}

// @Summary Reject an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses/{id}/reject [post]
// @Security ApiKeyAuth
func (h *ExpenseHandler) RejectExpense(c *gin.Context) {
	h.transition(c, h.expenseService.RejectExpense)
}

// @Summary Mark an expense paid
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /expenses/{id}/pay [post]
// @Security ApiKeyAuth
func (h *ExpenseHandler) MarkExpensePaid(c *gin.Context) {
	h.transition(c, h.expenseService.MarkExpensePaid)
}

func (h *ExpenseHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (*dto.ExpenseResponse, error)) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("expense ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := fn(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
