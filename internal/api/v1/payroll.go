package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type PayrollHandler struct {
	payrollService service.PayrollService
	logger         *logger.Logger
}

func NewPayrollHandler(payrollService service.PayrollService, logger *logger.Logger) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
		logger:         logger,
	}
}

// @Summary Create a payroll entry
// @Tags Payroll
// @Accept json
// @Produce json
// @Param payroll body dto.CreatePayrollRequest true "Payroll request"
// @Success 201 {object} dto.PayrollResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payroll [post]
// @Security ApiKeyAuth
func (h *PayrollHandler) CreatePayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.CreatePayroll(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a payroll entry by ID
// @Tags Payroll
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payroll/{id} [get]
// @Security ApiKeyAuth
func (h *PayrollHandler) GetPayroll(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("payroll ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.GetPayroll(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List payroll entries
// @Tags Payroll
// @Produce json
// @Param filter query dto.PayrollFilter false "Filter"
// @Success 200 {object} dto.ListPayrollResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payroll [get]
// @Security ApiKeyAuth
func (h *PayrollHandler) ListPayroll(c *gin.Context) {
	var filter dto.PayrollFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.ListPayroll(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update a payroll entry
// @Description Updates a draft payroll entry and recomputes its net salary
// @Tags Payroll
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param payroll body dto.UpdatePayrollRequest true "Payroll update request"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /payroll/{id} [put]
// @Security ApiKeyAuth
func (h *PayrollHandler) UpdatePayroll(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("payroll ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.UpdatePayroll(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete a payroll entry
// @Tags Payroll
// @Param id path string true "Payroll ID"
// @Success 204 "No Content"
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payroll/{id} [delete]
// @Security ApiKeyAuth
func (h *PayrollHandler) DeletePayroll(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("payroll ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.payrollService.DeletePayroll(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Process a payroll entry
// @Tags Payroll
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payroll/{id}/process [post]
// @Security ApiKeyAuth
func (h *PayrollHandler) ProcessPayroll(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("payroll ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.ProcessPayroll(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Mark a payroll entry paid
// @Tags Payroll
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /payroll/{id}/pay [post]
// @Security ApiKeyAuth
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("payroll ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.payrollService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
