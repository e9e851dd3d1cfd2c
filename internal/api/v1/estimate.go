package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	estimateService service.EstimateService
	logger          *logger.Logger
}

func NewEstimateHandler(estimateService service.EstimateService, logger *logger.Logger) *EstimateHandler {
	return &EstimateHandler{
		estimateService: estimateService,
		logger:          logger,
	}
}

// @Summary Create a new estimate
// @Tags Estimates
// @Accept json
// @Produce json
// @Param estimate body dto.CreateEstimateRequest true "Estimate request"
// @Success 201 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates [post]
// @Security ApiKeyAuth
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var req dto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.estimateService.CreateEstimate(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get an estimate by ID
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /estimates/{id} [get]
// @Security ApiKeyAuth
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("estimate ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.estimateService.GetEstimate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List estimates
// @Tags Estimates
// @Produce json
// @Param filter query dto.EstimateFilter false "Filter"
// @Success 200 {object} dto.ListEstimatesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates [get]
// @Security ApiKeyAuth
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var filter dto.EstimateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.estimateService.ListEstimates(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update an estimate
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Param estimate body dto.UpdateEstimateRequest true "Estimate update request"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /estimates/{id} [put]
// @Security ApiKeyAuth
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("estimate ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.estimateService.UpdateEstimate(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete an estimate
// @Tags Estimates
// @Param id path string true "Estimate ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /estimates/{id} [delete]
// @Security ApiKeyAuth
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("estimate ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.estimateService.DeleteEstimate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Convert an estimate to an invoice
// @Description Creates an invoice from an accepted estimate and marks the estimate converted
// @Tags Estimates
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /estimates/{id}/convert [post]
// @Security ApiKeyAuth
func (h *EstimateHandler) ConvertToInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("estimate ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.estimateService.ConvertToInvoice(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
