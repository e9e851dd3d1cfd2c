package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	receiptService service.ReceiptService
	logger         *logger.Logger
}

func NewReceiptHandler(receiptService service.ReceiptService, logger *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// @Summary Issue a receipt
// @Tags Receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt request"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /receipts [post]
// @Security ApiKeyAuth
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a receipt by ID
// @Tags Receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /receipts/{id} [get]
// @Security ApiKeyAuth
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("receipt ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List receipts
// @Tags Receipts
// @Produce json
// @Param filter query dto.ReceiptFilter false "Filter"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /receipts [get]
// @Security ApiKeyAuth
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	var filter dto.ReceiptFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.receiptService.ListReceipts(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete a receipt
// @Tags Receipts
// @Param id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /receipts/{id} [delete]
// @Security ApiKeyAuth
func (h *ReceiptHandler) DeleteReceipt(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("receipt ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
