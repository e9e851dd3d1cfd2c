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

type LeaveHandler struct {
	leaveService service.LeaveService
	logger       *logger.Logger
}

func NewLeaveHandler(leaveService service.LeaveService, logger *logger.Logger) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
		logger:       logger,
	}
}

// @Summary Create a leave request
// @Tags Leave
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave request"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave [post]
// @Security ApiKeyAuth
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.leaveService.CreateLeave(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a leave request by ID
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /leave/{id} [get]
// @Security ApiKeyAuth
func (h *LeaveHandler) GetLeave(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("leave ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.leaveService.GetLeave(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List leave requests
// @Tags Leave
// @Produce json
// @Param filter query dto.LeaveFilter false "Filter"
// @Success 200 {object} dto.ListLeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave [get]
// @Security ApiKeyAuth
func (h *LeaveHandler) ListLeave(c *gin.Context) {
	var filter dto.LeaveFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.leaveService.ListLeave(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update a leave request
// @Description Updates a pending leave request
// @Tags Leave
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param leave body dto.UpdateLeaveRequest true "Leave update request"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /leave/{id} [put]
// @Security ApiKeyAuth
func (h *LeaveHandler) UpdateLeave(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("leave ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.leaveService.UpdateLeave(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete a leave request
// @Tags Leave
// @Param id path string true "Leave ID"
// @Success 204 "No Content"
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave/{id} [delete]
// @Security ApiKeyAuth
func (h *LeaveHandler) DeleteLeave(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("leave ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.leaveService.DeleteLeave(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Approve a leave request
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave/{id}/approve [post]
// @Security ApiKeyAuth
func (h *LeaveHandler) ApproveLeave(c *gin.Context) {
	h.decide(c, h.leaveService.ApproveLeave)
}

// @Summary Reject a leave request
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave/{id}/reject [post]
// @Security ApiKeyAuth
func (h *LeaveHandler) RejectLeave(c *gin.Context) {
	h.decide(c, h.leaveService.RejectLeave)
}

// @Summary Cancel a leave request
// @Tags Leave
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /leave/{id}/cancel [post]
// @Security ApiKeyAuth
func (h *LeaveHandler) CancelLeave(c *gin.Context) {
	h.decide(c, h.leaveService.CancelLeave)
}

func (h *LeaveHandler) decide(c *gin.Context, fn func(ctx context.Context, id string) (*dto.LeaveResponse, error)) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("leave ID is required").
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
