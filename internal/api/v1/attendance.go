package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService service.AttendanceService
	logger            *logger.Logger
}

func NewAttendanceHandler(attendanceService service.AttendanceService, logger *logger.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// @Summary Record attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param attendance body dto.CreateAttendanceRequest true "Attendance request"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /attendance [post]
// @Security ApiKeyAuth
func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.attendanceService.CreateAttendance(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get an attendance record by ID
// @Tags Attendance
// @Produce json
// @Param id path string true "Attendance ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /attendance/{id} [get]
// @Security ApiKeyAuth
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("attendance ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.attendanceService.GetAttendance(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param filter query dto.AttendanceFilter false "Filter"
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /attendance [get]
// @Security ApiKeyAuth
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	var filter dto.AttendanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.attendanceService.ListAttendance(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update an attendance record
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID"
// @Param attendance body dto.UpdateAttendanceRequest true "Attendance update request"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /attendance/{id} [put]
// @Security ApiKeyAuth
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("attendance ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.attendanceService.UpdateAttendance(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete an attendance record
// @Tags Attendance
// @Param id path string true "Attendance ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /attendance/{id} [delete]
// @Security ApiKeyAuth
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("attendance ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
