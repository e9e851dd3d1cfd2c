package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	activityService  service.ActivityService
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, activityService service.ActivityService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		activityService:  activityService,
		logger:           logger,
	}
}

// @Summary Get dashboard statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /dashboard/stats [get]
// @Security ApiKeyAuth
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List activity log entries
// @Tags Dashboard
// @Produce json
// @Param filter query dto.ActivityFilter false "Filter"
// @Success 200 {object} dto.ListActivityResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /activity [get]
// @Security ApiKeyAuth
func (h *DashboardHandler) ListActivity(c *gin.Context) {
	var filter dto.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.activityService.ListActivity(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
