package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type OpportunityHandler struct {
	opportunityService service.OpportunityService
	logger             *logger.Logger
}

func NewOpportunityHandler(opportunityService service.OpportunityService, logger *logger.Logger) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		logger:             logger,
	}
}

// @Summary Create a new opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param opportunity body dto.CreateOpportunityRequest true "Opportunity request"
// @Success 201 {object} dto.OpportunityResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /opportunities [post]
// @Security ApiKeyAuth
func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	var req dto.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.opportunityService.CreateOpportunity(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get an opportunity by ID
// @Tags Opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} dto.OpportunityResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /opportunities/{id} [get]
// @Security ApiKeyAuth
func (h *OpportunityHandler) GetOpportunity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("opportunity ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List opportunities
// @Tags Opportunities
// @Produce json
// @Param filter query dto.OpportunityFilter false "Filter"
// @Success 200 {object} dto.ListOpportunitiesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /opportunities [get]
// @Security ApiKeyAuth
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	var filter dto.OpportunityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.opportunityService.ListOpportunities(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update an opportunity
// @Tags Opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param opportunity body dto.UpdateOpportunityRequest true "Opportunity update request"
// @Success 200 {object} dto.OpportunityResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /opportunities/{id} [put]
// @Security ApiKeyAuth
func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("opportunity ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete an opportunity
// @Tags Opportunities
// @Param id path string true "Opportunity ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /opportunities/{id} [delete]
// @Security ApiKeyAuth
func (h *OpportunityHandler) DeleteOpportunity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("opportunity ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.opportunityService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
