package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/gin-gonic/gin"
)

type CatalogServiceHandler struct {
	catalogService service.CatalogService
	logger         *logger.Logger
}

func NewCatalogServiceHandler(catalogService service.CatalogService, logger *logger.Logger) *CatalogServiceHandler {
	return &CatalogServiceHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// @Summary Create a new service
// @Tags Services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service request"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /services [post]
// @Security ApiKeyAuth
func (h *CatalogServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.catalogService.CreateService(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get a service by ID
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [get]
// @Security ApiKeyAuth
func (h *CatalogServiceHandler) GetService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("service ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List services
// @Tags Services
// @Produce json
// @Param filter query types.QueryFilter false "Filter"
// @Success 200 {object} dto.ListServicesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /services [get]
// @Security ApiKeyAuth
func (h *CatalogServiceHandler) ListServices(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.catalogService.ListServices(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update a service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Service update request"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [put]
// @Security ApiKeyAuth
func (h *CatalogServiceHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("service ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.catalogService.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete a service
// @Tags Services
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /services/{id} [delete]
// @Security ApiKeyAuth
func (h *CatalogServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("service ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
