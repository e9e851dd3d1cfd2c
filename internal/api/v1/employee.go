package v1

import (
	"net/http"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
	logger          *logger.Logger
}

func NewEmployeeHandler(employeeService service.EmployeeService, logger *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		logger:          logger,
	}
}

// @Summary Create a new employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee request"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /employees [post]
// @Security ApiKeyAuth
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary Get an employee by ID
// @Tags Employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /employees/{id} [get]
// @Security ApiKeyAuth
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("employee ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List employees
// @Tags Employees
// @Produce json
// @Param filter query dto.EmployeeFilter false "Filter"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /employees [get]
// @Security ApiKeyAuth
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var filter dto.EmployeeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.employeeService.ListEmployees(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Employee update request"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /employees/{id} [put]
// @Security ApiKeyAuth
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("employee ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Delete an employee
// @Tags Employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /employees/{id} [delete]
// @Security ApiKeyAuth
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("employee ID is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
