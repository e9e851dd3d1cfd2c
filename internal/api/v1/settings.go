package v1

import (
	"net/http"
	"sort"

	"github.com/bizledger/bizledger/internal/api/dto"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/bizledger/bizledger/internal/rbac"
	"github.com/bizledger/bizledger/internal/service"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	rbacService     *rbac.Service
	logger          *logger.Logger
}

func NewSettingsHandler(settingsService service.SettingsService, rbacService *rbac.Service, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		rbacService:     rbacService,
		logger:          logger,
	}
}

// @Summary Get a setting by key
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /settings/{key} [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.Error(ierr.NewError("setting key is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	setting, err := h.settingsService.GetSetting(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingResponse(setting))
}

// @Summary List settings
// @Tags Settings
// @Produce json
// @Param category query string false "Category"
// @Success 200 {array} dto.SettingResponse
// @Router /settings [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingsService.ListSettings(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingResponses(settings))
}

// @Summary Create or update a setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param setting body dto.UpsertSettingRequest true "Setting"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings [put]
// @Security ApiKeyAuth
func (h *SettingsHandler) UpsertSetting(c *gin.Context) {
	var req dto.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	setting := req.ToSetting()
	if err := h.settingsService.UpsertSetting(c.Request.Context(), setting); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettingResponse(setting))
}

// @Summary Delete a setting
// @Tags Settings
// @Param key path string true "Setting key"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Router /settings/{key} [delete]
// @Security ApiKeyAuth
func (h *SettingsHandler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.Error(ierr.NewError("setting key is required").
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.settingsService.DeleteSetting(c.Request.Context(), key); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List document number formats
// @Tags Numbering
// @Produce json
// @Success 200 {array} dto.NumberFormatResponse
// @Router /settings/numbering [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) ListNumberFormats(c *gin.Context) {
	formats, err := h.settingsService.ListNumberFormats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNumberFormatResponses(formats))
}

// @Summary Create or update a document number format
// @Tags Numbering
// @Accept json
// @Produce json
// @Param format body dto.UpsertNumberFormatRequest true "Number format"
// @Success 200 {object} dto.NumberFormatResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings/numbering [put]
// @Security ApiKeyAuth
func (h *SettingsHandler) UpsertNumberFormat(c *gin.Context) {
	var req dto.UpsertNumberFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	format, err := h.settingsService.UpsertNumberFormat(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNumberFormatResponse(format))
}

// @Summary Get company information
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.CompanyInfo
// @Router /settings/company [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) GetCompanyInfo(c *gin.Context) {
	info, err := h.settingsService.GetCompanyInfo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// @Summary Update company information
// @Tags Settings
// @Accept json
// @Produce json
// @Param info body dto.UpdateCompanyInfoRequest true "Company info"
// @Success 200 {object} dto.CompanyInfo
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings/company [put]
// @Security ApiKeyAuth
func (h *SettingsHandler) UpdateCompanyInfo(c *gin.Context) {
	var req dto.UpdateCompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	info, err := h.settingsService.UpdateCompanyInfo(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// @Summary Get bank details
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.BankDetails
// @Router /settings/bank [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) GetBankDetails(c *gin.Context) {
	details, err := h.settingsService.GetBankDetails(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// @Summary Update bank details
// @Tags Settings
// @Accept json
// @Produce json
// @Param details body dto.UpdateBankDetailsRequest true "Bank details"
// @Success 200 {object} dto.BankDetails
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings/bank [put]
// @Security ApiKeyAuth
func (h *SettingsHandler) UpdateBankDetails(c *gin.Context) {
	var req dto.UpdateBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	details, err := h.settingsService.UpdateBankDetails(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// @Summary List roles and their permissions
// @Tags Settings
// @Produce json
// @Success 200 {array} dto.RolePermissionsResponse
// @Router /settings/roles [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) ListRoles(c *gin.Context) {
	roles := h.rbacService.Roles()

	items := lo.MapToSlice(roles, func(role types.UserRole, perms map[string][]string) *dto.RolePermissionsResponse {
		return &dto.RolePermissionsResponse{Role: role, Permissions: perms}
	})
	sort.Slice(items, func(i, j int) bool { return items[i].Role < items[j].Role })

	c.JSON(http.StatusOK, items)
}

// @Summary Reset a document number counter
// @Tags Numbering
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings/numbering/reset [post]
// @Security ApiKeyAuth
func (h *SettingsHandler) ResetCounter(c *gin.Context) {
	var req dto.ResetCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	if err := h.settingsService.ResetCounter(c.Request.Context(), req.DocumentType, req.To); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Preview the next document number
// @Tags Numbering
// @Produce json
// @Param type path string true "Document type"
// @Success 200 {object} dto.PreviewNumberResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /settings/numbering/{type}/preview [get]
// @Security ApiKeyAuth
func (h *SettingsHandler) PreviewNumber(c *gin.Context) {
	docType := types.DocumentType(c.Param("type"))

	next, err := h.settingsService.PreviewNumber(c.Request.Context(), docType)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PreviewNumberResponse{
		DocumentType: docType,
		Next:         next,
	})
}
