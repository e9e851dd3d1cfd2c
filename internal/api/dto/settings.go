package dto

import (
	"github.com/bizledger/bizledger/internal/domain/numbering"
	"github.com/bizledger/bizledger/internal/domain/settings"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
	"github.com/samber/lo"
)

type UpsertSettingRequest struct {
	Key         string `json:"key" validate:"required,max=255"`
	Value       string `json:"value"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description"`
}

func (r *UpsertSettingRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpsertSettingRequest) ToSetting() *settings.Setting {
	return &settings.Setting{
		Key:         r.Key,
		Value:       r.Value,
		Category:    r.Category,
		Description: r.Description,
	}
}

type SettingResponse struct {
	*settings.Setting
}

func NewSettingResponse(s *settings.Setting) *SettingResponse {
	if s == nil {
		return nil
	}
	return &SettingResponse{Setting: s}
}

func NewSettingResponses(list []*settings.Setting) []*SettingResponse {
	return lo.Map(list, func(s *settings.Setting, _ int) *SettingResponse {
		return NewSettingResponse(s)
	})
}

// UpsertNumberFormatRequest is a sparse update: nil fields keep the
// stored value, so setting a new prefix does not reset the padding or
// clear the separator.
type UpsertNumberFormatRequest struct {
	DocumentType  types.DocumentType `json:"document_type" validate:"required"`
	Prefix        *string            `json:"prefix,omitempty" validate:"omitempty,max=20"`
	Padding       *int               `json:"padding,omitempty" validate:"omitempty,min=2,max=8"`
	Separator     *string            `json:"separator,omitempty" validate:"omitempty,max=5"`
	CurrentNumber *int64             `json:"current_number,omitempty" validate:"omitempty,min=1"`
}

func (r *UpsertNumberFormatRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.DocumentType.Validate()
}

// Apply copies the supplied fields onto the format.
func (r *UpsertNumberFormatRequest) Apply(f *numbering.NumberFormat) {
	if r.Prefix != nil {
		f.Prefix = *r.Prefix
	}
	if r.Padding != nil {
		f.Padding = *r.Padding
	}
	if r.Separator != nil {
		f.Separator = *r.Separator
	}
	if r.CurrentNumber != nil {
		f.CurrentNumber = *r.CurrentNumber
	}
}

type NumberFormatResponse struct {
	*numbering.NumberFormat

	// FormatExample shows the next number this format would render.
	FormatExample string `json:"format_example"`
}

func NewNumberFormatResponse(f *numbering.NumberFormat) *NumberFormatResponse {
	if f == nil {
		return nil
	}
	return &NumberFormatResponse{
		NumberFormat:  f,
		FormatExample: f.Example(),
	}
}

func NewNumberFormatResponses(list []*numbering.NumberFormat) []*NumberFormatResponse {
	return lo.Map(list, func(f *numbering.NumberFormat, _ int) *NumberFormatResponse {
		return NewNumberFormatResponse(f)
	})
}

// CompanyInfo is the typed view over the company_info settings
// category.
type CompanyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	TaxID   string `json:"tax_id"`
	Website string `json:"website"`
}

type UpdateCompanyInfoRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	TaxID   *string `json:"tax_id,omitempty" validate:"omitempty,max=100"`
	Website *string `json:"website,omitempty" validate:"omitempty,max=255"`
}

func (r *UpdateCompanyInfoRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// BankDetails is the typed view over the bank_details settings
// category.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Branch        string `json:"branch"`
	SwiftCode     string `json:"swift_code"`
	Currency      string `json:"currency"`
}

type UpdateBankDetailsRequest struct {
	BankName      *string `json:"bank_name,omitempty" validate:"omitempty,max=255"`
	AccountName   *string `json:"account_name,omitempty" validate:"omitempty,max=255"`
	AccountNumber *string `json:"account_number,omitempty" validate:"omitempty,max=100"`
	Branch        *string `json:"branch,omitempty" validate:"omitempty,max=255"`
	SwiftCode     *string `json:"swift_code,omitempty" validate:"omitempty,max=50"`
	Currency      *string `json:"currency,omitempty" validate:"omitempty,max=10"`
}

func (r *UpdateBankDetailsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// RolePermissionsResponse lists the entity/action grants for one role.
type RolePermissionsResponse struct {
	Role        types.UserRole      `json:"role"`
	Permissions map[string][]string `json:"permissions"`
}

type ResetCounterRequest struct {
	DocumentType types.DocumentType `json:"document_type" validate:"required"`
	To           int64              `json:"to" validate:"min=1"`
}

func (r *ResetCounterRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.DocumentType.Validate()
}

type PreviewNumberResponse struct {
	DocumentType types.DocumentType `json:"document_type"`
	Next         string             `json:"next"`
}
