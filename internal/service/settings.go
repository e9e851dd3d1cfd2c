package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/cache"
	"github.com/bizledger/bizledger/internal/domain/numbering"
	"github.com/bizledger/bizledger/internal/domain/settings"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
)

// SettingsService manages tenant configuration and sequential document
// numbers.
type SettingsService interface {
	GetSetting(ctx context.Context, key string) (*settings.Setting, error)
	ListSettings(ctx context.Context, category string) ([]*settings.Setting, error)
	UpsertSetting(ctx context.Context, s *settings.Setting) error
	DeleteSetting(ctx context.Context, key string) error

	GetNumberFormat(ctx context.Context, docType types.DocumentType) (*numbering.NumberFormat, error)
	ListNumberFormats(ctx context.Context) ([]*numbering.NumberFormat, error)

	// UpsertNumberFormat merges the supplied fields into the stored
	// format; fields left nil keep their current value.
	UpsertNumberFormat(ctx context.Context, req dto.UpsertNumberFormatRequest) (*numbering.NumberFormat, error)
	ResetCounter(ctx context.Context, docType types.DocumentType, to int64) error
	PreviewNumber(ctx context.Context, docType types.DocumentType) (string, error)

	GetCompanyInfo(ctx context.Context) (*dto.CompanyInfo, error)
	UpdateCompanyInfo(ctx context.Context, req dto.UpdateCompanyInfoRequest) (*dto.CompanyInfo, error)
	GetBankDetails(ctx context.Context) (*dto.BankDetails, error)
	UpdateBankDetails(ctx context.Context, req dto.UpdateBankDetailsRequest) (*dto.BankDetails, error)

	// GenerateDocumentNumber claims the next sequential number for the
	// document type. A configured format row wins; otherwise the legacy
	// key/value counter in settings is used.
	GenerateDocumentNumber(ctx context.Context, docType types.DocumentType) (string, error)
}

type settingsService struct {
	ServiceParams

	// legacyMu serializes legacy counter claims per tenant and type,
	// since the settings table read-then-write is not atomic.
	legacyMu sync.Map
}

func NewSettingsService(params ServiceParams) SettingsService {
	return &settingsService{ServiceParams: params}
}

func (s *settingsService) GetSetting(ctx context.Context, key string) (*settings.Setting, error) {
	cacheKey := cache.GenerateKey(cache.PrefixSetting, types.GetTenantID(ctx), key)
	if cached, found := s.Cache.Get(ctx, cacheKey); found {
		if setting, ok := decodeCachedSetting(cached); ok {
			return setting, nil
		}
	}

	setting, err := s.SettingsRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, cacheKey, setting, cache.DefaultExpiration)
	return setting, nil
}

// decodeCachedSetting handles both backends: the in-memory cache stores
// the value as-is, the redis cache hands back JSON bytes.
func decodeCachedSetting(cached interface{}) (*settings.Setting, bool) {
	switch v := cached.(type) {
	case *settings.Setting:
		return v, true
	case []byte:
		var setting settings.Setting
		if err := json.Unmarshal(v, &setting); err == nil {
			return &setting, true
		}
	}
	return nil, false
}

func (s *settingsService) ListSettings(ctx context.Context, category string) ([]*settings.Setting, error) {
	if category != "" {
		return s.SettingsRepo.ListByCategory(ctx, category)
	}
	return s.SettingsRepo.ListAll(ctx)
}

func (s *settingsService) UpsertSetting(ctx context.Context, setting *settings.Setting) error {
	if setting.Key == "" {
		return ierr.NewError("setting key is required").
			WithHint("Setting key must not be empty").
			Mark(ierr.ErrValidation)
	}

	if setting.ID == "" {
		setting.ID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING)
	}
	if setting.TenantID == "" {
		setting.BaseModel = types.GetDefaultBaseModel(ctx)
	}

	if err := s.SettingsRepo.Upsert(ctx, setting); err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixSetting, types.GetTenantID(ctx), setting.Key))
	return nil
}

func (s *settingsService) DeleteSetting(ctx context.Context, key string) error {
	if err := s.SettingsRepo.DeleteByKey(ctx, key); err != nil {
		return err
	}
	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixSetting, types.GetTenantID(ctx), key))
	return nil
}

func (s *settingsService) GetNumberFormat(ctx context.Context, docType types.DocumentType) (*numbering.NumberFormat, error) {
	if err := docType.Validate(); err != nil {
		return nil, err
	}
	return s.NumberingRepo.GetByType(ctx, docType)
}

func (s *settingsService) ListNumberFormats(ctx context.Context) ([]*numbering.NumberFormat, error) {
	return s.NumberingRepo.ListAll(ctx)
}

func (s *settingsService) UpsertNumberFormat(ctx context.Context, req dto.UpsertNumberFormatRequest) (*numbering.NumberFormat, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	f, err := s.NumberingRepo.GetByType(ctx, req.DocumentType)
	switch {
	case err == nil:
		// Work on a copy so a validation failure leaves the stored
		// format untouched.
		merged := *f
		f = &merged
	case ierr.IsNotFound(err):
		f = &numbering.NumberFormat{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NUMBER_FORMAT),
			DocumentType:  req.DocumentType,
			Padding:       types.DefaultNumberPadding,
			Separator:     types.DefaultNumberSeparator,
			CurrentNumber: 1,
			BaseModel:     types.GetDefaultBaseModel(ctx),
		}
	default:
		return nil, err
	}

	req.Apply(f)
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if err := s.NumberingRepo.Upsert(ctx, f); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixNumberFormat, types.GetTenantID(ctx), f.DocumentType.String()))
	return f, nil
}

func (s *settingsService) ResetCounter(ctx context.Context, docType types.DocumentType, to int64) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	if to < 1 {
		to = 1
	}

	err := s.NumberingRepo.ResetCounter(ctx, docType, to)
	if err == nil || !ierr.IsNotFound(err) {
		return err
	}

	// No format row: reset the legacy key/value counter instead.
	return s.UpsertSetting(ctx, &settings.Setting{
		Key:      docType.NextKey(),
		Value:    strconv.FormatInt(to, 10),
		Category: "numbering",
	})
}

func (s *settingsService) PreviewNumber(ctx context.Context, docType types.DocumentType) (string, error) {
	if err := docType.Validate(); err != nil {
		return "", err
	}

	format, err := s.NumberingRepo.GetByType(ctx, docType)
	if err == nil {
		return format.Render(format.CurrentNumber), nil
	}
	if !ierr.IsNotFound(err) {
		return "", err
	}

	prefix, next, err := s.legacyCounter(ctx, docType)
	if err != nil {
		return "", err
	}
	return numbering.RenderLegacy(prefix, next), nil
}

func (s *settingsService) GenerateDocumentNumber(ctx context.Context, docType types.DocumentType) (string, error) {
	if err := docType.Validate(); err != nil {
		return "", err
	}

	n, err := s.NumberingRepo.NextNumber(ctx, docType)
	if err == nil {
		format, ferr := s.NumberingRepo.GetByType(ctx, docType)
		if ferr != nil {
			return "", ferr
		}
		return format.Render(n), nil
	}
	if !ierr.IsNotFound(err) {
		return "", err
	}

	return s.generateLegacy(ctx, docType)
}

// generateLegacy claims a number from the key/value counter rows used
// before configurable formats existed.
func (s *settingsService) generateLegacy(ctx context.Context, docType types.DocumentType) (string, error) {
	muKey := types.GetTenantID(ctx) + ":" + docType.String()
	muVal, _ := s.legacyMu.LoadOrStore(muKey, &sync.Mutex{})
	mu := muVal.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	prefix, next, err := s.legacyCounter(ctx, docType)
	if err != nil {
		return "", err
	}

	counter := &settings.Setting{
		Key:      docType.NextKey(),
		Value:    strconv.FormatInt(next+1, 10),
		Category: "numbering",
	}
	if err := s.UpsertSetting(ctx, counter); err != nil {
		return "", err
	}

	return numbering.RenderLegacy(prefix, next), nil
}

// Typed settings categories. The values live in the same key/value rows
// as everything else; these methods just give company info and bank
// details a fixed shape.

const (
	categoryCompanyInfo = "company_info"
	categoryBankDetails = "bank_details"
)

func (s *settingsService) GetCompanyInfo(ctx context.Context) (*dto.CompanyInfo, error) {
	values, err := s.categoryValues(ctx, categoryCompanyInfo)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyInfo{
		Name:    values["company_name"],
		Email:   values["company_email"],
		Phone:   values["company_phone"],
		Address: values["company_address"],
		City:    values["company_city"],
		Country: values["company_country"],
		TaxID:   values["company_tax_id"],
		Website: values["company_website"],
	}, nil
}

func (s *settingsService) UpdateCompanyInfo(ctx context.Context, req dto.UpdateCompanyInfoRequest) (*dto.CompanyInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]*string{
		"company_name":    req.Name,
		"company_email":   req.Email,
		"company_phone":   req.Phone,
		"company_address": req.Address,
		"company_city":    req.City,
		"company_country": req.Country,
		"company_tax_id":  req.TaxID,
		"company_website": req.Website,
	}
	if err := s.upsertCategory(ctx, categoryCompanyInfo, fields); err != nil {
		return nil, err
	}
	return s.GetCompanyInfo(ctx)
}

func (s *settingsService) GetBankDetails(ctx context.Context) (*dto.BankDetails, error) {
	values, err := s.categoryValues(ctx, categoryBankDetails)
	if err != nil {
		return nil, err
	}
	return &dto.BankDetails{
		BankName:      values["bank_name"],
		AccountName:   values["account_name"],
		AccountNumber: values["account_number"],
		Branch:        values["bank_branch"],
		SwiftCode:     values["swift_code"],
		Currency:      values["bank_currency"],
	}, nil
}

func (s *settingsService) UpdateBankDetails(ctx context.Context, req dto.UpdateBankDetailsRequest) (*dto.BankDetails, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]*string{
		"bank_name":      req.BankName,
		"account_name":   req.AccountName,
		"account_number": req.AccountNumber,
		"bank_branch":    req.Branch,
		"swift_code":     req.SwiftCode,
		"bank_currency":  req.Currency,
	}
	if err := s.upsertCategory(ctx, categoryBankDetails, fields); err != nil {
		return nil, err
	}
	return s.GetBankDetails(ctx)
}

func (s *settingsService) categoryValues(ctx context.Context, category string) (map[string]string, error) {
	rows, err := s.SettingsRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// upsertCategory writes the supplied fields only; nil pointers keep the
// stored values.
func (s *settingsService) upsertCategory(ctx context.Context, category string, fields map[string]*string) error {
	for key, value := range fields {
		if value == nil {
			continue
		}
		if err := s.UpsertSetting(ctx, &settings.Setting{
			Key:      key,
			Value:    *value,
			Category: category,
		}); err != nil {
			return err
		}
	}
	return nil
}

// legacyCounter reads the prefix and next value from settings, falling
// back to the built-in prefix and 1 when the rows are missing or the
// stored counter is not a number.
func (s *settingsService) legacyCounter(ctx context.Context, docType types.DocumentType) (string, int64, error) {
	prefix := docType.DefaultPrefix()
	if setting, err := s.GetSetting(ctx, docType.PrefixKey()); err == nil {
		prefix = setting.Value
	} else if !ierr.IsNotFound(err) {
		return "", 0, err
	}

	next := int64(1)
	if setting, err := s.GetSetting(ctx, docType.NextKey()); err == nil {
		if parsed, perr := strconv.ParseInt(setting.Value, 10, 64); perr == nil && parsed > 0 {
			next = parsed
		}
	} else if !ierr.IsNotFound(err) {
		return "", 0, err
	}

	return prefix, next, nil
}