package service

import (
	"encoding/json"
	"testing"

	"github.com/bizledger/bizledger/internal/api/dto"
	"github.com/bizledger/bizledger/internal/cache"
	"github.com/bizledger/bizledger/internal/domain/settings"
	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/testutil"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SettingsService
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}

func (s *SettingsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *SettingsServiceSuite) setupService() {
	s.service = NewSettingsService(ServiceParams{
		Logger:        s.GetLogger(),
		Config:        s.GetConfig(),
		DB:            s.GetDB(),
		Cache:         s.GetCache(),
		SettingsRepo:  s.GetStores().SettingsRepo,
		NumberingRepo: s.GetStores().NumberingRepo,
		ActivityRepo:  s.GetStores().ActivityRepo,
	})
}

func (s *SettingsServiceSuite) TestUpsertAndGetSetting() {
	setting := &settings.Setting{
		Key:      "company_name",
		Value:    "Acme Ltd",
		Category: "general",
	}
	s.NoError(s.service.UpsertSetting(s.GetContext(), setting))
	s.NotEmpty(setting.ID)

	got, err := s.service.GetSetting(s.GetContext(), "company_name")
	s.NoError(err)
	s.Equal("Acme Ltd", got.Value)

	// Second read should be served from cache with the same value.
	got, err = s.service.GetSetting(s.GetContext(), "company_name")
	s.NoError(err)
	s.Equal("Acme Ltd", got.Value)
}

func (s *SettingsServiceSuite) TestUpsertSettingRequiresKey() {
	err := s.service.UpsertSetting(s.GetContext(), &settings.Setting{Value: "x"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SettingsServiceSuite) TestUpsertSettingInvalidatesCache() {
	setting := &settings.Setting{Key: "currency", Value: "USD", Category: "general"}
	s.NoError(s.service.UpsertSetting(s.GetContext(), setting))

	got, err := s.service.GetSetting(s.GetContext(), "currency")
	s.NoError(err)
	s.Equal("USD", got.Value)

	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key:      "currency",
		Value:    "KES",
		Category: "general",
	}))

	got, err = s.service.GetSetting(s.GetContext(), "currency")
	s.NoError(err)
	s.Equal("KES", got.Value)
}

func (s *SettingsServiceSuite) TestGetSettingDecodesCachedBytes() {
	// A shared cache hands values back as JSON bytes rather than live
	// pointers. GetSetting must decode them instead of falling through
	// to the repository.
	cached := &settings.Setting{Key: "company_name", Value: "Cached Ltd", Category: "general"}
	data, err := json.Marshal(cached)
	s.NoError(err)

	key := cache.GenerateKey(cache.PrefixSetting, types.GetTenantID(s.GetContext()), "company_name")
	s.GetCache().Set(s.GetContext(), key, data, cache.DefaultExpiration)

	got, err := s.service.GetSetting(s.GetContext(), "company_name")
	s.NoError(err)
	s.Equal("Cached Ltd", got.Value)
}

func (s *SettingsServiceSuite) TestListSettingsByCategory() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "company_name", Value: "Acme", Category: "general",
	}))
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "smtp_host", Value: "mail.acme.test", Category: "email",
	}))

	all, err := s.service.ListSettings(s.GetContext(), "")
	s.NoError(err)
	s.Len(all, 2)

	email, err := s.service.ListSettings(s.GetContext(), "email")
	s.NoError(err)
	s.Len(email, 1)
	s.Equal("smtp_host", email[0].Key)
}

func (s *SettingsServiceSuite) TestDeleteSetting() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "company_name", Value: "Acme", Category: "general",
	}))
	s.NoError(s.service.DeleteSetting(s.GetContext(), "company_name"))

	_, err := s.service.GetSetting(s.GetContext(), "company_name")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SettingsServiceSuite) TestGenerateLegacyDefaults() {
	// No format row and no settings rows: built-in prefix, counter
	// starts at 1.
	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000001", number)

	number, err = s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000002", number)

	// The claimed value is persisted back to the counter row.
	counter, err := s.service.GetSetting(s.GetContext(), "invoice_next")
	s.NoError(err)
	s.Equal("3", counter.Value)
}

func (s *SettingsServiceSuite) TestGenerateLegacyCustomPrefix() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "invoice_prefix", Value: "ACME/", Category: "numbering",
	}))
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "invoice_next", Value: "42", Category: "numbering",
	}))

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("ACME/000042", number)
}

func (s *SettingsServiceSuite) TestGenerateLegacyRecoversFromBadCounter() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "estimate_next", Value: "not-a-number", Category: "numbering",
	}))

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeEstimate)
	s.NoError(err)
	s.Equal("EST-000001", number)
}

func (s *SettingsServiceSuite) TestGenerateWithFormatRow() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeEstimate,
		Prefix:       lo.ToPtr("EST"),
		Padding:      lo.ToPtr(5),
		Separator:    lo.ToPtr("_"),
	})
	s.NoError(err)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeEstimate)
	s.NoError(err)
	s.Equal("EST_00001", number)

	number, err = s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeEstimate)
	s.NoError(err)
	s.Equal("EST_00002", number)
}

func (s *SettingsServiceSuite) TestFormatRowWinsOverLegacySettings() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "invoice_prefix", Value: "LEGACY-", Category: "numbering",
	}))
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType:  types.DocumentTypeInvoice,
		Prefix:        lo.ToPtr("INV"),
		Padding:       lo.ToPtr(4),
		CurrentNumber: lo.ToPtr(int64(7)),
	})
	s.NoError(err)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-0007", number)
}

func (s *SettingsServiceSuite) TestUpsertNumberFormatDefaults() {
	f, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeReceipt,
		Prefix:       lo.ToPtr("REC"),
	})
	s.NoError(err)
	s.Equal(types.DefaultNumberPadding, f.Padding)
	s.Equal(types.DefaultNumberSeparator, f.Separator)
	s.Equal(int64(1), f.CurrentNumber)
	s.NotEmpty(f.ID)
}

func (s *SettingsServiceSuite) TestUpsertNumberFormatSparseUpdate() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeEstimate,
		Prefix:       lo.ToPtr("EST"),
		Padding:      lo.ToPtr(5),
		Separator:    lo.ToPtr("_"),
	})
	s.NoError(err)

	// Changing only the prefix must keep the configured padding and
	// separator.
	f, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeEstimate,
		Prefix:       lo.ToPtr("QUO"),
	})
	s.NoError(err)
	s.Equal(5, f.Padding)
	s.Equal("_", f.Separator)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeEstimate)
	s.NoError(err)
	s.Equal("QUO_00001", number)
}

func (s *SettingsServiceSuite) TestUpsertNumberFormatKeepsCounter() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
	})
	s.NoError(err)

	// Burn a few numbers, then change the prefix without supplying a
	// counter. The sequence must continue where it left off.
	for i := 0; i < 3; i++ {
		_, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
		s.NoError(err)
	}

	_, err = s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("BILL"),
	})
	s.NoError(err)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("BILL-000004", number)
}

func (s *SettingsServiceSuite) TestUpsertNumberFormatValidation() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
		Padding:      lo.ToPtr(20),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
		Separator:    lo.ToPtr("-1-"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SettingsServiceSuite) TestUpsertNumberFormatValidationLeavesStoredFormat() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
		Padding:      lo.ToPtr(4),
	})
	s.NoError(err)

	_, err = s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Separator:    lo.ToPtr("-1-"),
	})
	s.Error(err)

	f, err := s.service.GetNumberFormat(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("-", f.Separator)
	s.Equal(4, f.Padding)
}

func (s *SettingsServiceSuite) TestResetCounter() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
	})
	s.NoError(err)
	s.NoError(s.service.ResetCounter(s.GetContext(), types.DocumentTypeInvoice, 100))

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000100", number)
}

func (s *SettingsServiceSuite) TestResetCounterLegacyFallback() {
	// No format row configured: the reset lands on the legacy counter
	// row so the next generated number honors it.
	s.NoError(s.service.ResetCounter(s.GetContext(), types.DocumentTypeInvoice, 500))

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000500", number)
}

func (s *SettingsServiceSuite) TestResetCounterOverwritesLegacyCounter() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "receipt_next", Value: "42", Category: "numbering",
	}))
	s.NoError(s.service.ResetCounter(s.GetContext(), types.DocumentTypeReceipt, 7))

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeReceipt)
	s.NoError(err)
	s.Equal("REC-000007", number)
}

func (s *SettingsServiceSuite) TestResetCounterUnknownType() {
	err := s.service.ResetCounter(s.GetContext(), types.DocumentType("bogus"), 1)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SettingsServiceSuite) TestPreviewNumberDoesNotConsume() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       lo.ToPtr("INV"),
	})
	s.NoError(err)

	preview, err := s.service.PreviewNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000001", preview)

	preview, err = s.service.PreviewNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000001", preview)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-000001", number)
}

func (s *SettingsServiceSuite) TestPreviewNumberLegacyFallback() {
	preview, err := s.service.PreviewNumber(s.GetContext(), types.DocumentTypeReceipt)
	s.NoError(err)
	s.Equal("REC-000001", preview)

	// Previews never move the legacy counter either.
	_, err = s.service.GetSetting(s.GetContext(), "receipt_next")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SettingsServiceSuite) TestCounterOverflowsPadding() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType:  types.DocumentTypeInvoice,
		Prefix:        lo.ToPtr("INV"),
		Padding:       lo.ToPtr(2),
		CurrentNumber: lo.ToPtr(int64(123)),
	})
	s.NoError(err)

	number, err := s.service.GenerateDocumentNumber(s.GetContext(), types.DocumentTypeInvoice)
	s.NoError(err)
	s.Equal("INV-123", number)
}

func (s *SettingsServiceSuite) TestSettingsAreTenantScoped() {
	s.NoError(s.service.UpsertSetting(s.GetContext(), &settings.Setting{
		Key: "company_name", Value: "Acme", Category: "general",
	}))

	other := testutil.SetupContextForTenant("tenant-other")
	_, err := s.service.GetSetting(other, "company_name")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SettingsServiceSuite) TestListNumberFormats() {
	_, err := s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeInvoice, Prefix: lo.ToPtr("INV"),
	})
	s.NoError(err)
	_, err = s.service.UpsertNumberFormat(s.GetContext(), dto.UpsertNumberFormatRequest{
		DocumentType: types.DocumentTypeEstimate, Prefix: lo.ToPtr("EST"),
	})
	s.NoError(err)

	formats, err := s.service.ListNumberFormats(s.GetContext())
	s.NoError(err)
	s.Len(formats, 2)
}

func (s *SettingsServiceSuite) TestCompanyInfoRoundTrip() {
	info, err := s.service.UpdateCompanyInfo(s.GetContext(), dto.UpdateCompanyInfoRequest{
		Name:  lo.ToPtr("Acme Ltd"),
		Email: lo.ToPtr("hello@acme.test"),
	})
	s.NoError(err)
	s.Equal("Acme Ltd", info.Name)
	s.Equal("hello@acme.test", info.Email)

	// Sparse update: supplying only the phone keeps the other fields.
	info, err = s.service.UpdateCompanyInfo(s.GetContext(), dto.UpdateCompanyInfoRequest{
		Phone: lo.ToPtr("+254700000000"),
	})
	s.NoError(err)
	s.Equal("Acme Ltd", info.Name)
	s.Equal("+254700000000", info.Phone)

	got, err := s.service.GetCompanyInfo(s.GetContext())
	s.NoError(err)
	s.Equal("Acme Ltd", got.Name)
	s.Equal("hello@acme.test", got.Email)
	s.Equal("+254700000000", got.Phone)
}

func (s *SettingsServiceSuite) TestCompanyInfoEmptyByDefault() {
	info, err := s.service.GetCompanyInfo(s.GetContext())
	s.NoError(err)
	s.Empty(info.Name)
	s.Empty(info.Email)
}

func (s *SettingsServiceSuite) TestUpdateCompanyInfoValidatesEmail() {
	_, err := s.service.UpdateCompanyInfo(s.GetContext(), dto.UpdateCompanyInfoRequest{
		Email: lo.ToPtr("not-an-email"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SettingsServiceSuite) TestBankDetailsRoundTrip() {
	details, err := s.service.UpdateBankDetails(s.GetContext(), dto.UpdateBankDetailsRequest{
		BankName:      lo.ToPtr("Equity Bank"),
		AccountNumber: lo.ToPtr("0123456789"),
		Currency:      lo.ToPtr("KES"),
	})
	s.NoError(err)
	s.Equal("Equity Bank", details.BankName)
	s.Equal("0123456789", details.AccountNumber)

	details, err = s.service.UpdateBankDetails(s.GetContext(), dto.UpdateBankDetailsRequest{
		SwiftCode: lo.ToPtr("EQBLKENA"),
	})
	s.NoError(err)
	s.Equal("Equity Bank", details.BankName)
	s.Equal("EQBLKENA", details.SwiftCode)
	s.Equal("KES", details.Currency)
}
