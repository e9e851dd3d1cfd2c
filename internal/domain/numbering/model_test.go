package numbering

import (
	"testing"

	ierr "github.com/bizledger/bizledger/internal/errors"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	f := &NumberFormat{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       "INV",
		Padding:      6,
		Separator:    "-",
	}
	assert.Equal(t, "INV-000001", f.Render(1))
	assert.Equal(t, "INV-000042", f.Render(42))
	assert.Equal(t, "INV-000001", f.Example())
}

func TestRenderWithoutPrefix(t *testing.T) {
	f := &NumberFormat{
		DocumentType: types.DocumentTypeReceipt,
		Padding:      4,
		Separator:    "-",
	}
	// No prefix means no separator either.
	assert.Equal(t, "0007", f.Render(7))
}

func TestRenderOverflowsPadding(t *testing.T) {
	f := &NumberFormat{
		DocumentType: types.DocumentTypeInvoice,
		Prefix:       "INV",
		Padding:      3,
		Separator:    "-",
	}
	assert.Equal(t, "INV-1234", f.Render(1234))
}

func TestRenderLegacy(t *testing.T) {
	assert.Equal(t, "INV-000001", RenderLegacy("INV-", 1))
	assert.Equal(t, "EST-000123", RenderLegacy("EST-", 123))
	assert.Equal(t, "1234567", RenderLegacy("", 1234567))
}

func TestValidate(t *testing.T) {
	valid := &NumberFormat{
		DocumentType:  types.DocumentTypeInvoice,
		Prefix:        "INV",
		Padding:       6,
		Separator:     "-",
		CurrentNumber: 1,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*NumberFormat)
	}{
		{"bad document type", func(f *NumberFormat) { f.DocumentType = "bogus" }},
		{"padding too small", func(f *NumberFormat) { f.Padding = 1 }},
		{"padding too large", func(f *NumberFormat) { f.Padding = 9 }},
		{"digit in separator", func(f *NumberFormat) { f.Separator = "-2-" }},
		{"zero current number", func(f *NumberFormat) { f.CurrentNumber = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := *valid
			tt.mutate(&f)
			err := f.Validate()
			assert.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
