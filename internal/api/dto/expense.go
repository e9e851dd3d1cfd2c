package dto

import (
	"context"
	"time"

	"github.com/bizledger/bizledger/internal/domain/expense"
	"github.com/bizledger/bizledger/internal/types"
	"github.com/bizledger/bizledger/internal/validator"
)

type CreateExpenseRequest struct {
	Category      string              `json:"category" validate:"required,max=100"`
	Vendor        string              `json:"vendor" validate:"omitempty,max=255"`
	Amount        int64               `json:"amount" validate:"required,min=1"`
	ExpenseDate   time.Time           `json:"expense_date" validate:"required"`
	PaymentMethod types.PaymentMethod `json:"payment_method" validate:"required"`
	ReceiptURL    string              `json:"receipt_url" validate:"omitempty,url"`
	Description   string              `json:"description"`
	AccountID     *string             `json:"account_id,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.PaymentMethod.Validate()
}

// ToExpense builds the expense; the caller assigns the document number.
func (r *CreateExpenseRequest) ToExpense(ctx context.Context) *expense.Expense {
	return &expense.Expense{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPENSE),
		Category:      r.Category,
		Vendor:        r.Vendor,
		Amount:        r.Amount,
		ExpenseDate:   r.ExpenseDate,
		PaymentMethod: r.PaymentMethod,
		ReceiptURL:    r.ReceiptURL,
		Description:   r.Description,
		AccountID:     r.AccountID,
		ExpenseStatus: types.ExpenseStatusPending,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateExpenseRequest struct {
	Category      *string              `json:"category,omitempty" validate:"omitempty,max=100"`
	Vendor        *string              `json:"vendor,omitempty" validate:"omitempty,max=255"`
	Amount        *int64               `json:"amount,omitempty" validate:"omitempty,min=1"`
	ExpenseDate   *time.Time           `json:"expense_date,omitempty"`
	PaymentMethod *types.PaymentMethod `json:"payment_method,omitempty"`
	ReceiptURL    *string              `json:"receipt_url,omitempty" validate:"omitempty,url"`
	Description   *string              `json:"description,omitempty"`
	AccountID     *string              `json:"account_id,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PaymentMethod != nil {
		return r.PaymentMethod.Validate()
	}
	return nil
}

func (r *UpdateExpenseRequest) Apply(e *expense.Expense) {
	if r.Category != nil {
		e.Category = *r.Category
	}
	if r.Vendor != nil {
		e.Vendor = *r.Vendor
	}
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.ExpenseDate != nil {
		e.ExpenseDate = *r.ExpenseDate
	}
	if r.PaymentMethod != nil {
		e.PaymentMethod = *r.PaymentMethod
	}
	if r.ReceiptURL != nil {
		e.ReceiptURL = *r.ReceiptURL
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.AccountID != nil {
		e.AccountID = r.AccountID
	}
}

type ExpenseResponse struct {
	*expense.Expense
}

type ListExpensesResponse = types.ListResponse[*ExpenseResponse]

func NewExpenseResponse(e *expense.Expense) *ExpenseResponse {
	if e == nil {
		return nil
	}
	return &ExpenseResponse{Expense: e}
}

type ExpenseFilter struct {
	types.QueryFilter
	Status *types.ExpenseStatus `json:"expense_status,omitempty" form:"expense_status"`
}

func (f *ExpenseFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
