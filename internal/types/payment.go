package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

// PaymentMethod enumerates how money moved.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodMpesa        PaymentMethod = "mpesa"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque,
		PaymentMethodMpesa, PaymentMethodCard, PaymentMethodOther:
		return nil
	}
	return ierr.NewError("invalid payment method").
		WithHint("Payment method must be one of cash, bank_transfer, cheque, mpesa, card, other").
		Mark(ierr.ErrValidation)
}

// ExpenseStatus tracks an expense through its approval flow.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
	ExpenseStatusPaid     ExpenseStatus = "paid"
)

func (s ExpenseStatus) String() string {
	return string(s)
}

func (s ExpenseStatus) Validate() error {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected, ExpenseStatusPaid:
		return nil
	}
	return ierr.NewError("invalid expense status").
		WithHint("Expense status must be one of pending, approved, rejected, paid").
		Mark(ierr.ErrValidation)
}
