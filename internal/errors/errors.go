package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrorCode string

const (
	AuthFailed          ErrorCode = "auth_failed"
	CardNotFound        ErrorCode = "card_not_found"
	InvalidCardNumber   ErrorCode = "invalid_card_number"
	SameAccountTransfer ErrorCode = "same_account_transfer"
	ReceiverNotFound    ErrorCode = "receiver_not_found"
	InsufficientFunds   ErrorCode = "insufficient_funds"
	InvalidAmount       ErrorCode = "invalid_amount"
	InternalError       ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Details string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// CodeOf extracts the ErrorCode from an error, defaulting to
// InternalError for anything that is not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalError
}

// Predefined errors for common cases
var (
	ErrAuthFailed          = NewAppError(AuthFailed, "wrong card number or PIN")
	ErrCardNotFound        = NewAppError(CardNotFound, "card not found")
	ErrInvalidCardNumber   = NewAppError(InvalidCardNumber, "card number fails checksum validation")
	ErrSameAccountTransfer = NewAppError(SameAccountTransfer, "transfer to the same account")
	ErrReceiverNotFound    = NewAppError(ReceiverNotFound, "receiving card does not exist")
	ErrInsufficientFunds   = NewAppError(InsufficientFunds, "not enough money on the account")
	ErrInvalidAmount       = NewAppError(InvalidAmount, "amount must be a non-negative whole number")
)
