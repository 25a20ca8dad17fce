package pkgerrors

import (
	"errors"
	"fmt"
)

const (
	CodeMissingSourceFile = -2001
	CodeSchemaViolation   = -2002
	CodeTotalsMismatch    = -2003
	CodeEmptyDataset      = -2004
	CodeUnknown           = -9999
)

type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewMissingSourceFileError(path string, err error) *AppError {
	return &AppError{
		Code:    CodeMissingSourceFile,
		Message: fmt.Sprintf("missing required source file %s", path),
		Err:     err,
	}
}

func NewSchemaViolationError(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeSchemaViolation,
		Message: msg,
		Err:     err,
	}
}

func NewTotalsMismatchError(orderID string, err error) *AppError {
	return &AppError{
		Code:    CodeTotalsMismatch,
		Message: fmt.Sprintf("order %s totals do not reconcile", orderID),
		Err:     err,
	}
}

// NewEmptyDatasetError is never fatal; callers log it and continue.
func NewEmptyDatasetError(table string) *AppError {
	return &AppError{
		Code:    CodeEmptyDataset,
		Message: fmt.Sprintf("no rows for %s", table),
	}
}

func IsMissingSourceFileError(err error) bool {
	return GetErrorCode(err) == CodeMissingSourceFile
}

func IsSchemaViolationError(err error) bool {
	return GetErrorCode(err) == CodeSchemaViolation
}

func IsTotalsMismatchError(err error) bool {
	return GetErrorCode(err) == CodeTotalsMismatch
}

func IsEmptyDatasetError(err error) bool {
	return GetErrorCode(err) == CodeEmptyDataset
}

func GetErrorCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
