package cli

import (
	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
)

const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitMissingSourceFile = 2
	ExitSchemaViolation   = 3
	ExitTotalsMismatch    = 4
)

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case pkgerrors.IsMissingSourceFileError(err):
		return ExitMissingSourceFile
	case pkgerrors.IsSchemaViolationError(err):
		return ExitSchemaViolation
	case pkgerrors.IsTotalsMismatchError(err):
		return ExitTotalsMismatch
	}
	return ExitFailure
}
