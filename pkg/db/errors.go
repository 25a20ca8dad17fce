package pkgdb

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

var (
	ErrForeignKeyCode = "23503"
	ErrCheckCode      = "23514"
	ErrDuplicateCode  = "23505"
	ErrNotNullCode    = "23502"
)

// primary result code shared by every SQLITE_CONSTRAINT_* extended code
const sqliteConstraintCode = 19

func IsDuplicateKeyErr(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == pq.ErrorCode(ErrDuplicateCode)
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsConstraintErr reports FK, CHECK, NOT NULL and uniqueness violations from
// either driver.
func IsConstraintErr(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch string(pgErr.Code) {
		case ErrForeignKeyCode, ErrCheckCode, ErrDuplicateCode, ErrNotNullCode:
			return true
		}
		return false
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqliteConstraintCode
	}
	return strings.Contains(err.Error(), "constraint failed")
}
