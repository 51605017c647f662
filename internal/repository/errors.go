package repository

import (
	"errors"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// translateError maps driver-level failures onto the apperror taxonomy so that
// nothing above the repository layer ever handles a raw GORM or SQLite error.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.ErrNotFound, "record not found")
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return apperror.New(apperror.ErrDuplicateKey, err.Error())
		}
	}
	return apperror.New(apperror.ErrStorage, err.Error())
}
