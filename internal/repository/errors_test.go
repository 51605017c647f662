package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateErrorNil(t *testing.T) {
	require.NoError(t, translateError(nil))
}

func TestTranslateErrorRecordNotFound(t *testing.T) {
	err := translateError(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Wrapped occurrences translate the same way.
	err = translateError(fmt.Errorf("query failed: %w", gorm.ErrRecordNotFound))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestTranslateErrorUniqueConstraint(t *testing.T) {
	sqliteErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
	err := translateError(sqliteErr)
	assert.ErrorIs(t, err, apperror.ErrDuplicateKey)

	sqliteErr.ExtendedCode = sqlite3.ErrConstraintPrimaryKey
	assert.ErrorIs(t, translateError(sqliteErr), apperror.ErrDuplicateKey)
}

func TestTranslateErrorOtherConstraintIsStorage(t *testing.T) {
	sqliteErr := sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintForeignKey,
	}
	err := translateError(sqliteErr)
	assert.ErrorIs(t, err, apperror.ErrStorage)
	assert.NotErrorIs(t, err, apperror.ErrDuplicateKey)
}

func TestTranslateErrorUnknownIsStorage(t *testing.T) {
	err := translateError(errors.New("disk I/O error"))
	assert.ErrorIs(t, err, apperror.ErrStorage)
}
