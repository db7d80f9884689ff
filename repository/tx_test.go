package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestTranslateLockError(t *testing.T) {
	for _, code := range []string{pgLockNotAvailable, pgSerializationFailure, pgDeadlockDetected, pgUniqueViolation} {
		err := translateLockError(fmt.Errorf("query failed: %w", &pgconn.PgError{Code: code}))
		assert.True(t, apperrors.IsConflict(err), "code %s must become a conflict", code)
	}

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translateLockError(plain))
	assert.NoError(t, translateLockError(nil))

	other := &pgconn.PgError{Code: "23502"} // not_null_violation is not retryable
	assert.Equal(t, other, translateLockError(other))
}

func TestTxManagerDo_CommitsOnSuccess(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	m := NewGormTxManager(gormDB, "3s")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL lock_timeout`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	var bound *Repositories
	err := m.Do(context.Background(), func(r *Repositories) error {
		bound = r
		return nil
	})
	assert.NoError(t, err)
	assert.NotNil(t, bound.Products)
	assert.NotNil(t, bound.Carts)
	assert.NotNil(t, bound.Orders)
	assert.NotNil(t, bound.Addresses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManagerDo_RollsBackOnError(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	m := NewGormTxManager(gormDB, "")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL lock_timeout`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	boom := apperrors.Validation("bad input")
	err := m.Do(context.Background(), func(r *Repositories) error {
		return boom
	})
	assert.Equal(t, boom, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManagerDo_TranslatesLockTimeout(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	m := NewGormTxManager(gormDB, "3s")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL lock_timeout`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := m.Do(context.Background(), func(r *Repositories) error {
		return &pgconn.PgError{Code: pgLockNotAvailable}
	})
	assert.True(t, apperrors.IsConflict(err))
}

// Two first-time requests for the same user can both miss the cart lookup
// and race to insert; the loser's unique-index violation must surface as a
// retryable conflict, not an internal error.
func TestTxManagerDo_TranslatesDuplicateCartInsert(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	m := NewGormTxManager(gormDB, "3s")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SET LOCAL lock_timeout`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "carts"`)).
		WillReturnError(&pgconn.PgError{
			Code:           pgUniqueViolation,
			ConstraintName: "idx_carts_user_id",
		})
	mock.ExpectRollback()

	err := m.Do(context.Background(), func(r *Repositories) error {
		return r.Carts.Create(context.Background(), &models.Cart{UserID: 42, Email: "buyer@example.com"})
	})
	assert.True(t, apperrors.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
