package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes that signal a lost race rather than a broken request.
const (
	pgLockNotAvailable     = "55P03"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// Repositories bundles every repository bound to a single transaction.
type Repositories struct {
	Products  ProductRepository
	Carts     CartRepository
	Orders    OrderRepository
	Addresses AddressRepository
}

// TxManager runs a unit of work as one atomic transaction. Any error
// returned by fn rolls back every write made through the bound
// repositories.
type TxManager interface {
	Do(ctx context.Context, fn func(r *Repositories) error) error
}

// GormTxManager implements TxManager over a gorm connection.
type GormTxManager struct {
	db          *gorm.DB
	lockTimeout string
}

// NewGormTxManager creates a TxManager. lockTimeout bounds how long a
// transaction waits for row locks before failing with a conflict, e.g. "3s".
func NewGormTxManager(db *gorm.DB, lockTimeout string) *GormTxManager {
	if lockTimeout == "" {
		lockTimeout = "3s"
	}
	return &GormTxManager{db: db, lockTimeout: lockTimeout}
}

func (m *GormTxManager) Do(ctx context.Context, fn func(r *Repositories) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%s'", m.lockTimeout)).Error; err != nil {
			return err
		}
		return fn(&Repositories{
			Products:  NewGormProductRepository(tx),
			Carts:     NewGormCartRepository(tx),
			Orders:    NewGormOrderRepository(tx),
			Addresses: NewGormAddressRepository(tx),
		})
	})
	return translateLockError(err)
}

// translateLockError maps lock-timeout, deadlock, serialization and
// unique-index failures onto the retryable conflict error; everything else
// passes through. Unique violations land here when two requests insert the
// same cart concurrently.
func translateLockError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable, pgSerializationFailure, pgDeadlockDetected, pgUniqueViolation:
			return apperrors.Conflict("Operation conflicted with a concurrent request, please retry")
		}
	}
	return err
}
