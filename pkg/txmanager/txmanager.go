// Package txmanager runs functions inside database transactions, exposing the
// open transaction to repositories through the context (see pkg/dbmetrics).
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/VitorMachadoSilva/ReservationSystem/pkg/dbmetrics"
)

// pq error code for serializable-transaction conflicts.
const serializationFailureCode = "40001"

// serializableRetries bounds retries after a serialization failure.
const serializableRetries = 3

var (
	// ErrTxBegin is returned when a transaction cannot be started
	ErrTxBegin = errors.New("txmanager: failed to begin transaction")
	// ErrTxCommit is returned when a transaction cannot be committed
	ErrTxCommit = errors.New("txmanager: failed to commit transaction")
	// ErrTxRetriesExceeded is returned when serialization retries are exhausted
	ErrTxRetriesExceeded = errors.New("txmanager: serialization retries exceeded")
)

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs closures inside transactions on an instrumented pool.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager creates a manager over an instrumented database handle.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do runs fn inside a transaction with the default isolation level.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly runs fn inside a read-only transaction.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable runs fn inside a SERIALIZABLE transaction, retrying a bounded
// number of times when postgres aborts the transaction with a serialization
// failure. fn must therefore be safe to re-run.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= serializableRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrTxRetriesExceeded, err)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTxBegin, err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrTxCommit, err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
