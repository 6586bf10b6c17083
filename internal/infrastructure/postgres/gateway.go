package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRowsAffected una sentencia marcada MustAffect no modificó filas; la transacción se revierte.
var ErrNoRowsAffected = errors.New("postgres: la sentencia no afectó filas")

// Querier interfaz común de *pgxpool.Pool, pgx.Tx y pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner Querier que además abre transacciones (pool o mock del pool).
type TxBeginner interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Query ejecuta sql y mapea cada fila a T por nombre de columna (tags `db`).
func Query[T any](ctx context.Context, q Querier, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// QueryOne igual que Query pero para una sola fila; nil si no hay filas.
func QueryOne[T any](ctx context.Context, q Querier, sql string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

// Scalar primera columna de la primera fila; nil si no hay filas.
func Scalar[T any](ctx context.Context, q Querier, sql string, args ...any) (*T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// Execute ejecuta una sentencia y devuelve las filas afectadas. 0 no es un error:
// es la señal de que el UPDATE condicional no aplicó.
func Execute(ctx context.Context, q Querier, sql string, args ...any) (int64, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Statement sentencia de una transacción multi-sentencia.
type Statement struct {
	SQL        string
	Args       []any
	MustAffect bool
}

// ExecuteTransaction ejecuta las sentencias en orden dentro de una transacción: todas o ninguna.
func ExecuteTransaction(ctx context.Context, db TxBeginner, stmts []Statement) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, st := range stmts {
		tag, err := tx.Exec(ctx, st.SQL, st.Args...)
		if err != nil {
			return fmt.Errorf("sentencia %d: %w", i+1, err)
		}
		if st.MustAffect && tag.RowsAffected() == 0 {
			return fmt.Errorf("sentencia %d: %w", i+1, ErrNoRowsAffected)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
