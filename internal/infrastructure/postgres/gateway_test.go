package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeOnly struct {
	MinorCode string `db:"minor_code"`
	CodeName  string `db:"code_name"`
}

func TestQuery_MapeaPorNombre(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT minor_code, code_name FROM pmc100`).
		WithArgs("UNIT").
		WillReturnRows(pgxmock.NewRows([]string{"minor_code", "code_name"}).
			AddRow("EA", "Each").
			AddRow("BOX", "Box"))

	rows, err := Query[codeOnly](context.Background(), mock, `SELECT minor_code, code_name FROM pmc100 WHERE major_code = $1`, "UNIT")
	require.NoError(t, err)
	assert.Equal(t, []codeOnly{{"EA", "Each"}, {"BOX", "Box"}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScalar_SinFilasEsNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT round`).WillReturnRows(pgxmock.NewRows([]string{"round"}))

	v, err := Scalar[int](context.Background(), mock, `SELECT round FROM pmd100`)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestExecute_DevuelveFilasAfectadas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE pmc100`).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	n, err := Execute(context.Background(), mock, `UPDATE pmc100 SET use_yn = 'N'`)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExecuteTransaction_Commit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO a`).WithArgs(1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE b`).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err = ExecuteTransaction(context.Background(), mock, []Statement{
		{SQL: `INSERT INTO a VALUES ($1)`, Args: []any{1}},
		{SQL: `UPDATE b SET x = $1`, Args: []any{2}, MustAffect: true},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteTransaction_MustAffectRevierte(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE b`).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = ExecuteTransaction(context.Background(), mock, []Statement{
		{SQL: `UPDATE b SET x = 1`, MustAffect: true},
		{SQL: `INSERT INTO a VALUES (1)`},
	})
	assert.ErrorIs(t, err, ErrNoRowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteTransaction_ErrorDeDriver(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("conexión cerrada")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO a`).WillReturnError(boom)
	mock.ExpectRollback()

	err = ExecuteTransaction(context.Background(), mock, []Statement{{SQL: `INSERT INTO a VALUES (1)`}})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
