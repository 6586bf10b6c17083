package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

func TestShipmentRepo_NextRound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`COALESCE\(MAX\(round\), 0\) \+ 1`).
		WithArgs("1000", day).
		WillReturnRows(pgxmock.NewRows([]string{"round"}).AddRow(3))

	round, err := NewShipmentRepository(mock).NextRound(context.Background(), "1000", day)
	require.NoError(t, err)
	assert.Equal(t, 3, round)
}

func TestShipmentRepo_CreateHeader_VueltaDuplicada(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO pmd100`).
		WithArgs("SH1000-20240315-01", "1000", day, 1, "C01", "WH01", "PDA01", day).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "pmd100_saupj_ship_date_round_key"})

	err = NewShipmentRepository(mock).CreateHeader(context.Background(), &entity.Shipment{
		ShipNo: "SH1000-20240315-01", Saupj: "1000", ShipDate: day, Round: 1,
		CustomerCode: "C01", WhsCode: "WH01", RegUser: "PDA01", RegDate: day,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_AddLine_CajaRepetida(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO pmd110`).
		WithArgs("SH1000-20240315-01", "BOX001", "ITEM-A", decimal.NewFromInt(5)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = NewShipmentRepository(mock).AddLine(context.Background(), &entity.ShipmentLine{
		ShipNo: "SH1000-20240315-01", BoxNo: "BOX001", ItemCode: "ITEM-A", Quantity: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateScan)
}

func TestShipmentRepo_Get_ConLineas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM pmd100 WHERE ship_no = \$1`).
		WithArgs("SH1000-20240315-01").
		WillReturnRows(pgxmock.NewRows([]string{"ship_no", "saupj", "ship_date", "round", "customer_code", "whs_code", "reg_user", "reg_dt"}).
			AddRow("SH1000-20240315-01", "1000", day, 1, "C01", "WH01", "PDA01", day))
	mock.ExpectQuery(`FROM pmd110 WHERE ship_no = \$1`).
		WithArgs("SH1000-20240315-01").
		WillReturnRows(pgxmock.NewRows([]string{"ship_no", "box_no", "item_code", "qty"}).
			AddRow("SH1000-20240315-01", "BOX001", "ITEM-A", decimal.NewFromInt(5)).
			AddRow("SH1000-20240315-01", "BOX002", "ITEM-A", decimal.NewFromInt(7)))

	s, err := NewShipmentRepository(mock).Get(context.Background(), "SH1000-20240315-01")
	require.NoError(t, err)
	assert.Equal(t, "C01", s.CustomerCode)
	require.Len(t, s.Lines, 2)
	assert.Equal(t, "BOX002", s.Lines[1].BoxNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspectionRepo_Create_Reescaneo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInspectionRepository(mock)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	rec := &entity.InspectionRecord{
		ID: "i1", Saupj: "1000", OpCode: "SMD", LineCode: "L1", CheckDate: day, OrderNo: "WO-001",
		BoxNo: "BOX001", Result: "OK", CheckedAt: day.Add(9 * time.Hour), RegUser: "PDA01",
	}

	// la misma fila dos veces: la clave única del día absorbe el segundo escaneo
	for _, affected := range []int64{1, 0} {
		mock.ExpectExec(`(?s)INSERT INTO pmq100 .+ON CONFLICT \(saupj, op_code, line_code, check_date, box_no\) DO NOTHING`).
			WithArgs("i1", "1000", "SMD", "L1", day, "WO-001", "BOX001", "OK", day.Add(9*time.Hour), "PDA01").
			WillReturnResult(pgxmock.NewResult("INSERT", affected))
	}

	ok, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Create(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, ok, "el segundo escaneo del mismo box no inserta")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementRepo_List_ConstruyeFiltros(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE saupj = \$1 AND mov_type = \$2 AND \(from_whs = \$3 OR to_whs = \$3\) AND mov_date >= \$4 ORDER BY reg_dt DESC, id LIMIT \$5 OFFSET \$6`).
		WithArgs("1000", "RECEIVE", "WH01", from, 100, 0).
		WillReturnRows(pgxmock.NewRows(movementCols()))

	list, err := NewMovementRepository(mock).List(context.Background(), repository.MovementFilter{
		Saupj: "1000", Type: "RECEIVE", WhsCode: "WH01", From: &from,
	})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovementRepo_MarkCancelled_UnaSolaVez(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Now()
	mock.ExpectExec(`WHERE id = \$1 AND cancel_yn = 'N'`).
		WithArgs("m1", "PDA01", at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := NewMovementRepository(mock).MarkCancelled(context.Background(), "m1", "PDA01", at)
	require.NoError(t, err)
	assert.False(t, ok)
}

func movementCols() []string {
	return []string{"id", "saupj", "mov_date", "box_no", "item_code", "from_whs", "to_whs", "qty", "mov_type",
		"ref_no", "reg_user", "reg_dt", "cancel_yn", "cancel_user", "cancel_dt"}
}
