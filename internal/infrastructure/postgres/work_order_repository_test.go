package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

type WorkOrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    *WorkOrderRepo
	at      time.Time
	context context.Context
}

func (suite *WorkOrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewWorkOrderRepository(mock)
	suite.at = time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)
	suite.context = context.Background()
}

func (suite *WorkOrderRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestWorkOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderRepoTestSuite))
}

func workOrderCols() []string {
	return []string{"order_no", "saupj", "op_code", "line_code", "item_code", "plan_qty", "plan_seq", "status", "start_dt", "end_dt"}
}

func (suite *WorkOrderRepoTestSuite) TestGetByOrderNo() {
	started := suite.at
	suite.mock.ExpectQuery(`FROM pmo100 WHERE order_no = \$1`).
		WithArgs("WO-001").
		WillReturnRows(pgxmock.NewRows(workOrderCols()).
			AddRow("WO-001", "1000", "SMT", "L1", "ITEM-A", 500, 1, "W", &started, (*time.Time)(nil)))

	wo, err := suite.repo.GetByOrderNo(suite.context, "WO-001")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), entity.WorkOrderStarted, wo.Status)
	assert.Equal(suite.T(), started, *wo.StartedAt)
	assert.Nil(suite.T(), wo.EndedAt)
}

func (suite *WorkOrderRepoTestSuite) TestNextOpen_SinOrdenes() {
	suite.mock.ExpectQuery(`status IN \('P', 'R'\)\s+ORDER BY plan_seq, order_no\s+LIMIT 1`).
		WithArgs("1000", "SMT", "L1").
		WillReturnRows(pgxmock.NewRows(workOrderCols()))

	wo, err := suite.repo.NextOpen(suite.context, "1000", "SMT", "L1")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), wo)
}

func (suite *WorkOrderRepoTestSuite) TestApplyTransition_Start() {
	tr, _ := entity.TransitionFor(entity.ActionStart)

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO pmo110`).
		WithArgs(pgxmock.AnyArg(), "WO-001", entity.ActionStart, "W", "PDA01", suite.at, []string{"P", "R"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`UPDATE pmo100`).
		WithArgs("WO-001", "W", pgxmock.AnyArg(), pgxmock.AnyArg(), []string{"P", "R"}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	ok, err := suite.repo.ApplyTransition(suite.context, "WO-001", tr, "PDA01", suite.at)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ok)
}

func (suite *WorkOrderRepoTestSuite) TestApplyTransition_CarreraPerdida() {
	tr, _ := entity.TransitionFor(entity.ActionEnd)

	// otro PDA ya terminó la orden: el INSERT ... SELECT no encuentra el estado de origen
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO pmo110`).
		WithArgs(pgxmock.AnyArg(), "WO-001", entity.ActionEnd, "C", "PDA01", suite.at, []string{"W"}).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	suite.mock.ExpectRollback()

	ok, err := suite.repo.ApplyTransition(suite.context, "WO-001", tr, "PDA01", suite.at)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), ok)
}
