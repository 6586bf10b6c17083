package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

type StockRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    *StockRepo
	key     entity.StockKey
	context context.Context
}

func (suite *StockRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewStockRepository(mock)
	suite.key = entity.StockKey{Saupj: "1000", BoxNo: "BOX001", WhsCode: "WH01"}
	suite.context = context.Background()
}

func (suite *StockRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestStockRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StockRepoTestSuite))
}

func stockCols() []string {
	return []string{"saupj", "box_no", "whs_code", "item_code", "lot_no", "qty", "upd_user", "upd_dt"}
}

func (suite *StockRepoTestSuite) TestGet_Existe() {
	now := time.Now()
	suite.mock.ExpectQuery(`FROM pms100 WHERE saupj = \$1 AND box_no = \$2 AND whs_code = \$3`).
		WithArgs("1000", "BOX001", "WH01").
		WillReturnRows(pgxmock.NewRows(stockCols()).
			AddRow("1000", "BOX001", "WH01", "ITEM-A", "L1", decimal.NewFromInt(100), "PDA01", now))

	rec, err := suite.repo.Get(suite.context, suite.key)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ITEM-A", rec.ItemCode)
	assert.True(suite.T(), rec.Quantity.Equal(decimal.NewFromInt(100)))
}

func (suite *StockRepoTestSuite) TestGet_NoExiste() {
	suite.mock.ExpectQuery(`FROM pms100`).
		WithArgs("1000", "BOX001", "WH01").
		WillReturnRows(pgxmock.NewRows(stockCols()))

	rec, err := suite.repo.Get(suite.context, suite.key)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), rec)
}

func (suite *StockRepoTestSuite) TestGetForUpdate_Bloquea() {
	suite.mock.ExpectQuery(`FOR UPDATE`).
		WithArgs("1000", "BOX001", "WH01").
		WillReturnRows(pgxmock.NewRows(stockCols()).
			AddRow("1000", "BOX001", "WH01", "ITEM-A", "", decimal.NewFromInt(7), "PDA01", time.Now()))

	rec, err := suite.repo.GetForUpdate(suite.context, suite.key)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), rec.Quantity.Equal(decimal.NewFromInt(7)))
}

func (suite *StockRepoTestSuite) TestDecrement_Condicional() {
	qty := decimal.NewFromInt(30)
	suite.mock.ExpectExec(`UPDATE pms100 SET qty = qty - \$4`).
		WithArgs("1000", "BOX001", "WH01", qty, "PDA01").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(`AND qty >= \$4`).
		WithArgs("1000", "BOX001", "WH01", qty, "PDA01").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := suite.repo.Decrement(suite.context, suite.key, qty, "PDA01")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ok)

	ok, err = suite.repo.Decrement(suite.context, suite.key, qty, "PDA01")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), ok, "0 filas = stock insuficiente o inexistente")
}

func (suite *StockRepoTestSuite) TestIncrement_Upsert() {
	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	rec := &entity.StockRecord{Saupj: "1000", BoxNo: "BOX001", WhsCode: "WH02", ItemCode: "ITEM-A", Quantity: decimal.NewFromInt(5), UpdUser: "PDA01", UpdatedAt: at}
	suite.mock.ExpectExec(`ON CONFLICT \(saupj, box_no, whs_code\)\s+DO UPDATE SET qty = pms100.qty \+ EXCLUDED.qty`).
		WithArgs("1000", "BOX001", "WH02", "ITEM-A", "", rec.Quantity, "PDA01", at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Increment(suite.context, rec))
}

func (suite *StockRepoTestSuite) TestSet_FijaCantidad() {
	rec := &entity.StockRecord{Saupj: "1000", BoxNo: "BOX001", WhsCode: "WH01", ItemCode: "ITEM-A", Quantity: decimal.NewFromInt(45), UpdUser: "PDA01", UpdatedAt: time.Now()}
	suite.mock.ExpectExec(`DO UPDATE SET qty = EXCLUDED.qty`).
		WithArgs("1000", "BOX001", "WH01", "ITEM-A", "", rec.Quantity, "PDA01", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Set(suite.context, rec))
}
