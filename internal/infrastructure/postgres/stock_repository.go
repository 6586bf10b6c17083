package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre pms100 (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

type stockRow struct {
	Saupj    string          `db:"saupj"`
	BoxNo    string          `db:"box_no"`
	WhsCode  string          `db:"whs_code"`
	ItemCode string          `db:"item_code"`
	LotNo    string          `db:"lot_no"`
	Qty      decimal.Decimal `db:"qty"`
	UpdUser  string          `db:"upd_user"`
	UpdDt    time.Time       `db:"upd_dt"`
}

func (r stockRow) entity() *entity.StockRecord {
	return &entity.StockRecord{
		Saupj:     r.Saupj,
		BoxNo:     r.BoxNo,
		WhsCode:   r.WhsCode,
		ItemCode:  r.ItemCode,
		LotNo:     r.LotNo,
		Quantity:  r.Qty,
		UpdUser:   r.UpdUser,
		UpdatedAt: r.UpdDt,
	}
}

const stockColumns = `saupj, box_no, whs_code, item_code, lot_no, qty, upd_user, upd_dt`

// Get devuelve la fila o nil si la unidad no está en esa ubicación.
func (r *StockRepo) Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return r.get(ctx, `
		SELECT `+stockColumns+`
		FROM pms100 WHERE saupj = $1 AND box_no = $2 AND whs_code = $3`, key)
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return r.get(ctx, `
		SELECT `+stockColumns+`
		FROM pms100 WHERE saupj = $1 AND box_no = $2 AND whs_code = $3
		FOR UPDATE`, key)
}

func (r *StockRepo) get(ctx context.Context, query string, key entity.StockKey) (*entity.StockRecord, error) {
	row, err := QueryOne[stockRow](ctx, r.q, query, key.Saupj, key.BoxNo, key.WhsCode)
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.entity(), nil
}

// ListByBox todas las ubicaciones de la unidad, ordenadas por almacén.
func (r *StockRepo) ListByBox(ctx context.Context, saupj, boxNo string) ([]*entity.StockRecord, error) {
	rows, err := Query[stockRow](ctx, r.q, `
		SELECT `+stockColumns+`
		FROM pms100 WHERE saupj = $1 AND box_no = $2
		ORDER BY whs_code`, saupj, boxNo)
	if err != nil {
		return nil, fmt.Errorf("list stock by box: %w", err)
	}
	out := make([]*entity.StockRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}

// Decrement resta qty solo si alcanza. El predicado qty >= $4 es el control de concurrencia.
func (r *StockRepo) Decrement(ctx context.Context, key entity.StockKey, qty decimal.Decimal, user string) (bool, error) {
	n, err := Execute(ctx, r.q, `
		UPDATE pms100 SET qty = qty - $4, upd_user = $5, upd_dt = now()
		WHERE saupj = $1 AND box_no = $2 AND whs_code = $3 AND qty >= $4`,
		key.Saupj, key.BoxNo, key.WhsCode, qty, user)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return n > 0, nil
}

// Increment suma la cantidad, creando la fila en la primera recepción.
func (r *StockRepo) Increment(ctx context.Context, rec *entity.StockRecord) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pms100 (saupj, box_no, whs_code, item_code, lot_no, qty, upd_user, upd_dt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (saupj, box_no, whs_code)
		DO UPDATE SET qty = pms100.qty + EXCLUDED.qty, item_code = EXCLUDED.item_code,
			upd_user = EXCLUDED.upd_user, upd_dt = EXCLUDED.upd_dt`,
		rec.Saupj, rec.BoxNo, rec.WhsCode, rec.ItemCode, rec.LotNo, rec.Quantity, rec.UpdUser, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Set fija la cantidad contada (inventario físico).
func (r *StockRepo) Set(ctx context.Context, rec *entity.StockRecord) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pms100 (saupj, box_no, whs_code, item_code, lot_no, qty, upd_user, upd_dt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (saupj, box_no, whs_code)
		DO UPDATE SET qty = EXCLUDED.qty, upd_user = EXCLUDED.upd_user, upd_dt = EXCLUDED.upd_dt`,
		rec.Saupj, rec.BoxNo, rec.WhsCode, rec.ItemCode, rec.LotNo, rec.Quantity, rec.UpdUser, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}
