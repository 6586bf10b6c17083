package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial de movimientos (pmb100).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

type movementRow struct {
	ID         string          `db:"id"`
	Saupj      string          `db:"saupj"`
	MovDate    time.Time       `db:"mov_date"`
	BoxNo      string          `db:"box_no"`
	ItemCode   string          `db:"item_code"`
	FromWhs    string          `db:"from_whs"`
	ToWhs      string          `db:"to_whs"`
	Qty        decimal.Decimal `db:"qty"`
	MovType    string          `db:"mov_type"`
	RefNo      string          `db:"ref_no"`
	RegUser    string          `db:"reg_user"`
	RegDt      time.Time       `db:"reg_dt"`
	CancelYN   string          `db:"cancel_yn"`
	CancelUser string          `db:"cancel_user"`
	CancelDt   *time.Time      `db:"cancel_dt"`
}

func (r movementRow) entity() *entity.MovementRecord {
	return &entity.MovementRecord{
		ID:          r.ID,
		Saupj:       r.Saupj,
		MovDate:     r.MovDate,
		BoxNo:       r.BoxNo,
		ItemCode:    r.ItemCode,
		FromWhs:     r.FromWhs,
		ToWhs:       r.ToWhs,
		Quantity:    r.Qty,
		Type:        r.MovType,
		RefNo:       r.RefNo,
		RegUser:     r.RegUser,
		RegDate:     r.RegDt,
		Cancelled:   r.CancelYN == "Y",
		CancelUser:  r.CancelUser,
		CancelledAt: r.CancelDt,
	}
}

const movementColumns = `id, saupj, mov_date, box_no, item_code, from_whs, to_whs, qty, mov_type,
	ref_no, reg_user, reg_dt, cancel_yn, cancel_user, cancel_dt`

// Create inserta la fila de auditoría.
func (r *MovementRepo) Create(ctx context.Context, m *entity.MovementRecord) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pmb100 (id, saupj, mov_date, box_no, item_code, from_whs, to_whs, qty, mov_type, ref_no, reg_user, reg_dt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.ID, m.Saupj, m.MovDate, m.BoxNo, m.ItemCode, m.FromWhs, m.ToWhs, m.Quantity, m.Type, m.RefNo, m.RegUser, m.RegDate)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.MovementRecord, error) {
	return r.get(ctx, `SELECT `+movementColumns+` FROM pmb100 WHERE id = $1`, id)
}

// GetForUpdate bloquea el movimiento mientras se cancela.
func (r *MovementRepo) GetForUpdate(ctx context.Context, id string) (*entity.MovementRecord, error) {
	return r.get(ctx, `SELECT `+movementColumns+` FROM pmb100 WHERE id = $1 FOR UPDATE`, id)
}

func (r *MovementRepo) get(ctx context.Context, query, id string) (*entity.MovementRecord, error) {
	row, err := QueryOne[movementRow](ctx, r.q, query, id)
	if err != nil {
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.entity(), nil
}

// MarkCancelled única edición permitida sobre el historial: el flag cambia una sola vez.
func (r *MovementRepo) MarkCancelled(ctx context.Context, id, user string, at time.Time) (bool, error) {
	n, err := Execute(ctx, r.q, `
		UPDATE pmb100 SET cancel_yn = 'Y', cancel_user = $2, cancel_dt = $3
		WHERE id = $1 AND cancel_yn = 'N'`, id, user, at)
	if err != nil {
		return false, fmt.Errorf("cancel movement: %w", err)
	}
	return n > 0, nil
}

// List historial filtrado, más reciente primero.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementRecord, error) {
	conds := []string{"saupj = $1"}
	args := []any{f.Saupj}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Type != "" {
		add("mov_type = $%d", f.Type)
	}
	if f.WhsCode != "" {
		args = append(args, f.WhsCode)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(from_whs = $%d OR to_whs = $%d)", n, n))
	}
	if f.From != nil {
		add("mov_date >= $%d", *f.From)
	}
	if f.To != nil {
		add("mov_date <= $%d", *f.To)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM pmb100 WHERE %s ORDER BY reg_dt DESC, id LIMIT $%d OFFSET $%d`,
		movementColumns, strings.Join(conds, " AND "), len(args)-1, len(args))

	rows, err := Query[movementRow](ctx, r.q, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.MovementRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, nil
}
