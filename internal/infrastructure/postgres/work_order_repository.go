package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo órdenes de trabajo (pmo100) y su log de transiciones (pmo110).
// Necesita el pool (no una tx) porque ApplyTransition abre su propia transacción.
type WorkOrderRepo struct {
	db TxBeginner
}

// NewWorkOrderRepository construye el adaptador.
func NewWorkOrderRepository(db TxBeginner) *WorkOrderRepo {
	return &WorkOrderRepo{db: db}
}

type workOrderRow struct {
	OrderNo  string     `db:"order_no"`
	Saupj    string     `db:"saupj"`
	OpCode   string     `db:"op_code"`
	LineCode string     `db:"line_code"`
	ItemCode string     `db:"item_code"`
	PlanQty  int        `db:"plan_qty"`
	PlanSeq  int        `db:"plan_seq"`
	Status   string     `db:"status"`
	StartDt  *time.Time `db:"start_dt"`
	EndDt    *time.Time `db:"end_dt"`
}

func (r workOrderRow) entity() *entity.WorkOrder {
	return &entity.WorkOrder{
		OrderNo:   r.OrderNo,
		Saupj:     r.Saupj,
		OpCode:    r.OpCode,
		LineCode:  r.LineCode,
		ItemCode:  r.ItemCode,
		PlanQty:   r.PlanQty,
		PlanSeq:   r.PlanSeq,
		Status:    entity.WorkOrderStatus(r.Status),
		StartedAt: r.StartDt,
		EndedAt:   r.EndDt,
	}
}

const workOrderColumns = `order_no, saupj, op_code, line_code, item_code, plan_qty, plan_seq, status, start_dt, end_dt`

// GetByOrderNo nil si no existe.
func (r *WorkOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.WorkOrder, error) {
	row, err := QueryOne[workOrderRow](ctx, r.db, `SELECT `+workOrderColumns+` FROM pmo100 WHERE order_no = $1`, orderNo)
	if err != nil {
		return nil, fmt.Errorf("get work order: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.entity(), nil
}

// NextOpen orden programada o preparada con menor secuencia de plan.
func (r *WorkOrderRepo) NextOpen(ctx context.Context, saupj, opCode, lineCode string) (*entity.WorkOrder, error) {
	row, err := QueryOne[workOrderRow](ctx, r.db, `
		SELECT `+workOrderColumns+`
		FROM pmo100
		WHERE saupj = $1 AND op_code = $2 AND line_code = $3 AND status IN ('P', 'R')
		ORDER BY plan_seq, order_no
		LIMIT 1`, saupj, opCode, lineCode)
	if err != nil {
		return nil, fmt.Errorf("next work order: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.entity(), nil
}

// ApplyTransition registra el log y cambia el estado en una sola transacción.
// Ambas sentencias exigen el estado de origen; si otro PDA ganó la carrera, se revierte todo.
func (r *WorkOrderRepo) ApplyTransition(ctx context.Context, orderNo string, t entity.Transition, user string, at time.Time) (bool, error) {
	var startAt, endAt *time.Time
	switch t.To {
	case entity.WorkOrderStarted:
		startAt = nullTime(at)
	case entity.WorkOrderCompleted:
		endAt = nullTime(at)
	}
	from := t.FromStrings()

	err := ExecuteTransaction(ctx, r.db, []Statement{
		{
			SQL: `
				INSERT INTO pmo110 (id, order_no, action, from_status, to_status, user_id, reg_dt)
				SELECT $1, order_no, $3, status, $4, $5, $6
				FROM pmo100 WHERE order_no = $2 AND status = ANY($7::varchar[])`,
			Args:       []any{uuid.New().String(), orderNo, t.Action, string(t.To), user, at, from},
			MustAffect: true,
		},
		{
			SQL: `
				UPDATE pmo100
				SET status = $2, start_dt = COALESCE($3, start_dt), end_dt = COALESCE($4, end_dt)
				WHERE order_no = $1 AND status = ANY($5::varchar[])`,
			Args:       []any{orderNo, string(t.To), startAt, endAt, from},
			MustAffect: true,
		},
	})
	if errors.Is(err, ErrNoRowsAffected) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("apply transition %s: %w", t.Action, err)
	}
	return true, nil
}
