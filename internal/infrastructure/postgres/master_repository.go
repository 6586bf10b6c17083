package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.MasterRepository = (*MasterRepo)(nil)

// MasterRepo códigos (pmc100), almacenes (pmw100), líneas (pml100) y kanban (pmk100).
type MasterRepo struct {
	q Querier
}

// NewMasterRepository construye el adaptador.
func NewMasterRepository(q Querier) *MasterRepo {
	return &MasterRepo{q: q}
}

type codeRow struct {
	MajorCode string `db:"major_code"`
	MinorCode string `db:"minor_code"`
	CodeName  string `db:"code_name"`
	SortSeq   int    `db:"sort_seq"`
}

type warehouseRow struct {
	Saupj   string `db:"saupj"`
	WhsCode string `db:"whs_code"`
	WhsName string `db:"whs_name"`
	WhsType string `db:"whs_type"`
	UseYN   string `db:"use_yn"`
}

type lineRow struct {
	Saupj    string `db:"saupj"`
	LineCode string `db:"line_code"`
	LineName string `db:"line_name"`
	OpCode   string `db:"op_code"`
	LineWhs  string `db:"line_whs"`
}

type kanbanRow struct {
	KanbanNo   string `db:"kanban_no"`
	ItemCode   string `db:"item_code"`
	BoxNo      string `db:"box_no"`
	Status     string `db:"status"`
	ExpiryDate string `db:"expiry_date"`
}

// Codes códigos activos de un grupo, en orden de presentación.
func (r *MasterRepo) Codes(ctx context.Context, majorCode string) ([]entity.Code, error) {
	rows, err := Query[codeRow](ctx, r.q, `
		SELECT major_code, minor_code, code_name, sort_seq
		FROM pmc100 WHERE major_code = $1 AND use_yn = 'Y'
		ORDER BY sort_seq, minor_code`, majorCode)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}
	out := make([]entity.Code, len(rows))
	for i, c := range rows {
		out[i] = entity.Code(c)
	}
	return out, nil
}

// Warehouses almacenes activos.
func (r *MasterRepo) Warehouses(ctx context.Context, saupj string) ([]entity.Warehouse, error) {
	rows, err := Query[warehouseRow](ctx, r.q, `
		SELECT saupj, whs_code, whs_name, whs_type, use_yn
		FROM pmw100 WHERE saupj = $1 AND use_yn = 'Y'
		ORDER BY whs_code`, saupj)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	out := make([]entity.Warehouse, len(rows))
	for i, w := range rows {
		out[i] = entity.Warehouse(w)
	}
	return out, nil
}

// Lines líneas activas; opCode vacío no filtra.
func (r *MasterRepo) Lines(ctx context.Context, saupj, opCode string) ([]entity.Line, error) {
	rows, err := Query[lineRow](ctx, r.q, `
		SELECT saupj, line_code, line_name, op_code, line_whs
		FROM pml100 WHERE saupj = $1 AND ($2 = '' OR op_code = $2) AND use_yn = 'Y'
		ORDER BY line_code`, saupj, opCode)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	out := make([]entity.Line, len(rows))
	for i, l := range rows {
		out[i] = entity.Line(l)
	}
	return out, nil
}

// Line nil si no existe.
func (r *MasterRepo) Line(ctx context.Context, saupj, lineCode string) (*entity.Line, error) {
	row, err := QueryOne[lineRow](ctx, r.q, `
		SELECT saupj, line_code, line_name, op_code, line_whs
		FROM pml100 WHERE saupj = $1 AND line_code = $2`, saupj, lineCode)
	if err != nil {
		return nil, fmt.Errorf("get line: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	l := entity.Line(*row)
	return &l, nil
}

// Kanban nil si no está registrado.
func (r *MasterRepo) Kanban(ctx context.Context, kanbanNo string) (*entity.Kanban, error) {
	row, err := QueryOne[kanbanRow](ctx, r.q, `
		SELECT kanban_no, item_code, box_no, status, expiry_date
		FROM pmk100 WHERE kanban_no = $1`, kanbanNo)
	if err != nil {
		return nil, fmt.Errorf("get kanban: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	k := entity.Kanban(*row)
	return &k, nil
}

// UpsertWarehouse alta o actualización por (saupj, whs_code).
func (r *MasterRepo) UpsertWarehouse(ctx context.Context, w *entity.Warehouse) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pmw100 (saupj, whs_code, whs_name, whs_type, use_yn)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (saupj, whs_code)
		DO UPDATE SET whs_name = EXCLUDED.whs_name, whs_type = EXCLUDED.whs_type, use_yn = EXCLUDED.use_yn`,
		w.Saupj, w.WhsCode, w.WhsName, w.WhsType, w.UseYN)
	if err != nil {
		return fmt.Errorf("upsert warehouse: %w", err)
	}
	return nil
}
