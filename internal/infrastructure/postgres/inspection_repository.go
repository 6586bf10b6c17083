package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.InspectionRepository = (*InspectionRepo)(nil)

// InspectionRepo resultados de inspección (pmq100).
type InspectionRepo struct {
	q Querier
}

// NewInspectionRepository construye el adaptador.
func NewInspectionRepository(q Querier) *InspectionRepo {
	return &InspectionRepo{q: q}
}

// Create inserta el resultado; la clave única del lote convierte el reescaneo en 0 filas.
func (r *InspectionRepo) Create(ctx context.Context, rec *entity.InspectionRecord) (bool, error) {
	n, err := Execute(ctx, r.q, `
		INSERT INTO pmq100 (id, saupj, op_code, line_code, check_date, order_no, box_no, result, check_dt, reg_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (saupj, op_code, line_code, check_date, box_no) DO NOTHING`,
		rec.ID, rec.Saupj, rec.OpCode, rec.LineCode, rec.CheckDate, rec.OrderNo, rec.BoxNo, rec.Result, rec.CheckedAt, rec.RegUser)
	if err != nil {
		return false, fmt.Errorf("create inspection: %w", err)
	}
	return n > 0, nil
}
