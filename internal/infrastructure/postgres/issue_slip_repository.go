package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.IssueSlipRepository = (*IssueSlipRepo)(nil)

// IssueSlipRepo vales de salida (pmr100).
type IssueSlipRepo struct {
	q Querier
}

// NewIssueSlipRepository construye el adaptador.
func NewIssueSlipRepository(q Querier) *IssueSlipRepo {
	return &IssueSlipRepo{q: q}
}

type issueSlipRow struct {
	Saupj     string     `db:"saupj"`
	SlipNo    string     `db:"slip_no"`
	FromWhs   string     `db:"from_whs"`
	ToWhs     string     `db:"to_whs"`
	Status    string     `db:"status"`
	IssueUser string     `db:"issue_user"`
	IssueDt   *time.Time `db:"issue_dt"`
}

// GetForUpdate bloquea el vale mientras se emite; nil si no existe.
func (r *IssueSlipRepo) GetForUpdate(ctx context.Context, saupj, slipNo string) (*entity.IssueSlip, error) {
	row, err := QueryOne[issueSlipRow](ctx, r.q, `
		SELECT saupj, slip_no, from_whs, to_whs, status, issue_user, issue_dt
		FROM pmr100 WHERE saupj = $1 AND slip_no = $2
		FOR UPDATE`, saupj, slipNo)
	if err != nil {
		return nil, fmt.Errorf("get issue slip: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return &entity.IssueSlip{
		Saupj:    row.Saupj,
		SlipNo:   row.SlipNo,
		FromWhs:  row.FromWhs,
		ToWhs:    row.ToWhs,
		Status:   row.Status,
		IssuedBy: row.IssueUser,
		IssuedAt: row.IssueDt,
	}, nil
}

// MarkIssued cierra el vale solo si seguía abierto.
func (r *IssueSlipRepo) MarkIssued(ctx context.Context, saupj, slipNo, user string, at time.Time) (bool, error) {
	n, err := Execute(ctx, r.q, `
		UPDATE pmr100 SET status = 'C', issue_user = $3, issue_dt = $4
		WHERE saupj = $1 AND slip_no = $2 AND status = 'O'`, saupj, slipNo, user, at)
	if err != nil {
		return false, fmt.Errorf("mark slip issued: %w", err)
	}
	return n > 0, nil
}
