package repository

import (
	"context"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// IssueSlipRepository puerto sobre pmr100.
type IssueSlipRepository interface {
	GetForUpdate(ctx context.Context, saupj, slipNo string) (*entity.IssueSlip, error)
	// MarkIssued cierra el vale solo si seguía abierto.
	MarkIssued(ctx context.Context, saupj, slipNo, user string, at time.Time) (bool, error)
}
