package repository

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// InspectionRepository puerto sobre pmq100.
type InspectionRepository interface {
	// Create inserta el resultado; false si la unidad ya tenía resultado en ese lote.
	Create(ctx context.Context, r *entity.InspectionRecord) (bool, error)
}
