package repository

import (
	"context"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// UserRepository puerto sobre pmu100.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.User, error)
}
