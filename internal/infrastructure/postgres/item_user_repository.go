package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository = (*ItemRepo)(nil)
	_ repository.UserRepository = (*UserRepo)(nil)
)

// ItemRepo maestro de ítems (pmi100).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

type itemRow struct {
	ItemCode  string    `db:"item_code"`
	ItemName  string    `db:"item_name"`
	Spec      string    `db:"spec"`
	Unit      string    `db:"unit"`
	UseYN     string    `db:"use_yn"`
	UpdatedAt time.Time `db:"upd_dt"`
}

// GetByCode nil si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, itemCode string) (*entity.Item, error) {
	row, err := QueryOne[itemRow](ctx, r.q, `
		SELECT item_code, item_name, spec, unit, use_yn, upd_dt FROM pmi100 WHERE item_code = $1`, itemCode)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	it := entity.Item(*row)
	return &it, nil
}

// Upsert alta o actualización desde la importación de maestros.
func (r *ItemRepo) Upsert(ctx context.Context, item *entity.Item) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pmi100 (item_code, item_name, spec, unit, use_yn, upd_dt)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (item_code)
		DO UPDATE SET item_name = EXCLUDED.item_name, spec = EXCLUDED.spec, unit = EXCLUDED.unit,
			use_yn = EXCLUDED.use_yn, upd_dt = EXCLUDED.upd_dt`,
		item.ItemCode, item.ItemName, item.Spec, item.Unit, item.UseYN, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// UserRepo operadores del PDA (pmu100).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

type userRow struct {
	UserID       string    `db:"user_id"`
	Saupj        string    `db:"saupj"`
	UserName     string    `db:"user_name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	UseYN        string    `db:"use_yn"`
	CreatedAt    time.Time `db:"created_at"`
}

// GetByID nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	row, err := QueryOne[userRow](ctx, r.q, `
		SELECT user_id, saupj, user_name, password_hash, role, use_yn, created_at
		FROM pmu100 WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	u := entity.User(*row)
	return &u, nil
}
