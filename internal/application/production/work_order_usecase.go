package production

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

// WorkOrderUseCase transiciones de órdenes de trabajo pedidas desde el PDA.
type WorkOrderUseCase struct {
	repo repository.WorkOrderRepository
	now  func() time.Time
}

// NewWorkOrderUseCase construye el caso de uso.
func NewWorkOrderUseCase(repo repository.WorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, now: time.Now}
}

// Apply aplica action (ready|start|end) a la orden. Una orden completada rechaza
// cualquier acción con ErrWorkOrderCompleted; el resto de transiciones no
// permitidas devuelve ErrInvalidTransition.
func (uc *WorkOrderUseCase) Apply(ctx context.Context, saupj, userID, orderNo, action string) (*entity.WorkOrder, error) {
	tr, ok := entity.TransitionFor(action)
	if !ok {
		return nil, domain.ErrInvalidAction
	}
	wo, err := uc.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if wo == nil || (saupj != "" && wo.Saupj != saupj) {
		return nil, fmt.Errorf("orden %s: %w", orderNo, domain.ErrNotFound)
	}
	return uc.transition(ctx, wo, tr, userID)
}

// ApplyNext aplica action a la siguiente orden abierta de la línea.
func (uc *WorkOrderUseCase) ApplyNext(ctx context.Context, saupj, userID, opCode, lineCode, action string) (*entity.WorkOrder, error) {
	tr, ok := entity.TransitionFor(action)
	if !ok {
		return nil, domain.ErrInvalidAction
	}
	wo, err := uc.repo.NextOpen(ctx, saupj, opCode, lineCode)
	if err != nil {
		return nil, err
	}
	if wo == nil {
		return nil, fmt.Errorf("sin órdenes abiertas para %s/%s: %w", opCode, lineCode, domain.ErrNotFound)
	}
	return uc.transition(ctx, wo, tr, userID)
}

func (uc *WorkOrderUseCase) transition(ctx context.Context, wo *entity.WorkOrder, tr entity.Transition, userID string) (*entity.WorkOrder, error) {
	if err := check(wo.Status, tr); err != nil {
		return nil, err
	}
	applied, err := uc.repo.ApplyTransition(ctx, wo.OrderNo, tr, userID, uc.now())
	if err != nil {
		return nil, err
	}
	cur, err := uc.repo.GetByOrderNo(ctx, wo.OrderNo)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, fmt.Errorf("orden %s: %w", wo.OrderNo, domain.ErrNotFound)
	}
	if !applied {
		// otro PDA cambió el estado entre la lectura y el UPDATE
		if err := check(cur.Status, tr); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidTransition
	}
	return cur, nil
}

func check(s entity.WorkOrderStatus, tr entity.Transition) error {
	if s.IsTerminal() {
		return domain.ErrWorkOrderCompleted
	}
	if !tr.Allows(s) {
		return fmt.Errorf("%s desde %s: %w", tr.Action, s, domain.ErrInvalidTransition)
	}
	return nil
}
