package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransitionFor(t *testing.T) {
	cases := []struct {
		action string
		from   WorkOrderStatus
		allow  bool
		to     WorkOrderStatus
	}{
		{ActionReady, WorkOrderScheduled, true, WorkOrderReady},
		{ActionReady, WorkOrderReady, false, WorkOrderReady},
		{ActionStart, WorkOrderScheduled, true, WorkOrderStarted},
		{ActionStart, WorkOrderReady, true, WorkOrderStarted},
		{ActionStart, WorkOrderStarted, false, WorkOrderStarted},
		{ActionStart, WorkOrderCompleted, false, WorkOrderStarted},
		{ActionEnd, WorkOrderStarted, true, WorkOrderCompleted},
		{ActionEnd, WorkOrderReady, false, WorkOrderCompleted},
		{ActionEnd, WorkOrderCompleted, false, WorkOrderCompleted},
	}
	for _, c := range cases {
		tr, ok := TransitionFor(c.action)
		assert.True(t, ok, c.action)
		assert.Equal(t, c.allow, tr.Allows(c.from), "%s desde %s", c.action, c.from)
		assert.Equal(t, c.to, tr.To)
	}
}

func TestTransitionFor_AccionDesconocida(t *testing.T) {
	_, ok := TransitionFor("pause")
	assert.False(t, ok)
}

func TestTransition_FromStrings(t *testing.T) {
	tr, _ := TransitionFor(ActionStart)
	assert.Equal(t, []string{"P", "R"}, tr.FromStrings())
}

func TestNoHayTransicionHaciaAtras(t *testing.T) {
	for _, action := range []string{ActionReady, ActionStart, ActionEnd} {
		tr, _ := TransitionFor(action)
		assert.False(t, tr.Allows(WorkOrderCompleted), "completado es terminal para %s", action)
	}
	assert.True(t, WorkOrderCompleted.IsTerminal())
	assert.False(t, WorkOrderStarted.IsTerminal())
}

func TestStockRecord_CanDebit(t *testing.T) {
	s := &StockRecord{Quantity: decimal.NewFromInt(100)}
	assert.True(t, s.CanDebit(decimal.NewFromInt(100)))
	assert.False(t, s.CanDebit(decimal.NewFromInt(101)))

	var missing *StockRecord
	assert.False(t, missing.CanDebit(decimal.NewFromInt(1)))
}

func TestMovementRecord_Cancellable(t *testing.T) {
	assert.True(t, (&MovementRecord{Type: MovementReceive}).Cancellable())
	assert.True(t, (&MovementRecord{Type: MovementInput}).Cancellable())
	assert.False(t, (&MovementRecord{Type: MovementReceive, Cancelled: true}).Cancellable())
	assert.False(t, (&MovementRecord{Type: MovementShipOut}).Cancellable())
}
