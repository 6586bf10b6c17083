package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	domaininv "github.com/jhoicas/mes-pda-api/internal/domain/inventory"
)

// Mode define el alcance transaccional de un lote.
type Mode int

const (
	// PerItem una transacción por ítem; los rechazos se acumulan y el resto se aplica.
	PerItem Mode = iota
	// AllOrNothing una transacción para todo el lote; el primer rechazo revierte todo.
	AllOrNothing
)

func (m Mode) String() string {
	if m == AllOrNothing {
		return "all-or-nothing"
	}
	return "per-item"
}

// Policy modo por operación. Las operaciones no listadas son PerItem.
type Policy map[string]Mode

// NewPolicy marca como AllOrNothing las operaciones de atomicOps.
func NewPolicy(atomicOps []string) Policy {
	p := Policy{}
	for _, op := range atomicOps {
		op = strings.TrimSpace(op)
		if op != "" {
			p[op] = AllOrNothing
		}
	}
	return p
}

// ModeFor modo configurado para op.
func (p Policy) ModeFor(op string) Mode {
	return p[op]
}

// Verdict resultado de inspección que aporta un ítem a los contadores.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictOK
	VerdictNG
)

// Line un ítem del lote. Key identifica la unidad (boxNo, id de movimiento...) y
// se usa para detectar duplicados dentro del mismo lote.
type Line struct {
	Key   string
	Apply func(ctx context.Context, s Stores) (Verdict, error)
}

// Batch lote a procesar. Before corre antes de los ítems (cabeceras, bloqueo de vale)
// y After después de todos. Un lote con Before o After siempre es AllOrNothing: el
// bloqueo y la cabecera viven en la misma transacción que los ítems.
type Batch struct {
	Op     string
	Lines  []Line
	Before func(ctx context.Context, s Stores) error
	After  func(ctx context.Context, s Stores, res *Result) error
}

// Skipped ítem no aplicado.
type Skipped struct {
	Index  int                  `json:"index"`
	Key    string               `json:"key"`
	Reason domaininv.SkipReason `json:"reason"`
	Detail string               `json:"detail,omitempty"`
}

// Result resumen del lote.
type Result struct {
	Count   int       `json:"count"`
	OK      int       `json:"ok"`
	NG      int       `json:"ng"`
	Applied []string  `json:"applied"`
	Skipped []Skipped `json:"skipped"`
}

func newResult() *Result {
	return &Result{Applied: []string{}, Skipped: []Skipped{}}
}

func (r *Result) tally(key string, v Verdict) {
	r.Count++
	r.Applied = append(r.Applied, key)
	switch v {
	case VerdictOK:
		r.OK++
	case VerdictNG:
		r.NG++
	}
}

// lineError rechazo de un ítem dentro de una transacción de lote.
type lineError struct {
	index int
	key   string
	err   error
}

func (e *lineError) Error() string { return fmt.Sprintf("ítem %d (%s): %v", e.index, e.key, e.err) }
func (e *lineError) Unwrap() error { return e.err }

// Engine aplica lotes de ítems al libro de inventario.
type Engine struct {
	tx     TxRunner
	policy Policy
	log    zerolog.Logger
}

// NewEngine construye el motor.
func NewEngine(tx TxRunner, policy Policy, log zerolog.Logger) *Engine {
	if policy == nil {
		policy = Policy{}
	}
	return &Engine{tx: tx, policy: policy, log: log}
}

// Run procesa el lote según el modo configurado para b.Op. Devuelve ErrNoItemsProcessed
// (con el resultado para informar los rechazos) si ningún ítem se aplicó.
func (e *Engine) Run(ctx context.Context, b Batch) (*Result, error) {
	if len(b.Lines) == 0 {
		return nil, fmt.Errorf("%w: lista de ítems vacía", domain.ErrInvalidInput)
	}
	mode := e.modeFor(b)
	start := time.Now()

	var (
		res *Result
		err error
	)
	if mode == AllOrNothing {
		res, err = e.runAtomic(ctx, b)
	} else {
		res, err = e.runPerItem(ctx, b)
	}

	ev := e.log.Info()
	if err != nil {
		ev = e.log.Warn().Err(err)
	}
	if res != nil {
		ev = ev.Int("count", res.Count).Int("skipped", len(res.Skipped))
	}
	ev.Str("op", b.Op).Str("mode", mode.String()).Int("items", len(b.Lines)).
		Dur("elapsed", time.Since(start)).Msg("lote procesado")

	if err != nil {
		return res, err
	}
	if res.Count == 0 {
		return res, domain.ErrNoItemsProcessed
	}
	return res, nil
}

func (e *Engine) modeFor(b Batch) Mode {
	if b.Before != nil || b.After != nil {
		return AllOrNothing
	}
	return e.policy.ModeFor(b.Op)
}

func (e *Engine) runPerItem(ctx context.Context, b Batch) (*Result, error) {
	res := newResult()

	seen := make(map[string]bool, len(b.Lines))
	for i, line := range b.Lines {
		if line.Key != "" && seen[line.Key] {
			res.Skipped = append(res.Skipped, Skipped{Index: i, Key: line.Key, Reason: domaininv.SkipDuplicate})
			continue
		}
		seen[line.Key] = true

		var v Verdict
		err := e.tx.Run(ctx, func(s Stores) error {
			var applyErr error
			v, applyErr = line.Apply(ctx, s)
			return applyErr
		})
		if err != nil {
			res.Skipped = append(res.Skipped, e.skip(b.Op, i, line.Key, err))
			continue
		}
		res.tally(line.Key, v)
	}
	return res, nil
}

func (e *Engine) runAtomic(ctx context.Context, b Batch) (*Result, error) {
	var res *Result
	err := e.tx.Run(ctx, func(s Stores) error {
		res = newResult()
		if b.Before != nil {
			if err := b.Before(ctx, s); err != nil {
				return err
			}
		}
		seen := make(map[string]bool, len(b.Lines))
		for i, line := range b.Lines {
			if line.Key != "" && seen[line.Key] {
				return &lineError{index: i, key: line.Key, err: domain.ErrDuplicateScan}
			}
			seen[line.Key] = true
			v, err := line.Apply(ctx, s)
			if err != nil {
				return &lineError{index: i, key: line.Key, err: err}
			}
			res.tally(line.Key, v)
		}
		if b.After != nil {
			return b.After(ctx, s, res)
		}
		return nil
	})
	if err == nil {
		return res, nil
	}

	var le *lineError
	if !errors.As(err, &le) {
		return nil, err
	}
	sk := e.skip(b.Op, le.index, le.key, le.err)
	if !sk.Reason.IsBusiness() {
		return nil, le.err
	}
	rejected := newResult()
	rejected.Skipped = append(rejected.Skipped, sk)
	return rejected, fmt.Errorf("%w: %v", domain.ErrBatchRejected, le)
}

// skip clasifica el error de un ítem; las fallas técnicas se registran con su detalle
// pero no se exponen al cliente.
func (e *Engine) skip(op string, index int, key string, err error) Skipped {
	reason := domaininv.ReasonFor(err)
	sk := Skipped{Index: index, Key: key, Reason: reason}
	if reason.IsBusiness() {
		sk.Detail = err.Error()
		e.log.Debug().Str("op", op).Str("key", key).Str("reason", string(reason)).Msg("ítem omitido")
		return sk
	}
	e.log.Error().Err(err).Str("op", op).Str("key", key).Int("index", index).Msg("ítem falló")
	return sk
}
