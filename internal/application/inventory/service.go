package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
	"github.com/jhoicas/mes-pda-api/pkg/bizdate"
)

// Nombres de operación; son las claves de la política de atomicidad (LEDGER_ATOMIC_OPERATIONS).
const (
	OpIssueNoSlip   = "issue-no-slip"
	OpIssueSlip     = "issue-slip"
	OpReceive       = "receive"
	OpReceiveCancel = "receive-cancel"
	OpRelease       = "release"
	OpOutsourcing   = "outsourcing"
	OpPartsInput    = "parts-input"
	OpInputCancel   = "input-cancel"
	OpStocktake     = "stocktaking"
	OpAssembly      = "assembly-result"
	OpSMDCheck      = "smd-check"
	OpPlanCheck     = "plan-check"
	OpShipment      = "shipment"
	OpReturn        = "return"
)

// ItemLine unidad escaneada con su cantidad.
type ItemLine struct {
	BoxNo    string
	ItemCode string
	LotNo    string
	Qty      decimal.Decimal
}

// Límites de las columnas pms100/pmb100: box_no VARCHAR(40), item_code y lot_no
// VARCHAR(30), qty NUMERIC(18,4).
const (
	maxBoxNo    = 40
	maxItemCode = 30
	maxLotNo    = 30
	qtyScale    = 4
)

func (l ItemLine) check() error {
	if err := checkUnit(l.BoxNo, l.ItemCode, l.LotNo, l.Qty); err != nil {
		return err
	}
	if !l.Qty.IsPositive() {
		return fmt.Errorf("%w: cantidad debe ser mayor que cero (%s)", domain.ErrInvalidInput, l.Qty)
	}
	return nil
}

// checkUnit rechaza lo que la base no puede guardar tal cual: textos más largos que
// la columna y cantidades con más de cuatro decimales (se redondearían).
func checkUnit(boxNo, itemCode, lotNo string, qty decimal.Decimal) error {
	switch {
	case strings.TrimSpace(boxNo) == "":
		return fmt.Errorf("%w: boxNo vacío", domain.ErrInvalidInput)
	case len(boxNo) > maxBoxNo:
		return fmt.Errorf("%w: boxNo excede %d caracteres", domain.ErrInvalidInput, maxBoxNo)
	case len(itemCode) > maxItemCode:
		return fmt.Errorf("%w: itemCode excede %d caracteres", domain.ErrInvalidInput, maxItemCode)
	case len(lotNo) > maxLotNo:
		return fmt.Errorf("%w: lotNo excede %d caracteres", domain.ErrInvalidInput, maxLotNo)
	case !qty.Equal(qty.Round(qtyScale)):
		return fmt.Errorf("%w: cantidad con más de %d decimales (%s)", domain.ErrInvalidInput, qtyScale, qty)
	}
	return nil
}

// Service operaciones del libro de inventario expuestas al PDA.
type Service struct {
	engine  *Engine
	masters repository.MasterRepository
	loc     *time.Location
	now     func() time.Time
}

// NewService construye el servicio. loc es la zona horaria de la planta para las fechas de negocio.
func NewService(engine *Engine, masters repository.MasterRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{engine: engine, masters: masters, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (svc *Service) WithClock(now func() time.Time) *Service {
	svc.now = now
	return svc
}

// businessDate interpreta la fecha del request; vacía = hoy en la planta.
func (svc *Service) businessDate(s string) (time.Time, error) {
	d, err := bizdate.ParseOr(s, svc.loc, bizdate.Today(svc.now(), svc.loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return d, nil
}

func requireFields(a Actor, fields map[string]string) error {
	if strings.TrimSpace(a.Saupj) == "" {
		return fmt.Errorf("%w: saupj requerido", domain.ErrInvalidInput)
	}
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s requerido", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

// lineWhs ubicación de stock de una línea de producción.
func (svc *Service) lineWhs(ctx context.Context, saupj, lineCode string) (string, error) {
	line, err := svc.masters.Line(ctx, saupj, lineCode)
	if err != nil {
		return "", err
	}
	if line == nil || line.LineWhs == "" {
		return "", fmt.Errorf("línea %s: %w", lineCode, domain.ErrNotFound)
	}
	return line.LineWhs, nil
}

// debit descuenta qty de la ubicación con un UPDATE condicional y devuelve la fila resultante.
// Si no se afectó ninguna fila distingue entre unidad inexistente y stock insuficiente.
func debit(ctx context.Context, s Stores, key entity.StockKey, qty decimal.Decimal, user string) (*entity.StockRecord, error) {
	ok, err := s.Stock.Decrement(ctx, key, qty, user)
	if err != nil {
		return nil, err
	}
	cur, err := s.Stock.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok && cur != nil {
		return cur, nil
	}
	if cur == nil {
		return nil, fmt.Errorf("box %s en %s: %w", key.BoxNo, key.WhsCode, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("box %s en %s: disponible %s, pedido %s: %w",
		key.BoxNo, key.WhsCode, cur.Quantity, qty, domain.ErrInsufficientStock)
}

// credit suma qty en la ubicación (upsert).
func credit(ctx context.Context, s Stores, key entity.StockKey, itemCode, lotNo string, qty decimal.Decimal, user string, at time.Time) error {
	if itemCode == "" {
		return fmt.Errorf("%w: itemCode requerido para %s", domain.ErrInvalidInput, key.BoxNo)
	}
	return s.Stock.Increment(ctx, &entity.StockRecord{
		Saupj:     key.Saupj,
		BoxNo:     key.BoxNo,
		WhsCode:   key.WhsCode,
		ItemCode:  itemCode,
		LotNo:     lotNo,
		Quantity:  qty,
		UpdUser:   user,
		UpdatedAt: at,
	})
}

// record agrega la fila de auditoría del movimiento.
func record(ctx context.Context, s Stores, m *entity.MovementRecord) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return s.Movements.Create(ctx, m)
}

// move describe un traslado: from y/o to pueden estar vacíos (solo salida o solo entrada).
type move struct {
	typ  string
	from string
	to   string
	ref  string
}

// moveLine ítem que descuenta el origen, acredita el destino y registra un único movimiento.
func (svc *Service) moveLine(a Actor, date time.Time, m func() move, it ItemLine) Line {
	return Line{Key: it.BoxNo, Apply: func(ctx context.Context, s Stores) (Verdict, error) {
		_, err := svc.applyMove(ctx, s, a, date, m(), it)
		return VerdictNone, err
	}}
}

// applyMove devuelve el código de ítem efectivo (el del request o el de la fila origen).
func (svc *Service) applyMove(ctx context.Context, s Stores, a Actor, date time.Time, mv move, it ItemLine) (string, error) {
	if err := it.check(); err != nil {
		return "", err
	}
	now := svc.now()
	itemCode, lotNo := it.ItemCode, it.LotNo
	if mv.from != "" {
		src, err := debit(ctx, s, entity.StockKey{Saupj: a.Saupj, BoxNo: it.BoxNo, WhsCode: mv.from}, it.Qty, a.UserID)
		if err != nil {
			return "", err
		}
		if itemCode == "" {
			itemCode = src.ItemCode
		}
		if lotNo == "" {
			lotNo = src.LotNo
		}
	}
	if mv.to != "" {
		key := entity.StockKey{Saupj: a.Saupj, BoxNo: it.BoxNo, WhsCode: mv.to}
		if err := credit(ctx, s, key, itemCode, lotNo, it.Qty, a.UserID, now); err != nil {
			return "", err
		}
	}
	return itemCode, record(ctx, s, &entity.MovementRecord{
		Saupj:    a.Saupj,
		MovDate:  date,
		BoxNo:    it.BoxNo,
		ItemCode: itemCode,
		FromWhs:  mv.from,
		ToWhs:    mv.to,
		Quantity: it.Qty,
		Type:     mv.typ,
		RefNo:    mv.ref,
		RegUser:  a.UserID,
		RegDate:  now,
	})
}

func fixed(m move) func() move { return func() move { return m } }
