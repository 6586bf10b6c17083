package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo despachos (pmd100 cabecera, pmd110 líneas).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

type shipmentRow struct {
	ShipNo       string    `db:"ship_no"`
	Saupj        string    `db:"saupj"`
	ShipDate     time.Time `db:"ship_date"`
	Round        int       `db:"round"`
	CustomerCode string    `db:"customer_code"`
	WhsCode      string    `db:"whs_code"`
	RegUser      string    `db:"reg_user"`
	RegDt        time.Time `db:"reg_dt"`
}

type shipmentLineRow struct {
	ShipNo   string          `db:"ship_no"`
	BoxNo    string          `db:"box_no"`
	ItemCode string          `db:"item_code"`
	Qty      decimal.Decimal `db:"qty"`
}

// NextRound vuelta siguiente del día para la planta.
func (r *ShipmentRepo) NextRound(ctx context.Context, saupj string, shipDate time.Time) (int, error) {
	round, err := Scalar[int](ctx, r.q, `
		SELECT COALESCE(MAX(round), 0) + 1 FROM pmd100 WHERE saupj = $1 AND ship_date = $2`, saupj, shipDate)
	if err != nil {
		return 0, fmt.Errorf("next shipment round: %w", err)
	}
	if round == nil {
		return 1, nil
	}
	return *round, nil
}

// CreateHeader inserta la cabecera. Dos despachos simultáneos con la misma vuelta
// chocan en la clave única y el segundo recibe ErrConflict.
func (r *ShipmentRepo) CreateHeader(ctx context.Context, s *entity.Shipment) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pmd100 (ship_no, saupj, ship_date, round, customer_code, whs_code, reg_user, reg_dt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ShipNo, s.Saupj, s.ShipDate, s.Round, s.CustomerCode, s.WhsCode, s.RegUser, s.RegDate)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("despacho %s: %w", s.ShipNo, domain.ErrConflict)
		}
		return fmt.Errorf("create shipment: %w", err)
	}
	return nil
}

// AddLine inserta una línea del despacho.
func (r *ShipmentRepo) AddLine(ctx context.Context, l *entity.ShipmentLine) error {
	_, err := Execute(ctx, r.q, `
		INSERT INTO pmd110 (ship_no, box_no, item_code, qty) VALUES ($1, $2, $3, $4)`,
		l.ShipNo, l.BoxNo, l.ItemCode, l.Quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("box %s ya despachado en %s: %w", l.BoxNo, l.ShipNo, domain.ErrDuplicateScan)
		}
		return fmt.Errorf("add shipment line: %w", err)
	}
	return nil
}

// Get cabecera con sus líneas; nil si no existe.
func (r *ShipmentRepo) Get(ctx context.Context, shipNo string) (*entity.Shipment, error) {
	h, err := QueryOne[shipmentRow](ctx, r.q, `
		SELECT ship_no, saupj, ship_date, round, customer_code, whs_code, reg_user, reg_dt
		FROM pmd100 WHERE ship_no = $1`, shipNo)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if h == nil {
		return nil, nil
	}
	lines, err := Query[shipmentLineRow](ctx, r.q, `
		SELECT ship_no, box_no, item_code, qty FROM pmd110 WHERE ship_no = $1 ORDER BY box_no`, shipNo)
	if err != nil {
		return nil, fmt.Errorf("get shipment lines: %w", err)
	}
	s := &entity.Shipment{
		ShipNo:       h.ShipNo,
		Saupj:        h.Saupj,
		ShipDate:     h.ShipDate,
		Round:        h.Round,
		CustomerCode: h.CustomerCode,
		WhsCode:      h.WhsCode,
		RegUser:      h.RegUser,
		RegDate:      h.RegDt,
		Lines:        make([]entity.ShipmentLine, 0, len(lines)),
	}
	for _, l := range lines {
		s.Lines = append(s.Lines, entity.ShipmentLine{ShipNo: l.ShipNo, BoxNo: l.BoxNo, ItemCode: l.ItemCode, Quantity: l.Qty})
	}
	return s, nil
}
