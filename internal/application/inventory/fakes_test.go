package inventory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
	"github.com/jhoicas/mes-pda-api/internal/domain/repository"
)

// memDB base en memoria: cada Run serializa y revierte el estado si fn falla.
type memDB struct {
	mu          sync.Mutex
	stock       map[entity.StockKey]*entity.StockRecord
	movements   []*entity.MovementRecord
	inspections map[string]*entity.InspectionRecord
	shipments   map[string]*entity.Shipment
	slips       map[string]*entity.IssueSlip
	lines       map[string]entity.Line
	failMovement error // si no es nil, Movements.Create falla
	txCount      int
}

func newMemDB() *memDB {
	return &memDB{
		stock:       map[entity.StockKey]*entity.StockRecord{},
		inspections: map[string]*entity.InspectionRecord{},
		shipments:   map[string]*entity.Shipment{},
		slips:       map[string]*entity.IssueSlip{},
		lines:       map[string]entity.Line{},
	}
}

type memSnapshot struct {
	stock       map[entity.StockKey]entity.StockRecord
	movements   []entity.MovementRecord
	inspections map[string]entity.InspectionRecord
	shipments   map[string]entity.Shipment
	slips       map[string]entity.IssueSlip
}

func (db *memDB) snapshot() memSnapshot {
	s := memSnapshot{
		stock:       map[entity.StockKey]entity.StockRecord{},
		inspections: map[string]entity.InspectionRecord{},
		shipments:   map[string]entity.Shipment{},
		slips:       map[string]entity.IssueSlip{},
	}
	for k, v := range db.stock {
		s.stock[k] = *v
	}
	for _, m := range db.movements {
		s.movements = append(s.movements, *m)
	}
	for k, v := range db.inspections {
		s.inspections[k] = *v
	}
	for k, v := range db.shipments {
		cp := *v
		cp.Lines = append([]entity.ShipmentLine(nil), v.Lines...)
		s.shipments[k] = cp
	}
	for k, v := range db.slips {
		s.slips[k] = *v
	}
	return s
}

func (db *memDB) restore(s memSnapshot) {
	db.stock = map[entity.StockKey]*entity.StockRecord{}
	for k, v := range s.stock {
		v := v
		db.stock[k] = &v
	}
	db.movements = nil
	for _, m := range s.movements {
		m := m
		db.movements = append(db.movements, &m)
	}
	db.inspections = map[string]*entity.InspectionRecord{}
	for k, v := range s.inspections {
		v := v
		db.inspections[k] = &v
	}
	db.shipments = map[string]*entity.Shipment{}
	for k, v := range s.shipments {
		v := v
		db.shipments[k] = &v
	}
	db.slips = map[string]*entity.IssueSlip{}
	for k, v := range s.slips {
		v := v
		db.slips[k] = &v
	}
}

func (db *memDB) Run(ctx context.Context, fn func(s Stores) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.txCount++
	snap := db.snapshot()
	err := fn(Stores{
		Stock:       memStock{db},
		Movements:   memMovements{db},
		Inspections: memInspections{db},
		Shipments:   memShipments{db},
		Slips:       memSlips{db},
	})
	if err != nil {
		db.restore(snap)
	}
	return err
}

func (db *memDB) put(saupj, box, whs, item string, qty int64) {
	db.stock[entity.StockKey{Saupj: saupj, BoxNo: box, WhsCode: whs}] = &entity.StockRecord{
		Saupj: saupj, BoxNo: box, WhsCode: whs, ItemCode: item, Quantity: decimal.NewFromInt(qty),
	}
}

func (db *memDB) qty(saupj, box, whs string) decimal.Decimal {
	db.mu.Lock()
	defer db.mu.Unlock()
	if r, ok := db.stock[entity.StockKey{Saupj: saupj, BoxNo: box, WhsCode: whs}]; ok {
		return r.Quantity
	}
	return decimal.Zero
}

func (db *memDB) movementsFor(box string) []entity.MovementRecord {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []entity.MovementRecord
	for _, m := range db.movements {
		if m.BoxNo == box {
			out = append(out, *m)
		}
	}
	return out
}

type memStock struct{ db *memDB }

func (r memStock) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	if v, ok := r.db.stock[key]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r memStock) GetForUpdate(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	return r.Get(ctx, key)
}

func (r memStock) ListByBox(_ context.Context, saupj, boxNo string) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for _, v := range r.db.stock {
		if v.Saupj == saupj && v.BoxNo == boxNo {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WhsCode < out[j].WhsCode })
	return out, nil
}

func (r memStock) Decrement(_ context.Context, key entity.StockKey, qty decimal.Decimal, user string) (bool, error) {
	v, ok := r.db.stock[key]
	if !ok || v.Quantity.LessThan(qty) {
		return false, nil
	}
	v.Quantity = v.Quantity.Sub(qty)
	v.UpdUser = user
	return true, nil
}

func (r memStock) Increment(_ context.Context, rec *entity.StockRecord) error {
	if v, ok := r.db.stock[rec.Key()]; ok {
		v.Quantity = v.Quantity.Add(rec.Quantity)
		v.UpdUser = rec.UpdUser
		return nil
	}
	cp := *rec
	r.db.stock[rec.Key()] = &cp
	return nil
}

func (r memStock) Set(_ context.Context, rec *entity.StockRecord) error {
	cp := *rec
	r.db.stock[rec.Key()] = &cp
	return nil
}

type memMovements struct{ db *memDB }

func (r memMovements) Create(_ context.Context, m *entity.MovementRecord) error {
	if r.db.failMovement != nil {
		return r.db.failMovement
	}
	cp := *m
	r.db.movements = append(r.db.movements, &cp)
	return nil
}

func (r memMovements) GetByID(_ context.Context, id string) (*entity.MovementRecord, error) {
	for _, m := range r.db.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memMovements) GetForUpdate(ctx context.Context, id string) (*entity.MovementRecord, error) {
	return r.GetByID(ctx, id)
}

func (r memMovements) MarkCancelled(_ context.Context, id, user string, at time.Time) (bool, error) {
	for _, m := range r.db.movements {
		if m.ID == id && !m.Cancelled {
			m.Cancelled = true
			m.CancelUser = user
			m.CancelledAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (r memMovements) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementRecord, error) {
	var out []*entity.MovementRecord
	for _, m := range r.db.movements {
		if m.Saupj == f.Saupj && (f.Type == "" || m.Type == f.Type) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memInspections struct{ db *memDB }

func (r memInspections) Create(_ context.Context, rec *entity.InspectionRecord) (bool, error) {
	key := rec.Saupj + "|" + rec.OpCode + "|" + rec.LineCode + "|" + rec.CheckDate.Format("20060102") + "|" + rec.BoxNo
	if _, ok := r.db.inspections[key]; ok {
		return false, nil
	}
	cp := *rec
	r.db.inspections[key] = &cp
	return true, nil
}

type memShipments struct{ db *memDB }

func (r memShipments) NextRound(_ context.Context, saupj string, shipDate time.Time) (int, error) {
	max := 0
	for _, s := range r.db.shipments {
		if s.Saupj == saupj && s.ShipDate.Equal(shipDate) && s.Round > max {
			max = s.Round
		}
	}
	return max + 1, nil
}

func (r memShipments) CreateHeader(_ context.Context, s *entity.Shipment) error {
	if _, ok := r.db.shipments[s.ShipNo]; ok {
		return errors.New("duplicate ship_no")
	}
	cp := *s
	r.db.shipments[s.ShipNo] = &cp
	return nil
}

func (r memShipments) AddLine(_ context.Context, l *entity.ShipmentLine) error {
	s, ok := r.db.shipments[l.ShipNo]
	if !ok {
		return errors.New("fk: cabecera inexistente")
	}
	s.Lines = append(s.Lines, *l)
	return nil
}

func (r memShipments) Get(_ context.Context, shipNo string) (*entity.Shipment, error) {
	if s, ok := r.db.shipments[shipNo]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

type memSlips struct{ db *memDB }

func (r memSlips) GetForUpdate(_ context.Context, saupj, slipNo string) (*entity.IssueSlip, error) {
	if s, ok := r.db.slips[saupj+"|"+slipNo]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r memSlips) MarkIssued(_ context.Context, saupj, slipNo, user string, at time.Time) (bool, error) {
	s, ok := r.db.slips[saupj+"|"+slipNo]
	if !ok || s.Status != entity.SlipOpen {
		return false, nil
	}
	s.Status = entity.SlipIssued
	s.IssuedBy = user
	s.IssuedAt = &at
	return true, nil
}

// memMasters solo resuelve líneas; el resto no se usa en estas pruebas.
type memMasters struct{ db *memDB }

func (m memMasters) Codes(context.Context, string) ([]entity.Code, error) { return nil, nil }
func (m memMasters) Warehouses(context.Context, string) ([]entity.Warehouse, error) {
	return nil, nil
}
func (m memMasters) Lines(context.Context, string, string) ([]entity.Line, error) { return nil, nil }
func (m memMasters) Line(_ context.Context, saupj, lineCode string) (*entity.Line, error) {
	if l, ok := m.db.lines[saupj+"|"+lineCode]; ok {
		return &l, nil
	}
	return nil, nil
}
func (m memMasters) Kanban(context.Context, string) (*entity.Kanban, error) { return nil, nil }
func (m memMasters) UpsertWarehouse(context.Context, *entity.Warehouse) error { return nil }
