package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/domain"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore estado compartido entre los repos fake.
// failLogCreate fuerza el fallo del append del log para probar el rollback.
type fakeStore struct {
	products      map[string]*entity.Product
	logs          []*entity.InventoryLog
	staffByUserID map[string]*entity.Staff
	failLogCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:      map[string]*entity.Product{},
		staffByUserID: map[string]*entity.Staff{},
	}
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)                  { return nil, nil }
func (r *fakeProductRepo) ListByManager(string) ([]*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)             { return nil, nil }
func (r *fakeProductRepo) CountAll() (int64, error)                             { return 0, nil }
func (r *fakeProductRepo) CountByManager(string) (int64, error)                 { return 0, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                       { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return errors.New("producto no existe")
	}
	p.Quantity = quantity
	return nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type fakeLogRepo struct{ s *fakeStore }

func (r *fakeLogRepo) Create(l *entity.InventoryLog) error {
	if r.s.failLogCreate {
		return errors.New("insert del log rechazado")
	}
	r.s.logs = append(r.s.logs, l)
	return nil
}
func (r *fakeLogRepo) ListByProduct(string) ([]*entity.InventoryLog, error) { return nil, nil }
func (r *fakeLogRepo) ListByStaff(string) ([]*entity.InventoryLog, error)   { return nil, nil }
func (r *fakeLogRepo) ListAll() ([]*entity.InventoryLog, error)             { return r.s.logs, nil }
func (r *fakeLogRepo) CountAll() (int64, error)                             { return int64(len(r.s.logs)), nil }

type fakeStaffRepo struct{ s *fakeStore }

func (r *fakeStaffRepo) Create(st *entity.Staff) error { r.s.staffByUserID[st.UserID] = st; return nil }
func (r *fakeStaffRepo) GetByID(string) (*entity.Staff, error) { return nil, nil }
func (r *fakeStaffRepo) GetByUserID(userID string) (*entity.Staff, error) {
	st, ok := r.s.staffByUserID[userID]
	if !ok {
		return nil, nil
	}
	return st, nil
}
func (r *fakeStaffRepo) List(int, int) ([]*entity.Staff, error)          { return nil, nil }
func (r *fakeStaffRepo) ListByManager(string) ([]*entity.Staff, error)   { return nil, nil }
func (r *fakeStaffRepo) CountByManager(string) (int64, error)            { return 0, nil }
func (r *fakeStaffRepo) Update(*entity.Staff) error                      { return nil }
func (r *fakeStaffRepo) Delete(string) error                             { return nil }

// fakeTxRunner serializa las transacciones con un mutex (equivalente al
// bloqueo de fila) y revierte el estado del store si fn devuelve error.
type fakeTxRunner struct {
	mu sync.Mutex
	s  *fakeStore
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryLogRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Snapshot para simular el rollback
	snapshot := map[string]entity.Product{}
	for id, p := range t.s.products {
		snapshot[id] = *p
	}
	logsLen := len(t.s.logs)

	err := fn(&fakeProductRepo{s: t.s}, &fakeLogRepo{s: t.s})
	if err != nil {
		for id := range t.s.products {
			cp := snapshot[id]
			t.s.products[id] = &cp
		}
		t.s.logs = t.s.logs[:logsLen]
	}
	return err
}

func newTestUseCase(s *fakeStore) *stock.UpdateStockUseCase {
	return stock.NewUpdateStockUseCase(
		&fakeTxRunner{s: s},
		&fakeProductRepo{s: s},
		&fakeStaffRepo{s: s},
	)
}

func seedProduct(s *fakeStore, id string, quantity, low, high int64) {
	s.products[id] = &entity.Product{
		ID: id, SKU: "SKU-" + id, Name: "Producto " + id,
		Quantity: quantity, LowThreshold: low, HighThreshold: high,
	}
}

func seedStaff(s *fakeStore, userID, staffID string) {
	s.staffByUserID[userID] = &entity.Staff{ID: staffID, UserID: userID}
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		delta    int64
		action   string
		want     int64
	}{
		{"add suma", 10, 5, entity.ActionAdd, 15},
		{"add desde cero", 0, 7, entity.ActionAdd, 7},
		{"remove resta", 10, 3, entity.ActionRemove, 7},
		{"remove exacto queda en cero", 10, 10, entity.ActionRemove, 0},
		{"remove con clamp a cero", 8, 20, entity.ActionRemove, 0},
		{"adjust no cambia", 10, 99, entity.ActionAdjust, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.ApplyDelta(tc.quantity, tc.delta, tc.action))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_EscenarioAddLuegoRemove(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 8, 10, 50)
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	// add 5: 8 → 13, dentro del rango normal
	res, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 5, Action: entity.ActionAdd, CallerUserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13), res.NewQuantity)
	assert.Equal(t, entity.StockNormal, res.Status)

	// remove 20: clamp a 0, estado low, pero el log guarda el delta pedido (20)
	res, err = uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 20, Action: entity.ActionRemove, CallerUserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.NewQuantity)
	assert.Equal(t, entity.StockLow, res.Status)

	require.Len(t, s.logs, 2, "exactamente un log por mutación exitosa")
	last := s.logs[1]
	assert.Equal(t, entity.ActionRemove, last.ActionType)
	assert.Equal(t, int64(20), last.QuantityChange, "el log guarda el delta solicitado, no el efectivo")
	require.NotNil(t, last.PerformedBy)
	assert.Equal(t, "st1", *last.PerformedBy)
}

func TestUpdateStock_AdjustSoloRegistra(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 30, 10, 50)
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	res, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 30, Action: entity.ActionAdjust,
		Notes: "conteo físico coincide", CallerUserID: "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.NewQuantity, "adjust no cambia la cantidad")

	require.Len(t, s.logs, 1)
	assert.Equal(t, entity.ActionAdjust, s.logs[0].ActionType)
	assert.Equal(t, int64(30), s.logs[0].QuantityChange)
	assert.Equal(t, "conteo físico coincide", s.logs[0].Notes)
}

func TestUpdateStock_AccionInvalida(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 10, 2, 50)
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 5, Action: "transfer", CallerUserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, s.logs, "una mutación rechazada no deja log")
}

func TestUpdateStock_DeltaNegativo(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 10, 2, 50)
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: -5, Action: entity.ActionAdd, CallerUserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateStock_SinPerfilStaff(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 10, 2, 50)
	// u1 existe como usuario pero no tiene perfil de staff
	uc := newTestUseCase(s)

	_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 5, Action: entity.ActionAdd, CallerUserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNoStaffProfile)
	assert.Equal(t, int64(10), s.products["p1"].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, s.logs)
}

func TestUpdateStock_ProductoInexistente(t *testing.T) {
	s := newFakeStore()
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "nope", Delta: 5, Action: entity.ActionAdd, CallerUserID: "u1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.logs)
}

// Si el append del log falla, el update de cantidad se revierte:
// nunca queda una mutación sin su registro de auditoría.
func TestUpdateStock_FalloDelLogRevierteLaCantidad(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 10, 2, 50)
	seedStaff(s, "u1", "st1")
	s.failLogCreate = true
	uc := newTestUseCase(s)

	_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
		ProductID: "p1", Delta: 5, Action: entity.ActionAdd, CallerUserID: "u1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIntegrity)
	assert.Equal(t, int64(10), s.products["p1"].Quantity, "rollback de la cantidad")
	assert.Empty(t, s.logs)
}

// Dos mutaciones concurrentes sobre el mismo producto se serializan por el
// bloqueo de fila: ninguna se pierde.
func TestUpdateStock_ConcurrenciaSerializada(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 10, 2, 100)
	seedStaff(s, "u1", "st1")
	uc := newTestUseCase(s)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
			ProductID: "p1", Delta: 5, Action: entity.ActionAdd, CallerUserID: "u1",
		})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := uc.UpdateStock(context.Background(), stock.UpdateStockInput{
			ProductID: "p1", Delta: 3, Action: entity.ActionRemove, CallerUserID: "u1",
		})
		assert.NoError(t, err)
	}()
	wg.Wait()

	assert.Equal(t, int64(12), s.products["p1"].Quantity, "10 + 5 - 3 = 12 sin importar el orden")
	assert.Len(t, s.logs, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetStock
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock(t *testing.T) {
	s := newFakeStore()
	seedProduct(s, "p1", 3, 10, 50)
	uc := newTestUseCase(s)

	res, err := uc.GetStock("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.NewQuantity)
	assert.Equal(t, entity.StockLow, res.Status)

	_, err = uc.GetStock("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
