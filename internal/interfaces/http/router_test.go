package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/application/usecase"
	"github.com/invorya/inventario-core/internal/domain/entity"
	"github.com/invorya/inventario-core/internal/domain/repository"
	apphttp "github.com/invorya/inventario-core/internal/interfaces/http"
	pkgjwt "github.com/invorya/inventario-core/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type rtStore struct {
	products      map[string]*entity.Product
	logs          []*entity.InventoryLog
	staffByUserID map[string]*entity.Staff
	managers      map[string]*entity.Manager
}

type rtProductRepo struct{ s *rtStore }

func (r *rtProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *rtProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *rtProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *rtProductRepo) List(int, int) ([]*entity.Product, error)        { return nil, nil }
func (r *rtProductRepo) ListAll() ([]*entity.Product, error)             { return nil, nil }
func (r *rtProductRepo) ListByManager(string) ([]*entity.Product, error) { return nil, nil }
func (r *rtProductRepo) ListLowStock() ([]*entity.Product, error)        { return nil, nil }
func (r *rtProductRepo) CountAll() (int64, error)                        { return 0, nil }
func (r *rtProductRepo) CountByManager(managerID string) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.ManagerID != nil && *p.ManagerID == managerID {
			n++
		}
	}
	return n, nil
}
func (r *rtProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *rtProductRepo) UpdateQuantity(id string, quantity int64) error {
	if p, ok := r.s.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *rtProductRepo) Delete(id string) error { delete(r.s.products, id); return nil }

type rtLogRepo struct{ s *rtStore }

func (r *rtLogRepo) Create(l *entity.InventoryLog) error {
	r.s.logs = append(r.s.logs, l)
	return nil
}
func (r *rtLogRepo) ListByProduct(string) ([]*entity.InventoryLog, error) { return nil, nil }
func (r *rtLogRepo) ListByStaff(string) ([]*entity.InventoryLog, error)   { return nil, nil }
func (r *rtLogRepo) ListAll() ([]*entity.InventoryLog, error)             { return r.s.logs, nil }
func (r *rtLogRepo) CountAll() (int64, error)                             { return int64(len(r.s.logs)), nil }

type rtStaffRepo struct{ s *rtStore }

func (r *rtStaffRepo) Create(st *entity.Staff) error { r.s.staffByUserID[st.UserID] = st; return nil }
func (r *rtStaffRepo) GetByID(string) (*entity.Staff, error) { return nil, nil }
func (r *rtStaffRepo) GetByUserID(userID string) (*entity.Staff, error) {
	st, ok := r.s.staffByUserID[userID]
	if !ok {
		return nil, nil
	}
	return st, nil
}
func (r *rtStaffRepo) List(int, int) ([]*entity.Staff, error)        { return nil, nil }
func (r *rtStaffRepo) ListByManager(string) ([]*entity.Staff, error) { return nil, nil }
func (r *rtStaffRepo) CountByManager(managerID string) (int64, error) {
	var n int64
	for _, st := range r.s.staffByUserID {
		if st.ManagerID != nil && *st.ManagerID == managerID {
			n++
		}
	}
	return n, nil
}
func (r *rtStaffRepo) Update(*entity.Staff) error { return nil }
func (r *rtStaffRepo) Delete(string) error        { return nil }

type rtManagerRepo struct{ s *rtStore }

func (r *rtManagerRepo) Create(m *entity.Manager) error { r.s.managers[m.ID] = m; return nil }
func (r *rtManagerRepo) GetByID(id string) (*entity.Manager, error) {
	m, ok := r.s.managers[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (r *rtManagerRepo) GetByUserID(string) (*entity.Manager, error) { return nil, nil }
func (r *rtManagerRepo) List(int, int) ([]*entity.Manager, error)    { return nil, nil }
func (r *rtManagerRepo) Update(*entity.Manager) error                { return nil }
func (r *rtManagerRepo) Delete(string) error                         { return nil }

type rtTxRunner struct{ s *rtStore }

func (t *rtTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryLogRepository) error) error {
	return fn(&rtProductRepo{s: t.s}, &rtLogRepo{s: t.s})
}

// buildRouterApp monta el router completo sobre fakes: un manager m1 con un
// producto p1 (cantidad 10), un usuario manager con perfil de staff y un
// usuario staff con perfil de staff.
func buildRouterApp(t *testing.T) (*fiber.App, *rtStore) {
	t.Helper()
	managerID := "m1"
	s := &rtStore{
		products: map[string]*entity.Product{
			"p1": {ID: "p1", SKU: "SKU-1", Name: "Tornillos",
				Quantity: 10, LowThreshold: 2, HighThreshold: 100, ManagerID: &managerID},
		},
		staffByUserID: map[string]*entity.Staff{
			"u-manager": {ID: "st-m", UserID: "u-manager", ManagerID: &managerID},
			"u-staff":   {ID: "st-s", UserID: "u-staff", ManagerID: &managerID},
		},
		managers: map[string]*entity.Manager{
			"m1": {ID: "m1", UserID: "u-manager", Email: "m1@example.com"},
		},
	}
	productRepo := &rtProductRepo{s: s}
	logRepo := &rtLogRepo{s: s}
	staffRepo := &rtStaffRepo{s: s}
	managerRepo := &rtManagerRepo{s: s}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:    usecase.NewUserUseCase(nil),
		ManagerUC: usecase.NewManagerUseCase(managerRepo, staffRepo, productRepo),
		StaffUC:   usecase.NewStaffUseCase(staffRepo, managerRepo, productRepo, logRepo),
		ProductUC: usecase.NewProductUseCase(productRepo, managerRepo, logRepo),
		StockUC:   stock.NewUpdateStockUseCase(&rtTxRunner{s: s}, productRepo, staffRepo),
		LogUC:     usecase.NewLogUseCase(logRepo),
		ReportUC:  report.NewReportUseCase(logRepo, productRepo, managerRepo, staffRepo),
		JWTSecret: testJWTSecret,
	})
	return app, s
}

func routerToken(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, false, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", authHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización de la mutación de stock
// ──────────────────────────────────────────────────────────────────────────────

// La mutación de stock es manager o superior: un rol staff recibe 403 y ni la
// cantidad ni el log se tocan.
func TestRouter_MutacionDeStockRequiereManager(t *testing.T) {
	app, s := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/p1/stock",
		routerToken(t, "u-staff", "staff"),
		map[string]any{"quantity": 5, "action": "add"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"staff no puede mutar stock")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
	assert.Equal(t, int64(10), s.products["p1"].Quantity, "la cantidad no cambia")
	assert.Empty(t, s.logs, "ningún log escrito")
}

func TestRouter_ManagerMutaStock(t *testing.T) {
	app, s := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/p1/stock",
		routerToken(t, "u-manager", "manager"),
		map[string]any{"quantity": 5, "action": "add"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(15), out["new_quantity"])

	require.Len(t, s.logs, 1)
	require.NotNil(t, s.logs[0].PerformedBy)
	assert.Equal(t, "st-m", *s.logs[0].PerformedBy,
		"el log queda atribuido al perfil de staff del caller")
}

// Lectura de stock sigue abierta a cualquier autenticado.
func TestRouter_StaffConsultaStock(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/p1/stock",
		routerToken(t, "u-staff", "staff"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización del reporte de manager
// ──────────────────────────────────────────────────────────────────────────────

// El reporte de un manager es nivel manager, como el resto de /reports/*;
// la administración de managers sigue siendo solo admin.
func TestRouter_ReporteDeManagerNivelManager(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/managers/m1/report",
		routerToken(t, "u-manager", "manager"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un manager puede ver el reporte")
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(2), out["total_staff"])
	assert.Equal(t, float64(1), out["total_products"])
}

func TestRouter_ReporteDeManagerProhibidoParaStaff(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/managers/m1/report",
		routerToken(t, "u-staff", "staff"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_DetalleDeManagerSoloAdmin(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/managers/m1",
		routerToken(t, "u-manager", "manager"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la administración de managers sigue siendo solo admin")

	resp = doJSON(t, app, http.MethodGet, "/api/managers/m1",
		routerToken(t, "u-admin", "admin"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
