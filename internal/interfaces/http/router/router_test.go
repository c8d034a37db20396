package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	billingapp "github.com/factura/backend/internal/application/billing"
	catalogapp "github.com/factura/backend/internal/application/catalog"
	partnerapp "github.com/factura/backend/internal/application/partner"
	"github.com/factura/backend/internal/application/transfer"
	"github.com/factura/backend/internal/domain/billing"
	"github.com/factura/backend/internal/infrastructure/persistence"
	"github.com/factura/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRenderer struct{}

func (nopRenderer) Render(*billing.Invoice, *billing.IssuerProfile) ([]byte, error) {
	return []byte("%PDF"), nil
}

func setupTestEngine(t *testing.T, opts ...RouterOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.NewInMemoryDatabase()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	counterRepo := persistence.NewGormCounterRepository(db.DB)
	issuerRepo := persistence.NewGormIssuerProfileRepository(db.DB)

	invoiceService := billingapp.NewInvoiceService(
		invoiceRepo, counterRepo, issuerRepo, productRepo, customerRepo, nopRenderer{},
	)

	engine := gin.New()
	r := NewRouter(engine, Handlers{
		System:   handler.NewSystemHandler(),
		Product:  handler.NewProductHandler(catalogapp.NewProductService(productRepo)),
		Customer: handler.NewCustomerHandler(partnerapp.NewCustomerService(customerRepo)),
		Invoice:  handler.NewInvoiceHandler(invoiceService),
		Issuer:   handler.NewIssuerHandler(billingapp.NewIssuerService(issuerRepo)),
		Backup:   handler.NewBackupHandler(transfer.NewBackupService(productRepo, customerRepo, invoiceRepo, counterRepo)),
	}, opts...)
	r.Setup()
	return engine
}

// postJSON posts a document and returns the created resource's ID
func postJSON(t *testing.T, engine *gin.Engine, path, body string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data.ID
}

func TestRouter_MountsVersionedRoutes(t *testing.T) {
	engine := setupTestEngine(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/system/ping"},
		{http.MethodGet, "/api/v1/system/info"},
		{http.MethodGet, "/api/v1/catalog/products"},
		{http.MethodGet, "/api/v1/partner/customers"},
		{http.MethodGet, "/api/v1/billing/invoices"},
		{http.MethodGet, "/api/v1/billing/invoices/next-number"},
		{http.MethodGet, "/api/v1/billing/issuer"},
		{http.MethodGet, "/api/v1/transfer/backup"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, route.path)
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	engine := setupTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_NextNumberDoesNotCollideWithInvoiceID(t *testing.T) {
	engine := setupTestEngine(t)

	// the static segment must win over the :id parameter
	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/invoices/next-number", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "000001")
}

func TestRouter_CustomAPIVersion(t *testing.T) {
	engine := setupTestEngine(t, WithAPIVersion("v2"))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/system/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EndToEndInvoiceFlow(t *testing.T) {
	engine := setupTestEngine(t)

	productID := postJSON(t, engine, "/api/v1/catalog/products",
		`{"name":"POLVO SUELTO MELU","sku":"MEL-120","unit":"und","price_sale":14000}`)
	customerID := postJSON(t, engine, "/api/v1/partner/customers",
		`{"company_name":"VelvetGlow","nit":"894577890-4"}`)

	body := `{"customer_id":"` + customerID + `","supplier":"trendy","items":[{"product_id":"` + productID + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"invoice_number":"000001"`)
	assert.Contains(t, w.Body.String(), `"total":"33320"`)
	assert.Contains(t, w.Body.String(), `"supplier":"trendy"`)
}
