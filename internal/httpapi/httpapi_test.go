package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salestracker/backend/internal/cache"
	"salestracker/backend/internal/domain"
	"salestracker/backend/internal/notify"
	"salestracker/backend/internal/service"
	"salestracker/backend/internal/store/local"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	repo, err := local.New(context.Background(), local.NewMemorySlots())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	svc := service.New(repo, cache.NoopDashboardCache{}, notify.NewFeed(50), 5*time.Second)
	return New(svc, "http://127.0.0.1:3000").Handler()
}

func doJSON(t *testing.T, handler http.Handler, method string, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func validSaleBody() domain.SaleInput {
	return domain.SaleInput{
		CustomerName: "John Doe",
		PhoneNumber:  "9876543210",
		Category:     "Electronics",
		CostPrice:    "1000",
		SellingPrice: "1200",
		Date:         "2026-03-10",
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestCreateAndListSales(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/sales", validSaleBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d (%s)", rec.Code, rec.Body.String())
	}

	var created domain.SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Sale.Profit != 200 {
		t.Fatalf("profit: got %v", created.Sale.Profit)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/sales", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d", rec.Code)
	}
	var list domain.SaleListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 1 || list.TotalAmount != 1200 {
		t.Fatalf("list: %+v", list)
	}
}

func TestCreateSaleValidationFailure(t *testing.T) {
	handler := newTestHandler(t)

	body := validSaleBody()
	body.PhoneNumber = "12"
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/sales", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}

	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Fields["phone_number"] == "" {
		t.Fatalf("expected phone_number field message, got %+v", payload)
	}
}

func TestDeleteSaleNotFound(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodDelete, "/api/v1/sales/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestUpdateAndDeleteSale(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/sales", validSaleBody())
	var created domain.SaleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	edited := validSaleBody()
	edited.SellingPrice = "1500"
	rec = doJSON(t, handler, http.MethodPut, "/api/v1/sales/"+created.Sale.ID, edited)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodDelete, "/api/v1/sales/"+created.Sale.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status: got %d", rec.Code)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/customers", nil)
	var customers domain.CustomerListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &customers); err != nil {
		t.Fatalf("decode customers: %v", err)
	}
	if customers.Count != 0 {
		t.Fatalf("customer should be pruned, got %d", customers.Count)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPut, "/api/v1/settings", domain.SettingsUpdateRequest{AppName: "Patel Stores"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/settings", nil)
	var payload struct {
		Settings domain.Settings `json:"settings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Settings.AppName != "Patel Stores" || !payload.Settings.IsSetup {
		t.Fatalf("settings: %+v", payload.Settings)
	}
}

func TestDashboardAndAnalytics(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/sales", validSaleBody())

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/reports/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status: got %d", rec.Code)
	}
	var dashboard domain.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &dashboard); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dashboard.Stats.Transactions != 1 {
		t.Fatalf("dashboard: %+v", dashboard.Stats)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/reports/analytics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics status: got %d", rec.Code)
	}
}

func TestExportSalesReturnsWorkbook(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/sales", validSaleBody())

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/export/sales", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("content type: %q", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "attachment") {
		t.Fatalf("disposition: %q", rec.Header().Get("Content-Disposition"))
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty workbook")
	}
}

func TestImportSalesBadFileRejected(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/sales", strings.NewReader("not a workbook"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodDelete, "/api/v1/reports/dashboard", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sales", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status: got %d", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "http://127.0.0.1:3000" {
		t.Fatalf("origin header: %q", origin)
	}
}

func TestNotificationsFeed(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/sales", validSaleBody())

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/notifications", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var payload struct {
		Notifications []domain.Notification `json:"notifications"`
		Count         int                   `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Count == 0 {
		t.Fatalf("expected notifications after a sale")
	}
	if payload.Notifications[0].DismissMS == 0 {
		t.Fatalf("missing dismiss duration: %+v", payload.Notifications[0])
	}
}
