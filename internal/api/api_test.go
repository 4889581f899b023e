package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andresuchdata/printfloor/internal/api/middleware"
	"github.com/andresuchdata/printfloor/internal/development"
	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/andresuchdata/printfloor/internal/repository/memory"
	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := memory.NewDB()
	clock := func() time.Time { return time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC) }
	services := &Services{
		Orders:      service.NewOrderService(db),
		Plans:       service.NewPlanService(db),
		Downtime:    service.NewDowntimeService(db, service.WithClock(clock)),
		Ledger:      ledger.New(db, nil, ledger.WithClock(clock)),
		Development: development.NewWorkflow(db, nil),
		Reports:     report.NewEngine(db),
	}
	return &testServer{t: t, router: NewRouter(services, []string{"*"}, time.Second)}
}

func (s *testServer) do(method, path, role string, body any) (int, map[string]any) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(middleware.HeaderRole, role)
		req.Header.Set(middleware.HeaderName, role+"-user")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var response map[string]any
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w.Code, response
}

func data(t *testing.T, response map[string]any) map[string]any {
	t.Helper()
	assert.True(t, response["success"].(bool))
	return response["data"].(map[string]any)
}

func errorCode(response map[string]any) string {
	return response["error"].(map[string]any)["code"].(string)
}

func TestProductionFlow(t *testing.T) {
	s := newTestServer(t)

	status, resp := s.do(http.MethodPost, "/api/v1/orders", "worker", map[string]any{
		"customer": "HIKH", "style": "GE-1", "color": "Navy", "qty": 500,
	})
	require.Equal(t, http.StatusCreated, status)
	orderID := data(t, resp)["id"].(string)

	status, resp = s.do(http.MethodPost, "/api/v1/plans", "worker", map[string]any{
		"order_id": orderID, "table_no": "T1", "cut_in_date": "2026-01-05",
	})
	require.Equal(t, http.StatusCreated, status)
	plan := data(t, resp)
	planID := plan["id"].(string)
	assert.Equal(t, "Pending", plan["status"])
	assert.Equal(t, float64(500), plan["po_qty"])

	for slot, v := range []string{"40", "60"} {
		status, _ = s.do(http.MethodPut, fmt.Sprintf("/api/v1/ledger/slots/%d/counters/printing", slot), "worker", map[string]any{"value": v})
		require.Equal(t, http.StatusOK, status)
	}
	status, resp = s.do(http.MethodPut, "/api/v1/ledger/slots/0/counters/rejects", "worker", map[string]any{"value": "5"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(100), data(t, resp)["totals"].(map[string]any)["printing"])

	status, resp = s.do(http.MethodPut, "/api/v1/ledger/slots/0/counters/rejects", "worker", map[string]any{"value": "-3"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(resp))

	status, resp = s.do(http.MethodPost, "/api/v1/ledger/submit", "worker", map[string]any{"plan_id": planID, "daily_target": 200})
	require.Equal(t, http.StatusCreated, status)
	record := data(t, resp)
	assert.Equal(t, "2026-01-10", record["date"])
	assert.Equal(t, float64(100), record["total_printing"])
	assert.Equal(t, float64(5), record["total_rejects"])
	assert.Equal(t, float64(50), record["efficiency"])

	status, resp = s.do(http.MethodGet, "/api/v1/ledger", "worker", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), data(t, resp)["totals"].(map[string]any)["printing"])

	status, resp = s.do(http.MethodPost, "/api/v1/downtime", "worker", map[string]any{"category": "Ink Delay", "hours": 1.5, "reason": "ink ran out"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Pending Ack", data(t, resp)["acknowledged_by"])

	status, resp = s.do(http.MethodGet, "/api/v1/reports/summary", "admin", nil)
	require.Equal(t, http.StatusOK, status)
	rows := resp["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, float64(100), row["total_print"])
	assert.Equal(t, float64(5), row["reject_pct"])

	status, resp = s.do(http.MethodGet, "/api/v1/reports/floor_sheet?date=2026-01-10&plan_id="+planID, "admin", nil)
	require.Equal(t, http.StatusOK, status)
	sheet := data(t, resp)
	assert.True(t, sheet["found"].(bool))
	assert.Equal(t, float64(1.5), sheet["total_loss_hours"])

	status, resp = s.do(http.MethodGet, "/api/v1/reports/floor_sheet?date=2026-01-11&plan_id="+planID, "admin", nil)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, data(t, resp)["found"].(bool))

	status, resp = s.do(http.MethodGet, "/api/v1/reports/plans?date=2026-01-10", "admin", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"].([]any), 1)
}

func TestSubmitValidationFields(t *testing.T) {
	s := newTestServer(t)

	status, resp := s.do(http.MethodPost, "/api/v1/ledger/submit", "worker", map[string]any{"plan_id": "", "daily_target": 0})

	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp["success"].(bool))
	errBody := resp["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
	fields := make([]string, 0)
	for _, f := range errBody["fields"].([]any) {
		fields = append(fields, f.(map[string]any)["field"].(string))
	}
	assert.Equal(t, []string{"customer", "style", "dailyTarget"}, fields)
}

func TestDevelopmentApproval(t *testing.T) {
	s := newTestServer(t)

	status, resp := s.do(http.MethodPost, "/api/v1/development", "development", map[string]any{
		"customer": "HIKH", "style": "GE-1", "factory": "Unit 2", "color": "Navy",
		"request_date": "2026-01-02", "order_date": "2026-01-20", "image": "data:image/png;base64,AAAA",
	})
	require.Equal(t, http.StatusCreated, status)
	itemID := data(t, resp)["id"].(string)

	status, resp = s.do(http.MethodPost, "/api/v1/development/"+itemID+"/approve", "worker", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errorCode(resp))

	_, resp = s.do(http.MethodGet, "/api/v1/orders", "worker", nil)
	assert.Empty(t, resp["data"].([]any))

	status, resp = s.do(http.MethodPost, "/api/v1/development/"+itemID+"/approve", "admin", nil)
	require.Equal(t, http.StatusOK, status)
	body := data(t, resp)
	assert.Equal(t, "Approved", body["item"].(map[string]any)["status"])
	order := body["order"].(map[string]any)
	assert.Equal(t, "HIKH", order["customer"])
	assert.Equal(t, float64(0), order["qty"])

	status, resp = s.do(http.MethodPost, "/api/v1/development/"+itemID+"/approve", "admin", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "INVALID_STATE", errorCode(resp))

	_, resp = s.do(http.MethodGet, "/api/v1/orders", "worker", nil)
	assert.Len(t, resp["data"].([]any), 1)

	status, _ = s.do(http.MethodPost, "/api/v1/development/missing/reject", "admin", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, resp = s.do(http.MethodGet, "/api/v1/development/artwork?customer=HIKH&style=GE-1", "worker", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, itemID, data(t, resp)["id"])
}

func TestSlotLabelEditing(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(http.MethodPut, "/api/v1/ledger/edit_mode", "worker", map[string]any{"on": true})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(http.MethodPut, "/api/v1/ledger/slots/0/label", "admin", map[string]any{"label": "07:30 - 08:30"})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(http.MethodPut, "/api/v1/ledger/edit_mode", "admin", map[string]any{"on": true})
	require.Equal(t, http.StatusOK, status)

	status, resp := s.do(http.MethodPut, "/api/v1/ledger/slots/0/label", "admin", map[string]any{"label": "07:30 - 08:30"})
	require.Equal(t, http.StatusOK, status)
	slots := data(t, resp)["slots"].([]any)
	assert.Len(t, slots, 10)
	assert.Equal(t, "07:30 - 08:30", slots[0].(map[string]any)["time_slot"])

	status, _ = s.do(http.MethodPut, "/api/v1/ledger/slots/x/label", "admin", map[string]any{"label": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestReportCSVExport(t *testing.T) {
	s := newTestServer(t)
	status, _ := s.do(http.MethodPost, "/api/v1/orders", "worker", map[string]any{"customer": "HIKH", "style": "GE-1", "qty": 10})
	require.Equal(t, http.StatusCreated, status)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?format=csv", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "HIKH,,GE-1,,,10,0,0,0,0,0.0")
}

func TestUnknownRoleRejected(t *testing.T) {
	s := newTestServer(t)

	status, resp := s.do(http.MethodGet, "/api/v1/orders", "owner", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ROLE", errorCode(resp))
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	origins, all := normalizeAllowedOrigins([]string{"http://a.test, http://b.test", " "})
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, origins)
	assert.False(t, all)

	_, all = normalizeAllowedOrigins([]string{"*"})
	assert.True(t, all)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	status, resp := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
}
