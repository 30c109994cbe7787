package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holding-tracker/internal/application/analytics"
	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/holding-tracker/internal/interfaces/http"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()
	rollup := analytics.NewRollupUseCase(store)
	return httpRouter.NewApp("holding-tracker-test", httpRouter.RouterDeps{
		CompanyUC:    usecase.NewCompanyUseCase(store, log),
		SubsidiaryUC: usecase.NewSubsidiaryUseCase(store, log),
		ClientUC:     usecase.NewClientUseCase(store, log),
		ContractUC:   usecase.NewContractUseCase(store, rollup, log),
		LedgerUC:     usecase.NewLedgerUseCase(store, log),
		BootstrapUC:  usecase.NewBootstrapUseCase(store, usecase.DefaultBootstrapNames(), log),
		AdminUC: usecase.NewAdminUseCase(store, usecase.WipeSettings{
			Secret: "secreto-de-pruebas",
			Issuer: "holding-tracker-test",
			TTL:    time.Minute,
		}, log),
		RollupUC:    rollup,
		DashboardUC: analytics.NewDashboardUseCase(store, rollup, nil),
		ExportUC:    analytics.NewExportUseCase(store, rollup),
		Log:         log,
	})
}

// do envía la petición y decodifica la respuesta JSON en out (si no es nil).
func do(t *testing.T, app *fiber.App, method, path, body string, out any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(httpRouter.HeaderRequestID))
}

func TestRequestID_SeRespeta(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(httpRouter.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(httpRouter.HeaderRequestID))
}

func TestRutaInexistente(t *testing.T) {
	app := newTestApp(t)
	var body dto.ErrorResponse
	resp := do(t, app, http.MethodGet, "/api/nada", "", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, httpRouter.CodeNotFound, body.Code)
}

func TestCompanies_CrearYDuplicado(t *testing.T) {
	app := newTestApp(t)

	var created dto.CompanyResponse
	resp := do(t, app, http.MethodPost, "/api/companies", `{"name":"Black Bear Holdings","is_parent":true}`, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(1), created.ID)

	var dup dto.ErrorResponse
	resp = do(t, app, http.MethodPost, "/api/companies", `{"name":"Black Bear Holdings"}`, &dup)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, httpRouter.CodeDuplicate, dup.Code)

	var list dto.ListResponse[dto.CompanyResponse]
	resp = do(t, app, http.MethodGet, "/api/companies", "", &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list.Items, 1)
}

func TestErrores_Mapeo(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"cuerpo inválido", http.MethodPost, "/api/companies", `{"name":`, http.StatusBadRequest, httpRouter.CodeInvalidBody},
		{"nombre vacío", http.MethodPost, "/api/companies", `{"name":" "}`, http.StatusBadRequest, httpRouter.CodeValidation},
		{"id inválido", http.MethodGet, "/api/companies/abc", "", http.StatusBadRequest, httpRouter.CodeValidation},
		{"empresa inexistente", http.MethodGet, "/api/companies/9", "", http.StatusNotFound, httpRouter.CodeNotFound},
		{"filial sin empresa", http.MethodPost, "/api/subsidiaries", `{"name":"X","company_id":9}`, http.StatusNotFound, httpRouter.CodeNotFound},
		{"filtro de empresa inválido", http.MethodGet, "/api/subsidiaries?company_id=x", "", http.StatusBadRequest, httpRouter.CodeValidation},
		{"contrato inválido", http.MethodPost, "/api/contracts", `{"title":"X","subsidiary_id":1,"client_id":1}`, http.StatusBadRequest, httpRouter.CodeValidation},
		{"ingreso sin contrato", http.MethodPost, "/api/contracts/5/revenues", `{"amount":"10"}`, http.StatusNotFound, httpRouter.CodeNotFound},
		{"tabla desconocida", http.MethodGet, "/api/admin/tables/revenues", "", http.StatusBadRequest, httpRouter.CodeValidation},
		{"borrado sin token", http.MethodPost, "/api/admin/wipe/confirm", `{}`, http.StatusBadRequest, httpRouter.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body dto.ErrorResponse
			resp := do(t, app, tt.method, tt.path, tt.body, &body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestFlujoCompleto(t *testing.T) {
	app := newTestApp(t)

	var org dto.BootstrapResponse
	resp := do(t, app, http.MethodPost, "/api/bootstrap", "", &org)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, org.Subsidiaries, 2)
	assert.True(t, org.ParentCreated)

	var client dto.ClientResponse
	resp = do(t, app, http.MethodPost, "/api/clients", `{"name":"Acme"}`, &client)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var contract dto.ContractResponse
	body := `{"title":"Auditoría","subsidiary_id":` + itoa(org.Subsidiaries[0].ID) +
		`,"client_id":` + itoa(client.ID) + `,"contract_value":1000,"percent_to_subsidiary":50}`
	resp = do(t, app, http.MethodPost, "/api/contracts", body, &contract)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "prospect", contract.Status)

	base := "/api/contracts/" + itoa(contract.ID)
	resp = do(t, app, http.MethodPost, base+"/revenues", `{"amount":800,"date":"2024-01-10"}`, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, app, http.MethodPost, base+"/expenses", `{"amount":"200","date":"2024-01-11"}`, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, app, http.MethodPost, base+"/equity-awards", `{"recipient":"Socio","percent":5}`, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var updated dto.ContractResponse
	resp = do(t, app, http.MethodPatch, base+"/status", `{"status":"active"}`, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "active", updated.Status)

	var agg dto.ContractAggregate
	resp = do(t, app, http.MethodGet, base+"/aggregate", "", &agg)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "600.00", agg.Profit.StringFixed(2))
	assert.Equal(t, "300.00", agg.SubsidiaryShare.StringFixed(2))

	var detail dto.ContractDetailResponse
	resp = do(t, app, http.MethodGet, base, "", &detail)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, detail.Revenues, 1)
	assert.Len(t, detail.EquityAwards, 1)

	var subAgg dto.SubsidiaryAggregate
	resp = do(t, app, http.MethodGet, "/api/subsidiaries/"+itoa(org.Subsidiaries[0].ID)+"/rollup", "", &subAgg)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "600.00", subAgg.Profit.StringFixed(2))

	var companyAgg dto.CompanyAggregate
	resp = do(t, app, http.MethodGet, "/api/companies/"+itoa(org.Parent.ID)+"/rollup", "", &companyAgg)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, companyAgg.SubsidiaryCount)
	assert.Equal(t, "800.00", companyAgg.Revenue.StringFixed(2))

	var dash dto.DashboardResponse
	resp = do(t, app, http.MethodGet, "/api/dashboard", "", &dash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, dash.Parent)
	assert.Len(t, dash.RevenueSeries, 1)

	var series dto.ListResponse[dto.RevenuePoint]
	resp = do(t, app, http.MethodGet, "/api/dashboard/revenue-series", "", &series)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, series.Items, 1)
	assert.Equal(t, "2024-01-10", series.Items[0].Date)

	var list dto.ListResponse[dto.ContractListItem]
	resp = do(t, app, http.MethodGet, "/api/contracts", "", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Acme", list.Items[0].ClientName)
}

func TestExportContracts_CSV(t *testing.T) {
	app := newTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/export/contracts.csv", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="contracts_export.csv"`, resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(analytics.ContractsCSVHeader, ",")+"\n", string(data))
}

func TestAdmin_WipeDosPasos(t *testing.T) {
	app := newTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/bootstrap", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tok dto.WipeTokenResponse
	resp = do(t, app, http.MethodPost, "/api/admin/wipe/enable", "", &tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, tok.Token)

	var result dto.WipeResultResponse
	resp = do(t, app, http.MethodPost, "/api/admin/wipe/confirm", `{"token":"`+tok.Token+`"}`, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.Wiped)

	var table dto.RawTableResponse
	resp = do(t, app, http.MethodGet, "/api/admin/tables/companies", "", &table)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "companies", table.Table)
	assert.Empty(t, table.Rows)

	var reused dto.ErrorResponse
	resp = do(t, app, http.MethodPost, "/api/admin/wipe/confirm", `{"token":"`+tok.Token+`"}`, &reused)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, httpRouter.CodeValidation, reused.Code)
}

func TestDashboardReport_SinGenerador(t *testing.T) {
	app := newTestApp(t)
	var body dto.ErrorResponse
	resp := do(t, app, http.MethodGet, "/api/dashboard/report.pdf", "", &body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, httpRouter.CodeInternal, body.Code)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
