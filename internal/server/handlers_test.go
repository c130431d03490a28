package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/dateparse"
	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/UnknownOlympus/mnemosyne/internal/server"
	mocks "github.com/UnknownOlympus/mnemosyne/mock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	} `json:"error"`
}

func newAPI(t *testing.T) (*echo.Echo, *mocks.EmployeeService, *metrics.Metrics) {
	t.Helper()

	svc := mocks.NewEmployeeService(t)
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return server.NewAPI(discardLogger(), svc, appMetrics), svc, appMetrics
}

func PerformRequest(e *echo.Echo, method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func ada(id int64) models.Employee {
	return models.Employee{
		ID:               id,
		Name:             models.StringPtr("Ada"),
		Department:       models.StringPtr("R&D"),
		DateOfEmployment: models.NewDate(2020, 1, 15),
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	e, svc, appMetrics := newAPI(t)
	svc.On("List", mock.Anything).Return([]models.Employee{ada(1)}, nil).Once()

	rec := PerformRequest(e, http.MethodGet, "/employees", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Ada","surname":null,"email":null,"phone":null,"address":null,
		"dateOfBirth":null,"dateOfEmployment":"2020-01-15","dateOfDismissal":null,
		"position":null,"department":"R&D","manager":null}]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.InDelta(t, 1,
		testutil.ToFloat64(appMetrics.HTTPRequests.WithLabelValues(http.MethodGet, "/employees", "200")), 0)
}

func TestList_StoreFailure(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("List", mock.Anything).Return(nil, assert.AnError).Once()

	rec := PerformRequest(e, http.MethodGet, "/employees", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal_error", body.Error.Code)
	assert.NotContains(t, body.Error.Message, assert.AnError.Error())
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.Error.RequestID)
}

func TestGet(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("Get", mock.Anything, int64(1)).Return(ada(1), nil).Once()

	rec := PerformRequest(e, http.MethodGet, "/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var actual models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
	assert.Equal(t, ada(1), actual)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("Get", mock.Anything, int64(42)).Return(models.Employee{}, repository.ErrEmployeeNotFound).Once()

	rec := PerformRequest(e, http.MethodGet, "/42", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

func TestGet_NonNumericID(t *testing.T) {
	t.Parallel()

	e, _, _ := newAPI(t)

	rec := PerformRequest(e, http.MethodGet, "/abc", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)

	expectedReq := models.CreateEmployeeRequest{
		Name:             models.StringPtr("Ada"),
		Department:       models.StringPtr("R&D"),
		DateOfEmployment: models.StringPtr("15 January 2020"),
	}
	svc.On("Create", mock.Anything, expectedReq).Return(ada(5), nil).Once()

	rec := PerformRequest(e, http.MethodPost, "/employee/add",
		`{"id":99,"name":"Ada","department":"R&D","dateOfEmployment":"15 January 2020"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var actual models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
	assert.Equal(t, int64(5), actual.ID)
}

func TestCreate_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "null body", body: "null"},
		{name: "malformed json", body: `{"name":`},
		{name: "wrong shape", body: `[]`},
		{name: "field too long", body: fmt.Sprintf(`{"name":%q}`, strings.Repeat("a", 256))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _, _ := newAPI(t)

			rec := PerformRequest(e, http.MethodPost, "/employee/add", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "bad_request", decodeError(t, rec).Error.Code)
		})
	}
}

func TestCreate_UnparseableDate(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	dateErr := fmt.Errorf("Employee.Create: invalid dateOfBirth: %w \"not-a-date\"; supported formats: MM/dd/yyyy",
		dateparse.ErrUnrecognizedDate)
	svc.On("Create", mock.Anything, mock.Anything).Return(models.Employee{}, dateErr).Once()

	rec := PerformRequest(e, http.MethodPost, "/employee/add", `{"dateOfBirth":"not-a-date"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "bad_request", body.Error.Code)
	assert.Contains(t, body.Error.Message, "supported formats")
}

func TestCreateBulk(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)

	expected := []models.Employee{
		{Name: models.StringPtr("Ada")},
		{Name: models.StringPtr("Grace"), DateOfBirth: models.NewDate(1990, 5, 20)},
	}
	stored := []models.Employee{ada(1), ada(2)}
	svc.On("CreateBulk", mock.Anything, expected).Return(stored, nil).Once()

	rec := PerformRequest(e, http.MethodPost, "/employee/add-bulk",
		`[{"name":"Ada"},{"name":"Grace","dateOfBirth":"1990-05-20"}]`)

	require.Equal(t, http.StatusOK, rec.Code)
	var actual []models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
	assert.Equal(t, stored, actual)
}

func TestCreateBulk_EmptyList(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("CreateBulk", mock.Anything, []models.Employee{}).Return([]models.Employee{}, nil).Once()

	rec := PerformRequest(e, http.MethodPost, "/employee/add-bulk", `[]`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateBulk_Rejected(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("CreateBulk", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	rec := PerformRequest(e, http.MethodPost, "/employee/add-bulk", `[{"name":"Ada"}]`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec).Error.Code)
}

func TestCreateBulk_InvalidItem(t *testing.T) {
	t.Parallel()

	e, _, _ := newAPI(t)

	body := fmt.Sprintf(`[{"name":"Ada"},{"email":%q}]`, strings.Repeat("x", 300))
	rec := PerformRequest(e, http.MethodPost, "/employee/add-bulk", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "Email")
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)

	expected := models.Employee{Name: models.StringPtr("Ada"), DateOfDismissal: models.NewDate(2024, 3, 1)}
	updated := expected
	updated.ID = 3
	svc.On("Update", mock.Anything, int64(3), expected).Return(updated, nil).Once()

	rec := PerformRequest(e, http.MethodPut, "/update/3", `{"name":"Ada","dateOfDismissal":"2024-03-01"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var actual models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
	assert.Equal(t, updated, actual)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("Update", mock.Anything, int64(3), mock.Anything).
		Return(models.Employee{}, repository.ErrEmployeeNotFound).Once()

	rec := PerformRequest(e, http.MethodPut, "/update/3", `{"name":"Ada"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_NullBody(t *testing.T) {
	t.Parallel()

	e, _, _ := newAPI(t)

	rec := PerformRequest(e, http.MethodPut, "/update/3", `null`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("Delete", mock.Anything, int64(8)).Return(ada(8), nil).Once()

	rec := PerformRequest(e, http.MethodDelete, "/employee/delete/8", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var actual models.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
	assert.Equal(t, ada(8), actual)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("Delete", mock.Anything, int64(8)).Return(models.Employee{}, repository.ErrEmployeeNotFound).Once()

	rec := PerformRequest(e, http.MethodDelete, "/employee/delete/8", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFilteredLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		path   string
		value  string
	}{
		{method: "ByDepartment", path: "/department/R&D", value: "R&D"},
		{method: "ByDepartment", path: "/department/R%26D", value: "R&D"},
		{method: "ByPosition", path: "/position/100%25%20remote", value: "100% remote"},
		{method: "ByPosition", path: "/position/engineer", value: "engineer"},
		{method: "ByManager", path: "/manager/Charles%20Babbage", value: "Charles Babbage"},
		{method: "ByDateOfEmployment", path: "/dateOfEmployment/01%2F15%2F2020", value: "01/15/2020"},
	}

	for _, tt := range tests {
		t.Run(tt.path+" found", func(t *testing.T) {
			t.Parallel()

			e, svc, _ := newAPI(t)
			svc.On(tt.method, mock.Anything, tt.value).Return([]models.Employee{ada(1)}, nil).Once()

			rec := PerformRequest(e, http.MethodGet, tt.path, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var actual []models.Employee
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actual))
			assert.Equal(t, []models.Employee{ada(1)}, actual)
		})

		t.Run(tt.path+" empty", func(t *testing.T) {
			t.Parallel()

			e, svc, _ := newAPI(t)
			svc.On(tt.method, mock.Anything, tt.value).Return(nil, repository.ErrEmployeeNotFound).Once()

			rec := PerformRequest(e, http.MethodGet, tt.path, "")

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
		})
	}
}

func TestByDateOfEmployment_Unparseable(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("ByDateOfEmployment", mock.Anything, "someday").
		Return(nil, fmt.Errorf("invalid dateOfEmployment: %w", dateparse.ErrUnrecognizedDate)).Once()

	rec := PerformRequest(e, http.MethodGet, "/dateOfEmployment/someday", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestByName(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("ByName", mock.Anything, "Ada").Return(ada(1), nil).Once()

	rec := PerformRequest(e, http.MethodGet, "/name/Ada", "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestByName_DecodedOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		name string
	}{
		{path: "/name/50%2541", name: "50%41"},
		{path: "/name/Ada%20Lovelace", name: "Ada Lovelace"},
		{path: "/name/Ada%2FLovelace", name: "Ada/Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			e, svc, _ := newAPI(t)
			svc.On("ByName", mock.Anything, tt.name).Return(ada(1), nil).Once()

			rec := PerformRequest(e, http.MethodGet, tt.path, "")

			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestByName_NotFound(t *testing.T) {
	t.Parallel()

	e, svc, _ := newAPI(t)
	svc.On("ByName", mock.Anything, "Nobody").Return(models.Employee{}, repository.ErrEmployeeNotFound).Once()

	rec := PerformRequest(e, http.MethodGet, "/name/Nobody", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	e, _, _ := newAPI(t)

	rec := PerformRequest(e, http.MethodGet, "/no/such/route", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}
