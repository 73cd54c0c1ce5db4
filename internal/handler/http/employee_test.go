package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmployeeService returns canned results so the handler layer can be
// tested without a database.
type stubEmployeeService struct {
	employees map[int64]employee.Employee
}

func (s *stubEmployeeService) CreateEmployee(_ context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return employee.Employee{ID: 1, Name: req.Name, Email: req.Email, Phone: req.Phone, Department: req.Department}, nil
}

func (s *stubEmployeeService) ListEmployees(_ context.Context) ([]employee.Employee, error) {
	result := []employee.Employee{}
	for _, emp := range s.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (s *stubEmployeeService) GetEmployee(_ context.Context, id int64) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeService) UpdateEmployee(_ context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	req.ApplyTo(&emp)
	return emp, nil
}

func (s *stubEmployeeService) DeleteEmployee(_ context.Context, id int64) error {
	if _, ok := s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.employees, id)
	return nil
}

func newEmployeeTestRouter(svc employee.EmployeeService) *chi.Mux {
	h := NewEmployeeHandler(svc)
	r := chi.NewRouter()
	r.Post("/employee", h.CreateEmployee)
	r.Get("/employees", h.ListEmployees)
	r.Route("/employee/{id}", func(r chi.Router) {
		r.Get("/", h.GetEmployee)
		r.Patch("/", h.UpdateEmployee)
		r.Delete("/", h.DeleteEmployee)
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateEmployeeHandler(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{})

	body, _ := json.Marshal(map[string]string{
		"name":  "Alice",
		"email": "alice@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/employee", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Employee created successfully", env.Message)

	var created employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Alice", created.Name)
}

func TestCreateEmployeeHandlerValidation(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{})

	body, _ := json.Marshal(map[string]string{"email": "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/employee", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestCreateEmployeeHandlerBadBody(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/employee", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestGetEmployeeHandler(t *testing.T) {
	svc := &stubEmployeeService{employees: map[int64]employee.Employee{
		7: {ID: 7, Name: "Bob", Email: "bob@example.com"},
	}}
	router := newEmployeeTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employee/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var got employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Bob", got.Name)
}

func TestGetEmployeeHandlerNotFound(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{employees: map[int64]employee.Employee{}})

	req := httptest.NewRequest(http.MethodGet, "/employee/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Employee not found", env.Message)
}

func TestGetEmployeeHandlerBadID(t *testing.T) {
	router := newEmployeeTestRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/employee/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid employee id", env.Message)
}

func TestDeleteEmployeeHandler(t *testing.T) {
	svc := &stubEmployeeService{employees: map[int64]employee.Employee{
		7: {ID: 7, Name: "Bob"},
	}}
	router := newEmployeeTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/employee/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Employee deleted successfully", env.Message)
	assert.Empty(t, svc.employees)
}
