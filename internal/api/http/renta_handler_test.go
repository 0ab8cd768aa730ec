package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rvpark-backend/internal/domain"
	"rvpark-backend/internal/service"
	"rvpark-backend/internal/utils"
	"rvpark-backend/internal/validate"
)

type mockRentaService struct {
	mock.Mock
}

func (m *mockRentaService) Create(ctx context.Context, renta *domain.Renta) error {
	args := m.Called(ctx, renta)
	return args.Error(0)
}
func (m *mockRentaService) GetByID(ctx context.Context, id int32) (*domain.Renta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renta), args.Error(1)
}
func (m *mockRentaService) List(ctx context.Context) ([]domain.Renta, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Renta), args.Error(1)
}
func (m *mockRentaService) ListActivas(ctx context.Context, rvParkID int32) ([]domain.RentaActiva, error) {
	args := m.Called(ctx, rvParkID)
	return args.Get(0).([]domain.RentaActiva), args.Error(1)
}
func (m *mockRentaService) Update(ctx context.Context, renta *domain.Renta) error {
	args := m.Called(ctx, renta)
	return args.Error(0)
}
func (m *mockRentaService) Cancelar(ctx context.Context, id int32, motivo string) (*domain.Renta, error) {
	args := m.Called(ctx, id, motivo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renta), args.Error(1)
}
func (m *mockRentaService) Finalizar(ctx context.Context, id int32) (*domain.Renta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renta), args.Error(1)
}
func (m *mockRentaService) Calcular(ctx context.Context, spotID int32, fechaInicio, fechaFin string) (*utils.CalculoPago, error) {
	args := m.Called(ctx, spotID, fechaInicio, fechaFin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.CalculoPago), args.Error(1)
}
func (m *mockRentaService) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func muxSetVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func TestRentaHandler_Cancelar(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockRentaService)
		handler := NewRentaHandler(svc)

		cancelled := &domain.Renta{ID: 3, EstatusPago: domain.EstatusPagoCancelado, MotivoCancelacion: "se fue del parque"}
		svc.On("Cancelar", mock.Anything, int32(3), "se fue del parque").Return(cancelled, nil)

		body, _ := json.Marshal(map[string]string{"motivo_cancelacion": "se fue del parque"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentas/3/cancelar", bytes.NewReader(body))
		req = muxSetVars(req, map[string]string{"id": "3"})
		rec := httptest.NewRecorder()

		handler.Cancelar(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("short motivo returns 400 with field errors", func(t *testing.T) {
		svc := new(mockRentaService)
		handler := NewRentaHandler(svc)

		svc.On("Cancelar", mock.Anything, int32(3), "corto").Return(nil, &service.ValidationError{
			Fields: validate.Errors{"motivo_cancelacion": "el motivo debe tener al menos 10 caracteres"},
		})

		body, _ := json.Marshal(map[string]string{"motivo_cancelacion": "corto"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentas/3/cancelar", bytes.NewReader(body))
		req = muxSetVars(req, map[string]string{"id": "3"})
		rec := httptest.NewRecorder()

		handler.Cancelar(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Errors, "motivo_cancelacion")
	})

	t.Run("already cancelled returns 409", func(t *testing.T) {
		svc := new(mockRentaService)
		handler := NewRentaHandler(svc)

		svc.On("Cancelar", mock.Anything, int32(3), "motivo suficientemente largo").Return(nil, service.ErrRentaCancelada)

		body, _ := json.Marshal(map[string]string{"motivo_cancelacion": "motivo suficientemente largo"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentas/3/cancelar", bytes.NewReader(body))
		req = muxSetVars(req, map[string]string{"id": "3"})
		rec := httptest.NewRecorder()

		handler.Cancelar(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRentaHandler_Calcular(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockRentaService)
		handler := NewRentaHandler(svc)

		svc.On("Calcular", mock.Anything, int32(7), "2025-01-20", "").Return(&utils.CalculoPago{
			DiasRestantes: 12,
			MontoCents:    1440,
		}, nil)

		body, _ := json.Marshal(map[string]any{"id_spot": 7, "fecha_inicio": "2025-01-20"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentas/calcular", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Calcular(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing spot returns 400", func(t *testing.T) {
		svc := new(mockRentaService)
		handler := NewRentaHandler(svc)

		body, _ := json.Marshal(map[string]any{"fecha_inicio": "2025-01-20"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentas/calcular", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Calcular(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Calcular", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRentaHandler_List(t *testing.T) {
	svc := new(mockRentaService)
	handler := NewRentaHandler(svc)

	svc.On("List", mock.Anything).Return([]domain.Renta{{ID: 1}, {ID: 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rentas", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}
