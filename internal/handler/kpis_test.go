package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"osadash/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKpiService struct {
	filtro  dto.KpiFilter
	llamado bool
}

func (f *fakeKpiService) Calcular(_ context.Context, filtro dto.KpiFilter) (*dto.KpiReport, error) {
	f.llamado = true
	f.filtro = filtro
	return &dto.KpiReport{Series: []dto.PuntoSerie{}, WorstSku: []dto.WorstSku{}}, nil
}

func setupKpiRouter(svc *fakeKpiService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/kpis", NewKpiHandler(svc).Obtener)
	return r
}

func TestObtenerKpis_FechasMalformadas(t *testing.T) {
	casos := []struct {
		nombre string
		query  string
	}{
		{"date_from no ISO", "?date_from=10/03/2024"},
		{"date_from basura", "?date_from=ayer"},
		{"date_to no ISO", "?date_to=2024-3-1"},
		{"date_to truncada", "?date_from=2024-03-01&date_to=2024-03"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			svc := &fakeKpiService{}
			r := setupKpiRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/kpis"+c.query, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, svc.llamado, "una fecha invalida no debe llegar al servicio")
		})
	}
}

func TestObtenerKpis_FiltroParseado(t *testing.T) {
	svc := &fakeKpiService{}
	r := setupKpiRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/kpis?store=PV+Norte&date_from=2024-03-01&date_to=2024-03-31", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.llamado)
	assert.Equal(t, "PV Norte", svc.filtro.Store)
	require.NotNil(t, svc.filtro.DateFrom)
	require.NotNil(t, svc.filtro.DateTo)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *svc.filtro.DateFrom)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), *svc.filtro.DateTo)
}

func TestObtenerKpis_SinFiltros(t *testing.T) {
	svc := &fakeKpiService{}
	r := setupKpiRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/kpis", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.filtro.Store)
	assert.Nil(t, svc.filtro.DateFrom)
	assert.Nil(t, svc.filtro.DateTo)
}
