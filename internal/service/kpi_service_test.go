package service

import (
	"context"
	"testing"
	"time"

	"osadash/internal/dto"
	"osadash/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fechaUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func medicion(pv, codigo string, fecha time.Time, osa int) model.Medicion {
	oos := 0
	tipo := "OSA"
	if osa == 0 {
		oos = 1
		tipo = "OOS"
	}
	return model.Medicion{
		IDConjunto: "CJ", Fecha: fecha, PV: pv, CodigoBarra: codigo,
		DescripcionSKU: "SKU", Estado: "X", TipoResultado: tipo,
		OsaFlag: osa, OosFlag: oos,
	}
}

func TestCalcular_SinCoincidencias(t *testing.T) {
	svc := NewKpiService(newStubMedicionRepo())

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{Store: "NOEXISTE"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.Total)
	assert.Equal(t, 0.0, report.OsaPct)
	assert.Equal(t, 0.0, report.OosPct)
	assert.NotNil(t, report.Series)
	assert.Empty(t, report.Series)
	assert.NotNil(t, report.WorstSku)
	assert.Empty(t, report.WorstSku)
}

func TestCalcular_PorcentajeSimple(t *testing.T) {
	repo := newStubMedicionRepo()
	f := fechaUTC(2024, 3, 10)
	for _, osa := range []int{1, 1, 0, 0} {
		m := medicion("S1", "100", f, osa)
		require.NoError(t, repo.Create(context.Background(), &m))
	}
	svc := NewKpiService(repo)

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.Total)
	assert.Equal(t, 50.0, report.OsaPct)
	assert.Equal(t, 50.0, report.OosPct)
}

func TestCalcular_FiltroPorStore(t *testing.T) {
	repo := newStubMedicionRepo()
	f := fechaUTC(2024, 3, 10)
	for _, m := range []model.Medicion{
		medicion("S1", "100", f, 1),
		medicion("S1", "200", f, 1),
		medicion("S1", "300", f, 0),
		medicion("S2", "400", f, 0), // otra tienda, fuera del filtro
	} {
		mm := m
		require.NoError(t, repo.Create(context.Background(), &mm))
	}
	svc := NewKpiService(repo)

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{Store: "S1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.Total)
	assert.Equal(t, 66.67, report.OsaPct)
	assert.Equal(t, 33.33, report.OosPct)
}

func TestCalcular_FiltroPorRangoDeFechas(t *testing.T) {
	repo := newStubMedicionRepo()
	for d := 1; d <= 5; d++ {
		m := medicion("S1", "100", fechaUTC(2024, 3, d), 1)
		require.NoError(t, repo.Create(context.Background(), &m))
	}
	svc := NewKpiService(repo)

	desde := fechaUTC(2024, 3, 2)
	hasta := fechaUTC(2024, 3, 4)
	report, err := svc.Calcular(context.Background(), dto.KpiFilter{DateFrom: &desde, DateTo: &hasta})
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.Total, "rango inclusivo en ambos extremos")
}

func TestCalcular_SerieDiariaOrdenada(t *testing.T) {
	repo := newStubMedicionRepo()
	dia1 := fechaUTC(2024, 3, 10)
	dia2 := fechaUTC(2024, 3, 11)
	for _, m := range []model.Medicion{
		// dia2 primero: el orden de insercion no debe importar
		medicion("S1", "100", dia2, 1),
		medicion("S1", "200", dia2, 1),
		medicion("S1", "100", dia1, 1),
		medicion("S1", "200", dia1, 0),
	} {
		mm := m
		require.NoError(t, repo.Create(context.Background(), &mm))
	}
	svc := NewKpiService(repo)

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{})
	require.NoError(t, err)
	require.Len(t, report.Series, 2)
	assert.Equal(t, "2024-03-10", report.Series[0].Date)
	assert.Equal(t, 50.0, report.Series[0].OsaPct)
	assert.Equal(t, "2024-03-11", report.Series[1].Date)
	assert.Equal(t, 100.0, report.Series[1].OsaPct)
}

func TestCalcular_PeoresSku(t *testing.T) {
	repo := newStubMedicionRepo()
	f := fechaUTC(2024, 3, 10)
	agregar := func(codigo string, flags ...int) {
		for _, osa := range flags {
			m := medicion("S1", codigo, f, osa)
			require.NoError(t, repo.Create(context.Background(), &m))
		}
	}
	agregar("300", 1, 1)    // 100%
	agregar("100", 0, 0)    // 0% — empate con 200, gana por codigo ascendente
	agregar("200", 0, 0)    // 0%
	agregar("400", 1, 0)    // 50%

	svc := NewKpiService(repo)
	report, err := svc.Calcular(context.Background(), dto.KpiFilter{})
	require.NoError(t, err)

	require.Len(t, report.WorstSku, 4)
	assert.Equal(t, "100", report.WorstSku[0].Barcode)
	assert.Equal(t, 0.0, report.WorstSku[0].OsaPct)
	assert.Equal(t, "200", report.WorstSku[1].Barcode)
	assert.Equal(t, "400", report.WorstSku[2].Barcode)
	assert.Equal(t, 50.0, report.WorstSku[2].OsaPct)
	assert.Equal(t, "300", report.WorstSku[3].Barcode)
}

func TestCalcular_PeoresSkuLimiteCinco(t *testing.T) {
	repo := newStubMedicionRepo()
	f := fechaUTC(2024, 3, 10)
	for _, codigo := range []string{"100", "200", "300", "400", "500", "600", "700"} {
		m := medicion("S1", codigo, f, 0)
		require.NoError(t, repo.Create(context.Background(), &m))
	}
	svc := NewKpiService(repo)

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{})
	require.NoError(t, err)
	assert.Len(t, report.WorstSku, 5)
}

func TestCalcular_RedondeoADosDecimales(t *testing.T) {
	repo := newStubMedicionRepo()
	f := fechaUTC(2024, 3, 10)
	// 1 de 3 → 33.333…% redondeado a 33.33
	for _, osa := range []int{1, 0, 0} {
		m := medicion("S1", "100", f, osa)
		require.NoError(t, repo.Create(context.Background(), &m))
	}
	svc := NewKpiService(repo)

	report, err := svc.Calcular(context.Background(), dto.KpiFilter{})
	require.NoError(t, err)
	assert.Equal(t, 33.33, report.OsaPct)
	assert.Equal(t, 66.67, report.OosPct)
	require.Len(t, report.Series, 1)
	assert.Equal(t, 33.33, report.Series[0].OsaPct)
}
