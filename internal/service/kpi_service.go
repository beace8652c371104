package service

import (
	"context"

	"osadash/internal/dto"
	"osadash/internal/repository"

	"github.com/shopspring/decimal"
)

// KpiService computes the aggregated report over the filtered measurement
// set: total count, OSA% / OOS%, daily OSA% series and the five worst
// barcodes by mean osa_flag. Read-only.
type KpiService interface {
	Calcular(ctx context.Context, f dto.KpiFilter) (*dto.KpiReport, error)
}

type kpiService struct {
	repo repository.MedicionRepository
}

func NewKpiService(repo repository.MedicionRepository) KpiService {
	return &kpiService{repo: repo}
}

// Percentages are rounded to 2 decimals, half away from zero.

func porcentaje(suma, total int64) float64 {
	return decimal.NewFromInt(suma).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2).InexactFloat64()
}

func promedioAPorcentaje(promedio float64) float64 {
	return decimal.NewFromFloat(promedio).
		Mul(decimal.NewFromInt(100)).
		Round(2).InexactFloat64()
}

func (s *kpiService) Calcular(ctx context.Context, f dto.KpiFilter) (*dto.KpiReport, error) {
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	// Defined short-circuit: an empty match set is a valid zero report.
	if total == 0 {
		return &dto.KpiReport{
			Total:    0,
			OsaPct:   0.0,
			OosPct:   0.0,
			Series:   []dto.PuntoSerie{},
			WorstSku: []dto.WorstSku{},
		}, nil
	}

	osaSum, oosSum, err := s.repo.SumFlags(ctx, f)
	if err != nil {
		return nil, err
	}

	porFecha, err := s.repo.PromedioOsaPorFecha(ctx, f)
	if err != nil {
		return nil, err
	}
	series := make([]dto.PuntoSerie, 0, len(porFecha))
	for _, g := range porFecha {
		series = append(series, dto.PuntoSerie{
			Date:   g.Fecha.Format("2006-01-02"),
			OsaPct: promedioAPorcentaje(g.Promedio),
		})
	}

	peores, err := s.repo.PeoresPorBarcode(ctx, f, 5)
	if err != nil {
		return nil, err
	}
	worst := make([]dto.WorstSku, 0, len(peores))
	for _, g := range peores {
		worst = append(worst, dto.WorstSku{
			Barcode: g.CodigoBarra,
			OsaPct:  promedioAPorcentaje(g.Promedio),
		})
	}

	return &dto.KpiReport{
		Total:    total,
		OsaPct:   porcentaje(osaSum, total),
		OosPct:   porcentaje(oosSum, total),
		Series:   series,
		WorstSku: worst,
	}, nil
}
