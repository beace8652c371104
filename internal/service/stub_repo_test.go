package service

import (
	"context"
	"sort"
	"time"

	"osadash/internal/dto"
	"osadash/internal/model"

	"osadash/internal/repository"
)

// ── In-memory MedicionRepository stub ────────────────────────────────────────
// Mirrors the SQL semantics of the real repository: the dedup lookup matches
// id_conjunto alone when no timestamp is given, and id_conjunto plus an exact
// fecha_hora_medicion otherwise (rows without timestamp never match the
// timestamped lookup).

type stubMedicionRepo struct {
	mediciones []model.Medicion
	nextID     uint
	createErr  error
}

var _ repository.MedicionRepository = (*stubMedicionRepo)(nil)

func newStubMedicionRepo() *stubMedicionRepo {
	return &stubMedicionRepo{nextID: 1}
}

func coincide(f dto.KpiFilter, m *model.Medicion) bool {
	if f.Store != "" && m.PV != f.Store {
		return false
	}
	if f.DateFrom != nil && m.Fecha.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && m.Fecha.After(*f.DateTo) {
		return false
	}
	return true
}

func (r *stubMedicionRepo) Create(_ context.Context, m *model.Medicion) error {
	if r.createErr != nil {
		return r.createErr
	}
	m.ID = r.nextID
	r.nextID++
	r.mediciones = append(r.mediciones, *m)
	return nil
}

func (r *stubMedicionRepo) Exists(_ context.Context, idConjunto string, fechaHora *time.Time) (bool, error) {
	for i := range r.mediciones {
		m := &r.mediciones[i]
		if m.IDConjunto != idConjunto {
			continue
		}
		if fechaHora == nil {
			return true, nil
		}
		if m.FechaHoraMedicion != nil && m.FechaHoraMedicion.Equal(*fechaHora) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubMedicionRepo) List(_ context.Context, f dto.MedicionFilter) ([]model.Medicion, error) {
	var out []model.Medicion
	for i := range r.mediciones {
		if coincide(dto.KpiFilter{Store: f.Store, DateFrom: f.DateFrom, DateTo: f.DateTo}, &r.mediciones[i]) {
			out = append(out, r.mediciones[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *stubMedicionRepo) Count(_ context.Context, f dto.KpiFilter) (int64, error) {
	var n int64
	for i := range r.mediciones {
		if coincide(f, &r.mediciones[i]) {
			n++
		}
	}
	return n, nil
}

func (r *stubMedicionRepo) SumFlags(_ context.Context, f dto.KpiFilter) (int64, int64, error) {
	var osa, oos int64
	for i := range r.mediciones {
		if coincide(f, &r.mediciones[i]) {
			osa += int64(r.mediciones[i].OsaFlag)
			oos += int64(r.mediciones[i].OosFlag)
		}
	}
	return osa, oos, nil
}

func (r *stubMedicionRepo) PromedioOsaPorFecha(_ context.Context, f dto.KpiFilter) ([]repository.PromedioFecha, error) {
	sumas := make(map[time.Time][2]int) // fecha → (suma, cuenta)
	for i := range r.mediciones {
		m := &r.mediciones[i]
		if !coincide(f, m) {
			continue
		}
		s := sumas[m.Fecha]
		s[0] += m.OsaFlag
		s[1]++
		sumas[m.Fecha] = s
	}
	var out []repository.PromedioFecha
	for fecha, s := range sumas {
		out = append(out, repository.PromedioFecha{
			Fecha:    fecha,
			Promedio: float64(s[0]) / float64(s[1]),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}

func (r *stubMedicionRepo) PeoresPorBarcode(_ context.Context, f dto.KpiFilter, limit int) ([]repository.PromedioBarcode, error) {
	sumas := make(map[string][2]int)
	for i := range r.mediciones {
		m := &r.mediciones[i]
		if !coincide(f, m) {
			continue
		}
		s := sumas[m.CodigoBarra]
		s[0] += m.OsaFlag
		s[1]++
		sumas[m.CodigoBarra] = s
	}
	var out []repository.PromedioBarcode
	for codigo, s := range sumas {
		out = append(out, repository.PromedioBarcode{
			CodigoBarra: codigo,
			Promedio:    float64(s[0]) / float64(s[1]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Promedio != out[j].Promedio {
			return out[i].Promedio < out[j].Promedio
		}
		return out[i].CodigoBarra < out[j].CodigoBarra
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
