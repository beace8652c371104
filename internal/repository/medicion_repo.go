package repository

import (
	"context"
	"time"

	"osadash/internal/dto"
	"osadash/internal/model"

	"gorm.io/gorm"
)

// PromedioFecha is one GROUP BY fecha aggregation row (mean of osa_flag).
type PromedioFecha struct {
	Fecha    time.Time `gorm:"column:fecha"`
	Promedio float64   `gorm:"column:promedio"`
}

// PromedioBarcode is one GROUP BY codigo_barra aggregation row.
type PromedioBarcode struct {
	CodigoBarra string  `gorm:"column:codigo_barra"`
	Promedio    float64 `gorm:"column:promedio"`
}

// MedicionRepository defines the data access contract for measurements.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type MedicionRepository interface {
	Create(ctx context.Context, m *model.Medicion) error
	// Exists checks the dedup key: (id_conjunto, fecha_hora_medicion) when
	// the timestamp is present, id_conjunto alone otherwise.
	Exists(ctx context.Context, idConjunto string, fechaHora *time.Time) (bool, error)
	List(ctx context.Context, f dto.MedicionFilter) ([]model.Medicion, error)
	Count(ctx context.Context, f dto.KpiFilter) (int64, error)
	SumFlags(ctx context.Context, f dto.KpiFilter) (osa int64, oos int64, err error)
	PromedioOsaPorFecha(ctx context.Context, f dto.KpiFilter) ([]PromedioFecha, error)
	PeoresPorBarcode(ctx context.Context, f dto.KpiFilter, limit int) ([]PromedioBarcode, error)
}

type medicionRepo struct{ db *gorm.DB }

func NewMedicionRepository(db *gorm.DB) MedicionRepository { return &medicionRepo{db: db} }

// filtroKpi applies the conjunctive store/date-range filter. Absent fields
// add no constraint.
func filtroKpi(f dto.KpiFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.Store != "" {
			q = q.Where("pv = ?", f.Store)
		}
		if f.DateFrom != nil {
			q = q.Where("fecha >= ?", *f.DateFrom)
		}
		if f.DateTo != nil {
			q = q.Where("fecha <= ?", *f.DateTo)
		}
		return q
	}
}

func (r *medicionRepo) Create(ctx context.Context, m *model.Medicion) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *medicionRepo) Exists(ctx context.Context, idConjunto string, fechaHora *time.Time) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Medicion{}).Where("id_conjunto = ?", idConjunto)
	if fechaHora != nil {
		q = q.Where("fecha_hora_medicion = ?", *fechaHora)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *medicionRepo) List(ctx context.Context, f dto.MedicionFilter) ([]model.Medicion, error) {
	var mediciones []model.Medicion
	q := r.db.WithContext(ctx).Scopes(filtroKpi(dto.KpiFilter{
		Store: f.Store, DateFrom: f.DateFrom, DateTo: f.DateTo,
	}))
	err := q.Order("fecha DESC").Limit(f.Limit).Find(&mediciones).Error
	return mediciones, err
}

func (r *medicionRepo) Count(ctx context.Context, f dto.KpiFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Medicion{}).
		Scopes(filtroKpi(f)).Count(&total).Error
	return total, err
}

func (r *medicionRepo) SumFlags(ctx context.Context, f dto.KpiFilter) (int64, int64, error) {
	var row struct {
		Osa int64 `gorm:"column:osa"`
		Oos int64 `gorm:"column:oos"`
	}
	err := r.db.WithContext(ctx).Model(&model.Medicion{}).
		Select("COALESCE(SUM(osa_flag), 0) AS osa, COALESCE(SUM(oos_flag), 0) AS oos").
		Scopes(filtroKpi(f)).
		Scan(&row).Error
	return row.Osa, row.Oos, err
}

func (r *medicionRepo) PromedioOsaPorFecha(ctx context.Context, f dto.KpiFilter) ([]PromedioFecha, error) {
	var rows []PromedioFecha
	err := r.db.WithContext(ctx).Model(&model.Medicion{}).
		Select("fecha, AVG(osa_flag) AS promedio").
		Scopes(filtroKpi(f)).
		Group("fecha").
		Order("fecha ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *medicionRepo) PeoresPorBarcode(ctx context.Context, f dto.KpiFilter, limit int) ([]PromedioBarcode, error) {
	var rows []PromedioBarcode
	err := r.db.WithContext(ctx).Model(&model.Medicion{}).
		Select("codigo_barra, AVG(osa_flag) AS promedio").
		Scopes(filtroKpi(f)).
		Group("codigo_barra").
		// barcode ASC is the stable tie-break for equal means
		Order("promedio ASC, codigo_barra ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
