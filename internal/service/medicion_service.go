package service

import (
	"context"

	"osadash/internal/dto"
	"osadash/internal/repository"
)

// MedicionService lists persisted measurements, most recent first.
type MedicionService interface {
	Listar(ctx context.Context, f dto.MedicionFilter) (*dto.MedicionListResponse, error)
}

type medicionService struct {
	repo repository.MedicionRepository
}

func NewMedicionService(repo repository.MedicionRepository) MedicionService {
	return &medicionService{repo: repo}
}

const limiteDefault = 200

func (s *medicionService) Listar(ctx context.Context, f dto.MedicionFilter) (*dto.MedicionListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = limiteDefault
	}
	mediciones, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MedicionResponse, 0, len(mediciones))
	for _, m := range mediciones {
		items = append(items, dto.MedicionResponse{
			ID:             m.ID,
			Fecha:          m.Fecha.Format("2006-01-02"),
			PV:             m.PV,
			CodigoBarra:    m.CodigoBarra,
			DescripcionSKU: m.DescripcionSKU,
			Estado:         m.Estado,
			TipoResultado:  m.TipoResultado,
			Provincia:      m.Provincia,
			OsaFlag:        m.OsaFlag,
			OosFlag:        m.OosFlag,
		})
	}
	return &dto.MedicionListResponse{Items: items}, nil
}
