package service

import (
	"context"
	"errors"
	"strings"

	"osadash/internal/dto"
	"osadash/internal/model"
	"osadash/internal/repository"

	"gorm.io/gorm"
)

// StoreService implements the reference-data CRUD for stores. Name is unique
// case-insensitively; collisions surface as ErrStoreDuplicado (409), missing
// records as ErrStoreNoEncontrado (404).
type StoreService interface {
	Crear(ctx context.Context, req dto.StoreRequest) (*dto.StoreResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.StoreResponse, error)
	Listar(ctx context.Context, q string, limit int) ([]dto.StoreResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.StoreRequest) (*dto.StoreResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type storeService struct {
	repo repository.StoreRepository
}

func NewStoreService(repo repository.StoreRepository) StoreService {
	return &storeService{repo: repo}
}

func toStoreResponse(s *model.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Provincia: s.Provincia,
		Formato:   s.Formato,
		Cliente:   s.Cliente,
	}
}

func (s *storeService) Crear(ctx context.Context, req dto.StoreRequest) (*dto.StoreResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, ErrStoreDuplicado
	}
	store := &model.Store{
		Name:      strings.TrimSpace(req.Name),
		Provincia: req.Provincia,
		Formato:   req.Formato,
		Cliente:   req.Cliente,
	}
	if err := s.repo.Create(ctx, store); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStoreDuplicado
		}
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) ObtenerPorID(ctx context.Context, id uint) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNoEncontrado
		}
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) Listar(ctx context.Context, q string, limit int) ([]dto.StoreResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	stores, err := s.repo.List(ctx, strings.TrimSpace(q), limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, *toStoreResponse(&stores[i]))
	}
	return out, nil
}

func (s *storeService) Actualizar(ctx context.Context, id uint, req dto.StoreRequest) (*dto.StoreResponse, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNoEncontrado
		}
		return nil, err
	}

	nuevoNombre := strings.TrimSpace(req.Name)
	if !strings.EqualFold(nuevoNombre, store.Name) {
		if _, err := s.repo.FindByName(ctx, nuevoNombre); err == nil {
			return nil, ErrStoreDuplicado
		}
	}

	store.Name = nuevoNombre
	store.Provincia = req.Provincia
	store.Formato = req.Formato
	store.Cliente = req.Cliente
	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

func (s *storeService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
