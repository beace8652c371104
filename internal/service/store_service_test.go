package service

import (
	"context"
	"strings"
	"testing"

	"osadash/internal/dto"
	"osadash/internal/model"
	"osadash/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory StoreRepository stub ───────────────────────────────────────────

type stubStoreRepo struct {
	stores map[uint]*model.Store
	nextID uint
}

var _ repository.StoreRepository = (*stubStoreRepo)(nil)

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[uint]*model.Store), nextID: 1}
}

func (r *stubStoreRepo) Create(_ context.Context, s *model.Store) error {
	s.ID = r.nextID
	r.nextID++
	r.stores[s.ID] = s
	return nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id uint) (*model.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubStoreRepo) FindByName(_ context.Context, name string) (*model.Store, error) {
	for _, s := range r.stores {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStoreRepo) List(_ context.Context, q string, limit int) ([]model.Store, error) {
	var out []model.Store
	for _, s := range r.stores {
		if q == "" || strings.Contains(strings.ToLower(s.Name), strings.ToLower(q)) {
			out = append(out, *s)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubStoreRepo) Update(_ context.Context, s *model.Store) error {
	r.stores[s.ID] = s
	return nil
}

func (r *stubStoreRepo) Delete(_ context.Context, id uint) error {
	delete(r.stores, id)
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestStoreCrear_NombreDuplicadoCaseInsensitive(t *testing.T) {
	svc := NewStoreService(newStubStoreRepo())

	_, err := svc.Crear(context.Background(), dto.StoreRequest{Name: "Sucursal Centro"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.StoreRequest{Name: "SUCURSAL CENTRO"})
	assert.ErrorIs(t, err, ErrStoreDuplicado)
}

func TestStoreObtener_NoEncontrado(t *testing.T) {
	svc := NewStoreService(newStubStoreRepo())
	_, err := svc.ObtenerPorID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrStoreNoEncontrado)
}

func TestStoreActualizar_RenombreConConflicto(t *testing.T) {
	repo := newStubStoreRepo()
	svc := NewStoreService(repo)

	a, err := svc.Crear(context.Background(), dto.StoreRequest{Name: "Sucursal A"})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), dto.StoreRequest{Name: "Sucursal B"})
	require.NoError(t, err)

	_, err = svc.Actualizar(context.Background(), a.ID, dto.StoreRequest{Name: "sucursal b"})
	assert.ErrorIs(t, err, ErrStoreDuplicado)

	// renombrarse a si mismo con otra capitalizacion no es conflicto
	resp, err := svc.Actualizar(context.Background(), a.ID, dto.StoreRequest{Name: "SUCURSAL A"})
	require.NoError(t, err)
	assert.Equal(t, "SUCURSAL A", resp.Name)
}

func TestStoreEliminar(t *testing.T) {
	repo := newStubStoreRepo()
	svc := NewStoreService(repo)

	s, err := svc.Crear(context.Background(), dto.StoreRequest{Name: "Sucursal A"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), s.ID))
	assert.ErrorIs(t, svc.Eliminar(context.Background(), s.ID), ErrStoreNoEncontrado)
}
