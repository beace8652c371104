package repository

import (
	"context"

	"osadash/internal/model"

	"gorm.io/gorm"
)

// StoreRepository defines the data access contract for the store reference list.
type StoreRepository interface {
	Create(ctx context.Context, s *model.Store) error
	FindByID(ctx context.Context, id uint) (*model.Store, error)
	// FindByName is case-insensitive; used for the uniqueness check.
	FindByName(ctx context.Context, name string) (*model.Store, error)
	List(ctx context.Context, q string, limit int) ([]model.Store, error)
	Update(ctx context.Context, s *model.Store) error
	Delete(ctx context.Context, id uint) error
}

type storeRepo struct{ db *gorm.DB }

func NewStoreRepository(db *gorm.DB) StoreRepository { return &storeRepo{db: db} }

func (r *storeRepo) Create(ctx context.Context, s *model.Store) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *storeRepo) FindByID(ctx context.Context, id uint) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *storeRepo) FindByName(ctx context.Context, name string) (*model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&s).Error
	return &s, err
}

func (r *storeRepo) List(ctx context.Context, q string, limit int) ([]model.Store, error) {
	var stores []model.Store
	query := r.db.WithContext(ctx).Model(&model.Store{})
	if q != "" {
		// ILIKE is postgres-only; lower() LIKE lower() works on both backends
		query = query.Where("lower(name) LIKE lower(?)", "%"+q+"%")
	}
	err := query.Order("id DESC").Limit(limit).Find(&stores).Error
	return stores, err
}

func (r *storeRepo) Update(ctx context.Context, s *model.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *storeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Store{}, id).Error
}
