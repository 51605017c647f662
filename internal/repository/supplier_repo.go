package repository

import (
	"context"

	"github.com/super-sam-code/VyaparTracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierRepository defines CRUD operations for Supplier.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *supplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var list []model.Supplier
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, translateError(err)
}

func (r *supplierRepo) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return translateError(r.db.WithContext(ctx).
		Model(&model.Supplier{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *supplierRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return translateError(tx.Delete(&model.Supplier{}, "id = ?", id).Error)
}

func (r *supplierRepo) DB() *gorm.DB { return r.db }
