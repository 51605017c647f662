package repository

import (
	"context"

	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products. Services
// depend on this interface, not on the concrete GORM implementation, enabling
// clean unit testing via in-memory stubs.
type ProductRepository interface {
	CreateTx(tx *gorm.DB, p *model.Product) error
	// FindByID returns the product with Category, Supplier, and Inventory
	// preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// List returns all products joined the same way, ordered by name
	// ascending (SQLite BINARY collation, i.e. case-sensitive ordinal order).
	List(ctx context.Context) ([]model.Product, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	// ClearSupplierTx detaches every product referencing a supplier, used
	// before the supplier row itself is deleted.
	ClearSupplierTx(tx *gorm.DB, supplierID uuid.UUID) error
	// CountByCategory groups active products per category name.
	CountByCategory(ctx context.Context) ([]dto.CategoryCount, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return translateError(tx.Create(p).Error)
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Preload("Inventory").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Preload("Inventory").
		Order("name ASC").
		Find(&products).Error
	return products, translateError(err)
}

func (r *productRepo) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return translateError(r.db.WithContext(ctx).
		Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error)
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return translateError(tx.Delete(&model.Product{}, "id = ?", id).Error)
}

func (r *productRepo) ClearSupplierTx(tx *gorm.DB, supplierID uuid.UUID) error {
	return translateError(tx.Model(&model.Product{}).
		Where("supplier_id = ?", supplierID).
		Update("supplier_id", nil).Error)
}

func (r *productRepo) CountByCategory(ctx context.Context) ([]dto.CategoryCount, error) {
	var rows []dto.CategoryCount
	err := r.db.WithContext(ctx).
		Table("products").
		Select("categories.name AS category, COUNT(products.id) AS products").
		Joins("JOIN categories ON categories.id = products.category_id").
		Group("categories.name").
		Order("categories.name ASC").
		Scan(&rows).Error
	return rows, translateError(err)
}

func (r *productRepo) DB() *gorm.DB { return r.db }
