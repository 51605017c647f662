package repository

import (
	"context"

	"github.com/super-sam-code/VyaparTracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository defines access to the append-only stock audit log.
// There is deliberately no update operation; rows only ever leave the table
// through DeleteByProductTx when their product is removed.
type TransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.StockTransaction) error
	// ListByProduct returns the product's audit trail, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockTransaction, error)
	DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.StockTransaction) error {
	return translateError(tx.Create(t).Error)
}

func (r *transactionRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockTransaction, error) {
	var list []model.StockTransaction
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("transaction_date DESC").
		Find(&list).Error
	return list, translateError(err)
}

func (r *transactionRepo) DeleteByProductTx(tx *gorm.DB, productID uuid.UUID) error {
	return translateError(tx.Delete(&model.StockTransaction{}, "product_id = ?", productID).Error)
}
