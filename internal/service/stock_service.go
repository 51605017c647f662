package service

import (
	"context"
	"errors"
	"time"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/model"
	"github.com/super-sam-code/VyaparTracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockService owns the one stateful algorithm in the system: quantity is
// bounded below by zero, and every accepted change — positive or negative —
// appends exactly one immutable transaction row in the same unit of work. The
// transaction log therefore always sums, per product, to the current quantity.
type StockService interface {
	Adjust(ctx context.Context, req dto.AdjustStockRequest) (*dto.StockLevelResponse, error)
	// History returns the product's audit trail, newest first.
	History(ctx context.Context, productID uuid.UUID) ([]dto.TransactionResponse, error)
}

type stockService struct {
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
	txRepo      repository.TransactionRepository
}

func NewStockService(
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	txRepo repository.TransactionRepository,
) StockService {
	return &stockService{productRepo: productRepo, invRepo: invRepo, txRepo: txRepo}
}

func (s *stockService) Adjust(ctx context.Context, req dto.AdjustStockRequest) (*dto.StockLevelResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid product id %q", req.ProductID)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Newf(apperror.ErrNotFound, "product %s does not exist", req.ProductID)
		}
		return nil, err
	}

	var newQuantity int
	txErr := runTx(ctx, s.invRepo.DB(), func(tx *gorm.DB) error {
		rec, err := s.invRepo.FindByProductIDTx(tx, productID)
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			// No inventory row yet. Only a non-negative delta may create one;
			// a decrement against nothing is an insufficient-stock condition,
			// not a silent negative quantity.
			if req.Delta < 0 {
				return apperror.Newf(apperror.ErrInsufficientStock,
					"no stock recorded for %s, cannot remove %d", product.Name, -req.Delta)
			}
			newQuantity = req.Delta
			if err := s.invRepo.CreateTx(tx, &model.InventoryRecord{
				ProductID:    productID,
				Quantity:     newQuantity,
				ReorderLevel: model.DefaultReorderLevel,
				LastUpdated:  time.Now(),
			}); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			newQuantity = rec.Quantity + req.Delta
			if newQuantity < 0 {
				return apperror.Newf(apperror.ErrInsufficientStock,
					"stock cannot go negative: %s has %d, change %d", product.Name, rec.Quantity, req.Delta)
			}
			if err := s.invRepo.UpdateQuantityTx(tx, productID, newQuantity); err != nil {
				return err
			}
		}

		// The audit row is appended on every accepted branch, inside the same
		// transaction as the quantity write.
		return s.txRepo.CreateTx(tx, &model.StockTransaction{
			Type:            req.Type,
			ProductID:       productID,
			Quantity:        req.Delta,
			TransactionDate: time.Now(),
			Notes:           req.Notes,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.StockLevelResponse{
		ProductID:   productID.String(),
		ProductName: product.Name,
		Quantity:    newQuantity,
	}, nil
}

func (s *stockService) History(ctx context.Context, productID uuid.UUID) ([]dto.TransactionResponse, error) {
	list, err := s.txRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		result = append(result, dto.TransactionResponse{
			ID:              t.ID.String(),
			Type:            t.Type,
			ProductID:       t.ProductID.String(),
			Quantity:        t.Quantity,
			TransactionDate: t.TransactionDate.Format(time.RFC3339),
			Notes:           t.Notes,
		})
	}
	return result, nil
}
