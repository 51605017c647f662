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

// ProductService defines the business logic contract for products.
type ProductService interface {
	// Add inserts the product, its inventory record, and — when initial stock
	// is positive — an opening purchase transaction, as one atomic unit.
	Add(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	// Delete removes the product's transactions, inventory record, and the
	// product row as one unit. Idempotent: deleting a missing id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	invRepo      repository.InventoryRepository
	txRepo       repository.TransactionRepository
}

func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	invRepo repository.InventoryRepository,
	txRepo repository.TransactionRepository,
) ProductService {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		invRepo:      invRepo,
		txRepo:       txRepo,
	}
}

func (s *productService) Add(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apperror.Newf(apperror.ErrValidation, "invalid category id %q", req.CategoryID)
	}

	// Resolve references before opening the transaction. Both must exist —
	// there is no implicit default category or supplier.
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Newf(apperror.ErrNotFound, "category %s does not exist", req.CategoryID)
		}
		return nil, err
	}

	var supplier *model.Supplier
	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, apperror.Newf(apperror.ErrValidation, "invalid supplier id %q", *req.SupplierID)
		}
		supplier, err = s.supplierRepo.FindByID(ctx, sid)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.Newf(apperror.ErrNotFound, "supplier %s does not exist", *req.SupplierID)
			}
			return nil, err
		}
		supplierID = &sid
	}

	product := model.Product{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    categoryID,
		SupplierID:    supplierID,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		GSTPercentage: req.GSTPercentage,
		HSNCode:       req.HSNCode,
	}

	// One logical unit: product row, inventory row, optional opening
	// transaction. Any failure rolls back all three — a product row without
	// its inventory row must never be observable.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &product); err != nil {
			return err
		}
		rec := model.InventoryRecord{
			ProductID:    product.ID,
			Quantity:     req.InitialStock,
			ReorderLevel: model.DefaultReorderLevel,
			LastUpdated:  time.Now(),
		}
		if err := s.invRepo.CreateTx(tx, &rec); err != nil {
			return err
		}
		if req.InitialStock > 0 {
			opening := model.StockTransaction{
				Type:            model.TransactionPurchase,
				ProductID:       product.ID,
				Quantity:        req.InitialStock,
				TransactionDate: time.Now(),
				Notes:           "Initial stock",
			}
			if err := s.txRepo.CreateTx(tx, &opening); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := productToResponse(&product, req.InitialStock)
	resp.CategoryName = category.Name
	if supplier != nil {
		name := supplier.Name
		resp.SupplierName = &name
	}
	return resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productModelToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *productModelToResponse(&products[i]))
	}
	return result, nil
}

// Update applies the closed set of updatable fields. Column names come only
// from this switch — never from caller-supplied keys.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, apperror.Newf(apperror.ErrValidation, "invalid category id %q", *req.CategoryID)
		}
		if _, err := s.categoryRepo.FindByID(ctx, cid); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.Newf(apperror.ErrNotFound, "category %s does not exist", *req.CategoryID)
			}
			return nil, err
		}
		updates["category_id"] = cid
	}
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, apperror.Newf(apperror.ErrValidation, "invalid supplier id %q", *req.SupplierID)
		}
		if _, err := s.supplierRepo.FindByID(ctx, sid); err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				return nil, apperror.Newf(apperror.ErrNotFound, "supplier %s does not exist", *req.SupplierID)
			}
			return nil, err
		}
		updates["supplier_id"] = sid
	}
	if req.CostPrice != nil {
		updates["cost_price"] = *req.CostPrice
	}
	if req.SellingPrice != nil {
		updates["selling_price"] = *req.SellingPrice
	}
	if req.GSTPercentage != nil {
		updates["gst_percentage"] = *req.GSTPercentage
	}
	if req.HSNCode != nil {
		updates["hsn_code"] = *req.HSNCode
	}

	if len(updates) == 0 {
		return nil, apperror.ErrNoFieldsToUpdate
	}

	// Existence check so a typo'd id reads as not-found, not a silent no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	// No existence check: deleting a missing id succeeds with zero rows
	// affected, which keeps the operation idempotent.
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.txRepo.DeleteByProductTx(tx, id); err != nil {
			return err
		}
		if err := s.invRepo.DeleteByProductTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func productToResponse(p *model.Product, quantity int) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID.String(),
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		GSTPercentage: p.GSTPercentage,
		HSNCode:       p.HSNCode,
		Quantity:      quantity,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.SupplierID != nil {
		sid := p.SupplierID.String()
		resp.SupplierID = &sid
	}
	return resp
}

func productModelToResponse(p *model.Product) *dto.ProductResponse {
	quantity := 0
	if p.Inventory != nil {
		quantity = p.Inventory.Quantity
	}
	resp := productToResponse(p, quantity)
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Supplier != nil {
		name := p.Supplier.Name
		resp.SupplierName = &name
	}
	return resp
}
