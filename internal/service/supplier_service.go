package service

import (
	"context"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/model"
	"github.com/super-sam-code/VyaparTracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierService defines business operations for suppliers. GSTIN uniqueness
// is enforced by the store and surfaces as ErrDuplicateKey.
type SupplierService interface {
	Add(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	// Delete detaches the supplier's products (their supplier reference is
	// cleared, the products survive) and removes the supplier row, as one
	// unit.
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

func NewSupplierService(repo repository.SupplierRepository, productRepo repository.ProductRepository) SupplierService {
	return &supplierService{repo: repo, productRepo: productRepo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		GSTIN:         s.GSTIN,
	}
}

func (s *supplierService) Add(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	resp := mapSupplier(*supplier)
	return &resp, nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapSupplier(*supplier)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(list))
	for _, supplier := range list {
		result = append(result, mapSupplier(supplier))
	}
	return result, nil
}

// Update applies the closed set of updatable supplier fields.
func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		updates["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.GSTIN != nil {
		updates["gstin"] = *req.GSTIN
	}
	if len(updates) == 0 {
		return nil, apperror.ErrNoFieldsToUpdate
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.productRepo.ClearSupplierTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
}
