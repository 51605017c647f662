package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/model"
	"github.com/super-sam-code/VyaparTracker/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory store stub ─────────────────────────────────────────────────────
// One fixture backs all five repository interfaces so that joined reads
// (product + category + supplier + inventory) can be assembled the way the
// real repositories preload them.

type memStore struct {
	categories   map[uuid.UUID]*model.Category
	suppliers    map[uuid.UUID]*model.Supplier
	products     map[uuid.UUID]*model.Product
	inventory    map[uuid.UUID]*model.InventoryRecord // keyed by product id
	transactions []*model.StockTransaction

	// failInventoryCreate simulates a write failure mid product creation.
	failInventoryCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[uuid.UUID]*model.Category),
		suppliers:  make(map[uuid.UUID]*model.Supplier),
		products:   make(map[uuid.UUID]*model.Product),
		inventory:  make(map[uuid.UUID]*model.InventoryRecord),
	}
}

var errNotFound = apperror.New(apperror.ErrNotFound, "record not found")

// ── CategoryRepository ───────────────────────────────────────────────────────

func (m *memStore) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, existing := range m.categories {
		if existing.Name == c.Name {
			return apperror.New(apperror.ErrDuplicateKey, "UNIQUE constraint failed: categories.name")
		}
	}
	m.categories[c.ID] = c
	return nil
}

func (m *memStore) List(_ context.Context) ([]model.Category, error) {
	result := make([]model.Category, 0, len(m.categories))
	for _, c := range m.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (m *memStore) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errNotFound
}

var _ repository.CategoryRepository = (*memStore)(nil)

// ── SupplierRepository (wrapper to avoid method-set collisions) ──────────────

type memSupplierRepo struct{ m *memStore }

func (r memSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.GSTIN != nil {
		for _, existing := range r.m.suppliers {
			if existing.GSTIN != nil && *existing.GSTIN == *s.GSTIN {
				return apperror.New(apperror.ErrDuplicateKey, "UNIQUE constraint failed: suppliers.gstin")
			}
		}
	}
	r.m.suppliers[s.ID] = s
	return nil
}

func (r memSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.m.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r memSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	result := make([]model.Supplier, 0, len(r.m.suppliers))
	for _, s := range r.m.suppliers {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r memSupplierRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	s, ok := r.m.suppliers[id]
	if !ok {
		return nil // zero rows affected, no error — matches GORM
	}
	for col, v := range fields {
		switch col {
		case "name":
			s.Name = v.(string)
		case "contact_person":
			val := v.(string)
			s.ContactPerson = &val
		case "phone":
			val := v.(string)
			s.Phone = &val
		case "email":
			val := v.(string)
			s.Email = &val
		case "address":
			val := v.(string)
			s.Address = &val
		case "gstin":
			val := v.(string)
			s.GSTIN = &val
		}
	}
	return nil
}

func (r memSupplierRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.m.suppliers, id)
	return nil
}

func (r memSupplierRepo) DB() *gorm.DB { return nil }

var _ repository.SupplierRepository = (*memSupplierRepo)(nil)

// ── ProductRepository ────────────────────────────────────────────────────────

type memProductRepo struct{ m *memStore }

func (r memProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.m.products[p.ID] = p
	return nil
}

// joined assembles the preloaded view the real repository returns.
func (r memProductRepo) joined(p *model.Product) *model.Product {
	cp := *p
	if c, ok := r.m.categories[p.CategoryID]; ok {
		cp.Category = c
	}
	if p.SupplierID != nil {
		if s, ok := r.m.suppliers[*p.SupplierID]; ok {
			cp.Supplier = s
		}
	}
	if rec, ok := r.m.inventory[p.ID]; ok {
		cp.Inventory = rec
	}
	return &cp
}

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.m.products[id]
	if !ok {
		return nil, errNotFound
	}
	return r.joined(p), nil
}

func (r memProductRepo) List(_ context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.m.products))
	for _, p := range r.m.products {
		result = append(result, *r.joined(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r memProductRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := r.m.products[id]
	if !ok {
		return nil
	}
	for col, v := range fields {
		switch col {
		case "name":
			p.Name = v.(string)
		case "description":
			val := v.(string)
			p.Description = &val
		case "category_id":
			p.CategoryID = v.(uuid.UUID)
		case "supplier_id":
			val := v.(uuid.UUID)
			p.SupplierID = &val
		case "cost_price":
			p.CostPrice = v.(decimal.Decimal)
		case "selling_price":
			p.SellingPrice = v.(decimal.Decimal)
		case "gst_percentage":
			p.GSTPercentage = v.(decimal.Decimal)
		case "hsn_code":
			val := v.(string)
			p.HSNCode = &val
		}
	}
	return nil
}

func (r memProductRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.m.products, id)
	return nil
}

func (r memProductRepo) ClearSupplierTx(_ *gorm.DB, supplierID uuid.UUID) error {
	for _, p := range r.m.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			p.SupplierID = nil
		}
	}
	return nil
}

func (r memProductRepo) CountByCategory(_ context.Context) ([]dto.CategoryCount, error) {
	counts := make(map[string]int64)
	for _, p := range r.m.products {
		if c, ok := r.m.categories[p.CategoryID]; ok {
			counts[c.Name]++
		}
	}
	rows := make([]dto.CategoryCount, 0, len(counts))
	for name, n := range counts {
		rows = append(rows, dto.CategoryCount{Category: name, Products: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows, nil
}

func (r memProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*memProductRepo)(nil)

// ── InventoryRepository ──────────────────────────────────────────────────────

type memInventoryRepo struct{ m *memStore }

func (r memInventoryRepo) FindByProductIDTx(_ *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error) {
	rec, ok := r.m.inventory[productID]
	if !ok {
		return nil, errNotFound
	}
	return rec, nil
}

func (r memInventoryRepo) CreateTx(_ *gorm.DB, rec *model.InventoryRecord) error {
	if r.m.failInventoryCreate {
		return errors.New("simulated inventory write failure")
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.m.inventory[rec.ProductID] = rec
	return nil
}

func (r memInventoryRepo) UpdateQuantityTx(_ *gorm.DB, productID uuid.UUID, quantity int) error {
	rec, ok := r.m.inventory[productID]
	if !ok {
		return errNotFound
	}
	rec.Quantity = quantity
	rec.LastUpdated = time.Now()
	return nil
}

func (r memInventoryRepo) DeleteByProductTx(_ *gorm.DB, productID uuid.UUID) error {
	delete(r.m.inventory, productID)
	return nil
}

func (r memInventoryRepo) LowStock(_ context.Context, threshold *int) ([]dto.LowStockItem, error) {
	var rows []dto.LowStockItem
	for pid, rec := range r.m.inventory {
		limit := rec.ReorderLevel
		if threshold != nil {
			limit = *threshold
		}
		if rec.Quantity > limit {
			continue
		}
		name := ""
		if p, ok := r.m.products[pid]; ok {
			name = p.Name
		}
		rows = append(rows, dto.LowStockItem{
			ProductID:    pid.String(),
			Name:         name,
			Quantity:     rec.Quantity,
			ReorderLevel: rec.ReorderLevel,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Quantity < rows[j].Quantity })
	return rows, nil
}

func (r memInventoryRepo) TopStock(_ context.Context, limit int) ([]dto.TopStockItem, error) {
	var rows []dto.TopStockItem
	for pid, rec := range r.m.inventory {
		name := ""
		if p, ok := r.m.products[pid]; ok {
			name = p.Name
		}
		rows = append(rows, dto.TopStockItem{Name: name, Quantity: rec.Quantity})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Quantity > rows[j].Quantity })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r memInventoryRepo) DB() *gorm.DB { return nil }

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

// ── TransactionRepository ────────────────────────────────────────────────────

type memTransactionRepo struct{ m *memStore }

func (r memTransactionRepo) CreateTx(_ *gorm.DB, t *model.StockTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.TransactionDate.IsZero() {
		t.TransactionDate = time.Now()
	}
	r.m.transactions = append(r.m.transactions, t)
	return nil
}

func (r memTransactionRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.StockTransaction, error) {
	var result []model.StockTransaction
	// newest first: walk the append-only log backwards
	for i := len(r.m.transactions) - 1; i >= 0; i-- {
		if r.m.transactions[i].ProductID == productID {
			result = append(result, *r.m.transactions[i])
		}
	}
	return result, nil
}

func (r memTransactionRepo) DeleteByProductTx(_ *gorm.DB, productID uuid.UUID) error {
	kept := r.m.transactions[:0]
	for _, t := range r.m.transactions {
		if t.ProductID != productID {
			kept = append(kept, t)
		}
	}
	r.m.transactions = kept
	return nil
}

var _ repository.TransactionRepository = (*memTransactionRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func (m *memStore) productRepo() repository.ProductRepository     { return memProductRepo{m} }
func (m *memStore) supplierRepo() repository.SupplierRepository   { return memSupplierRepo{m} }
func (m *memStore) inventoryRepo() repository.InventoryRepository { return memInventoryRepo{m} }
func (m *memStore) txRepo() repository.TransactionRepository      { return memTransactionRepo{m} }

func (m *memStore) seedCategory(name string) *model.Category {
	c := &model.Category{ID: uuid.New(), Name: name}
	m.categories[c.ID] = c
	return c
}

func (m *memStore) seedSupplier(name, gstin string) *model.Supplier {
	s := &model.Supplier{ID: uuid.New(), Name: name}
	if gstin != "" {
		s.GSTIN = &gstin
	}
	m.suppliers[s.ID] = s
	return s
}

// auditSum returns the signed transaction total for one product.
func (m *memStore) auditSum(productID uuid.UUID) int {
	sum := 0
	for _, t := range m.transactions {
		if t.ProductID == productID {
			sum += t.Quantity
		}
	}
	return sum
}
