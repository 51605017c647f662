package service

import (
	"context"
	"sort"

	"github.com/super-sam-code/VyaparTracker/internal/dto"
	"github.com/super-sam-code/VyaparTracker/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService serves the read-only report and dashboard queries. Nothing
// here mutates state.
type ReportService interface {
	// LowStock returns products with quantity at or below their reorder level,
	// or at or below threshold when supplied, ordered by quantity ascending.
	// The boundary quantity == reorder_level is included.
	LowStock(ctx context.Context, threshold *int) ([]dto.LowStockItem, error)
	// GSTSummary aggregates the catalog per GST rate: product count, stock
	// value at selling price, and the GST amount that value carries.
	GSTSummary(ctx context.Context) ([]dto.GSTSummaryRow, error)
	// CategoryDistribution counts products per category (dashboard pie chart).
	CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error)
	// TopStock returns the highest-quantity products (dashboard bar chart).
	TopStock(ctx context.Context, limit int) ([]dto.TopStockItem, error)
}

type reportService struct {
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
}

func NewReportService(invRepo repository.InventoryRepository, productRepo repository.ProductRepository) ReportService {
	return &reportService{invRepo: invRepo, productRepo: productRepo}
}

func (s *reportService) LowStock(ctx context.Context, threshold *int) ([]dto.LowStockItem, error) {
	return s.invRepo.LowStock(ctx, threshold)
}

func (s *reportService) GSTSummary(ctx context.Context) ([]dto.GSTSummaryRow, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)
	byRate := make(map[string]*dto.GSTSummaryRow)
	for i := range products {
		p := &products[i]
		quantity := 0
		if p.Inventory != nil {
			quantity = p.Inventory.Quantity
		}
		value := p.SellingPrice.Mul(decimal.NewFromInt(int64(quantity)))

		key := p.GSTPercentage.String()
		row, ok := byRate[key]
		if !ok {
			row = &dto.GSTSummaryRow{Rate: p.GSTPercentage}
			byRate[key] = row
		}
		row.Products++
		row.StockValue = row.StockValue.Add(value)
		row.GSTAmount = row.GSTAmount.Add(value.Mul(p.GSTPercentage).Div(hundred))
	}

	rows := make([]dto.GSTSummaryRow, 0, len(byRate))
	for _, row := range byRate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Rate.LessThan(rows[j].Rate)
	})
	return rows, nil
}

func (s *reportService) CategoryDistribution(ctx context.Context) ([]dto.CategoryCount, error) {
	return s.productRepo.CountByCategory(ctx)
}

func (s *reportService) TopStock(ctx context.Context, limit int) ([]dto.TopStockItem, error) {
	if limit < 1 {
		limit = 5
	}
	return s.invRepo.TopStock(ctx, limit)
}
