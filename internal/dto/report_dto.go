package dto

import "github.com/shopspring/decimal"

// LowStockItem is one row of the reorder report: a product at or below its
// threshold.
type LowStockItem struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
}

// GSTSummaryRow aggregates products sharing one GST rate.
type GSTSummaryRow struct {
	Rate       decimal.Decimal `json:"rate"`
	Products   int             `json:"products"`
	StockValue decimal.Decimal `json:"stock_value"` // selling price × quantity
	GSTAmount  decimal.Decimal `json:"gst_amount"`  // stock value × rate / 100
}

// CategoryCount backs the category-distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Products int64  `json:"products"`
}

// TopStockItem backs the top-N stock levels chart.
type TopStockItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
