package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=200"`
	Description *string `json:"description"`
	// CategoryID must resolve to an existing category; there is no implicit
	// default.
	CategoryID    string          `json:"category_id"  validate:"required,uuid"`
	SupplierID    *string         `json:"supplier_id"  validate:"omitempty,uuid"`
	CostPrice     decimal.Decimal `json:"cost_price"   validate:"min=0"`
	SellingPrice  decimal.Decimal `json:"selling_price" validate:"min=0"`
	GSTPercentage decimal.Decimal `json:"gst_percentage" validate:"min=0,max=100"`
	HSNCode       *string         `json:"hsn_code"`
	InitialStock  int             `json:"initial_stock" validate:"min=0"`
}

// UpdateProductRequest is the closed set of updatable product fields. Only
// non-nil fields are applied; column names are never built from caller input.
type UpdateProductRequest struct {
	Name          *string          `json:"name"          validate:"omitempty,min=2,max=200"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"   validate:"omitempty,uuid"`
	SupplierID    *string          `json:"supplier_id"   validate:"omitempty,uuid"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	GSTPercentage *decimal.Decimal `json:"gst_percentage"`
	HSNCode       *string          `json:"hsn_code"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// ProductResponse is the joined view: product fields plus category name,
// supplier name, and the current inventory quantity.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	SupplierName  *string         `json:"supplier_name,omitempty"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	GSTPercentage decimal.Decimal `json:"gst_percentage"`
	HSNCode       *string         `json:"hsn_code,omitempty"`
	Quantity      int             `json:"quantity"`
	CreatedAt     string          `json:"created_at"`
}
