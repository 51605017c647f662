package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	// Delta is signed: positive adds stock, negative removes it.
	Delta int    `json:"delta"`
	Type  string `json:"type"  validate:"required,oneof=purchase sale adjustment"`
	Notes string `json:"notes"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type StockLevelResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type TransactionResponse struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	TransactionDate string `json:"transaction_date"`
	Notes           string `json:"notes,omitempty"`
}
