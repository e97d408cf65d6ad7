package models

import "time"

// Stock is the aggregate cylinder stock record. At most one row exists.
type Stock struct {
	ID           int       `json:"id"`
	TotalStock   float64   `json:"total_stock"`
	SellingStock float64   `json:"selling_stock"`
	PendingStock float64   `json:"pending_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateStockRequest struct {
	TotalStock   *float64 `json:"total_stock"`
	SellingStock *float64 `json:"selling_stock"`
}

type UpdateStockRequest struct {
	TotalStock   *float64 `json:"total_stock"`
	SellingStock *float64 `json:"selling_stock"`
}
