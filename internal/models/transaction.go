package models

import "time"

// Transaction is a cylinder ledger entry. Suppliers (incoming side) and
// vendors (outgoing side) share the same shape and live in separate tables.
type Transaction struct {
	ID                     int       `json:"id"`
	PartyName              string    `json:"party_name"`
	CylinderRate           float64   `json:"cylinder_rate"`
	CylindersIssued        float64   `json:"no_of_cylinders"`
	EmptyCylindersReturned float64   `json:"empty_cylinders_returned"`
	RemainingCylinders     float64   `json:"remaining_cylinders"`
	TotalAmount            float64   `json:"total_amount"`
	OnlinePayment          float64   `json:"online_payment"`
	CashPayment            float64   `json:"cash_payment"`
	PreviousPayment        float64   `json:"previous_payment"`
	RemainingPayment       float64   `json:"remaining_payment"`
	PaymentDate            time.Time `json:"payment_date"`
	RemainingCylinderDate  time.Time `json:"remaining_cylinder_date"`
	Remarks                string    `json:"remarks"`
	DeleteFlag             bool      `json:"delete_flag"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// CreateTransactionRequest represents the request body for adding a ledger entry.
// Pointer fields distinguish "omitted" from an explicit zero.
type CreateTransactionRequest struct {
	PartyName              string   `json:"party_name"`
	CylinderRate           *float64 `json:"cylinder_rate"`
	CylindersIssued        *float64 `json:"no_of_cylinders"`
	EmptyCylindersReturned *float64 `json:"empty_cylinders_returned"`
	TotalAmount            *float64 `json:"total_amount"`
	OnlinePayment          *float64 `json:"online_payment"`
	CashPayment            *float64 `json:"cash_payment"`
	PreviousPayment        *float64 `json:"previous_payment"`
	PaymentDate            *string  `json:"payment_date"`
	RemainingCylinderDate  *string  `json:"remaining_cylinder_date"`
	Remarks                string   `json:"remarks"`
}

// UpdateTransactionRequest represents a partial update. Any field left nil
// keeps its stored value; derived fields are recomputed from the merge result.
type UpdateTransactionRequest struct {
	PartyName              *string  `json:"party_name"`
	CylinderRate           *float64 `json:"cylinder_rate"`
	CylindersIssued        *float64 `json:"no_of_cylinders"`
	EmptyCylindersReturned *float64 `json:"empty_cylinders_returned"`
	TotalAmount            *float64 `json:"total_amount"`
	OnlinePayment          *float64 `json:"online_payment"`
	CashPayment            *float64 `json:"cash_payment"`
	PreviousPayment        *float64 `json:"previous_payment"`
	PaymentDate            *string  `json:"payment_date"`
	RemainingCylinderDate  *string  `json:"remaining_cylinder_date"`
	Remarks                *string  `json:"remarks"`
}

// TransactionStats is the dashboard aggregate over one ledger table.
type TransactionStats struct {
	TodayCount      int     `json:"todayCount"`
	LastMonthCount  int     `json:"lastMonthCount"`
	TotalCount      int     `json:"totalCount"`
	TodayAmount     float64 `json:"todayAmount"`
	LastMonthAmount float64 `json:"lastMonthAmount"`
	TotalAmount     float64 `json:"totalAmount"`
}
