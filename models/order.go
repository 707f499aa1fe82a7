package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a sale paid in one or more installments.
// ClientName is a copied string, not a foreign key: it snapshots the client's
// name at order time, so renaming a Client leaves historical orders untouched.
type Order struct {
	gorm.Model
	OrderNumber      string          `json:"orderNumber" gorm:"uniqueIndex;size:50;not null"`
	ClientName       string          `json:"clientName" gorm:"size:100;not null"`
	TotalValue       decimal.Decimal `json:"totalValue" gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string          `json:"paymentMethod" gorm:"size:50;not null"`
	InstallmentCount int             `json:"installmentCount" gorm:"default:1"`
	IssueDate        time.Time       `json:"issueDate" gorm:"not null"`

	// Deleting an order deletes its installments in the same transaction;
	// the cascade is explicit in the handler, not a database constraint.
	Installments []Installment `json:"installments,omitempty"`
}
