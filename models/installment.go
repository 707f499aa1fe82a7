package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPending = "Pending"
	StatusSettled = "Settled"
)

// Installment is one scheduled partial payment of an Order. Installments are
// created together with their Order and only ever deleted through it.
type Installment struct {
	gorm.Model
	Amount  decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	DueDate time.Time       `json:"dueDate" gorm:"index;not null"`
	Status  string          `json:"status" gorm:"size:50;not null;default:'Pending'"`
	Number  int             `json:"number" gorm:"not null"`
	OrderID uint            `json:"orderId" gorm:"index;not null"`
	Order   Order           `json:"-" gorm:"foreignKey:OrderID"`
}
