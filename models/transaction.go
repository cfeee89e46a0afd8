package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxTypeTopUp   = "TOPUP"
	TrxTypePayment = "PAYMENT"
)

type Transaction struct {
	gorm.Model

	UserID        uint   `gorm:"index"`
	InvoiceNumber string `gorm:"size:64;uniqueIndex" json:"invoice_number"`
	ServiceCode   string `gorm:"size:32" json:"service_code"`
	ServiceName   string `gorm:"size:64" json:"service_name"`
	TrxType       string `gorm:"size:16;index" json:"transaction_type"`
	Description   string `gorm:"size:255" json:"description"`
	TotalAmount   int64  `json:"total_amount"`
	BalanceBefore int64  `json:"balance_before"`
	BalanceAfter  int64  `json:"balance_after"`

	Detail datatypes.JSON `gorm:"type:jsonb"`
}
