package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID string `json:"orderId" gorm:"index"`
	Order   Order  `json:"-"`

	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	IsVeg     bool   `json:"isVeg"`
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"`
}
