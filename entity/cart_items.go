package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	// denormalize จากเมนูตอน add — catalog ไม่ได้อยู่ใน DB
	ItemID      string `json:"itemId" gorm:"index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	IsVeg       bool   `json:"isVeg"`
	Category    string `json:"category"`

	Qty   int   `json:"qty"`
	Total int64 `json:"total"`
}
