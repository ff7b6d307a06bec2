package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID string `json:"userId" gorm:"uniqueIndex"`

	// ตะกร้าล็อกร้านเดียว: ว่าง = ยังไม่ล็อกร้าน
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Subtotal รวมราคาทุก line (0 ถ้าตะกร้าว่าง)
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.Total
	}
	return sum
}
