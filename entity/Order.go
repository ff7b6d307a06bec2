package entity

import (
	"time"
)

type Order struct {
	// รูปแบบ ORD-<unix ms>-<random> กันชนกันภายใน session
	ID string `json:"id" gorm:"primaryKey"`

	UserID string `json:"userId" gorm:"index"`

	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`

	Total  int64       `json:"totalAmount"`
	Status OrderStatus `json:"status" gorm:"index"`

	PickupTime time.Time `json:"pickupTime"`
	// โค้ดยืนยันรับอาหารหน้าร้าน (สุ่มแยกจาก order id)
	PickupCode string `json:"pickupCode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	// snapshot ณ ตอนสั่ง — ราคา/เมนูเปลี่ยนทีหลังไม่กระทบ
	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
