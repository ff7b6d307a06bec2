package repository

import (
	"github.com/dog-key/pre-order/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// POST /orders → สร้าง order พร้อม snapshot items
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/:id (ลูกค้า) → order ต้องเป็นของ user เอง
func (r *OrderRepository) GetOrderForUser(userID, orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /profile/orders → ประวัติ order ของ user, ใหม่สุดก่อน
func (r *OrderRepository) ListOrdersForUser(userID string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// GET /merchant/orders → order ที่ยัง active (ตัด Completed/Rejected ออก)
func (r *OrderRepository) ListActiveOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("status NOT IN ?", []entity.OrderStatus{entity.StatusCompleted, entity.StatusRejected}).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) CountActiveOrders() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).
		Where("status NOT IN ?", []entity.OrderStatus{entity.StatusCompleted, entity.StatusRejected}).
		Count(&n).Error
	return n, err
}

// ยอดขายรวมจาก order ที่รับของไปแล้ว — คำนวณสดทุกครั้ง ไม่ cache
func (r *OrderRepository) SumCompletedTotal() (int64, error) {
	var row struct{ Revenue int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("status = ?", entity.StatusCompleted).
		Scan(&row).Error
	return row.Revenue, err
}

// PATCH /merchant/orders/:id/... → อัปเดตสถานะ (มี guard กัน transition ซ้อน)
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID string, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
