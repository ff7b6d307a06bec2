// services/order_transitions.go
package services

import (
	"errors"

	"github.com/dog-key/pre-order/entity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrPickupCodeMismatch = errors.New("pickup code mismatch")
)

type OrderAction string

const (
	ActionAccept         OrderAction = "accept"
	ActionMarkReady      OrderAction = "markReady"
	ActionCompletePickup OrderAction = "completePickup"
	ActionReject         OrderAction = "reject"
)

// ตารางเดินสถานะ — เดินหน้าอย่างเดียว reject ได้เฉพาะตอนยังไม่เสร็จ
var transitions = map[OrderAction]struct {
	from []entity.OrderStatus
	to   entity.OrderStatus
}{
	ActionAccept:         {from: []entity.OrderStatus{entity.StatusPending}, to: entity.StatusPreparing},
	ActionMarkReady:      {from: []entity.OrderStatus{entity.StatusPreparing}, to: entity.StatusReady},
	ActionCompletePickup: {from: []entity.OrderStatus{entity.StatusReady}, to: entity.StatusCompleted},
	ActionReject:         {from: []entity.OrderStatus{entity.StatusPending, entity.StatusPreparing}, to: entity.StatusRejected},
}

// Advance เดินสถานะ order หนึ่งก้าวตาม action — merchant เท่านั้น
// pickupCode ใส่มาตอน completePickup ถ้าอยากเช็คโค้ดหน้าร้าน (เว้นว่าง = ข้าม)
// action ที่ผิดจากสถานะปัจจุบันคือ bug ฝั่ง caller → log ไว้แล้วไม่แตะ state
func (s *OrderService) Advance(role entity.Role, orderID string, action OrderAction, pickupCode string) (*entity.Order, error) {
	if role != entity.RoleMerchant {
		return nil, ErrForbidden
	}

	t, ok := transitions[action]
	if !ok {
		s.Logger.Warn("unknown order action",
			zap.String("order_id", orderID), zap.String("action", string(action)))
		return nil, ErrInvalidTransition
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Logger.Warn("advance on unknown order", zap.String("order_id", orderID))
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	var from entity.OrderStatus
	legal := false
	for _, f := range t.from {
		if o.Status == f {
			from = f
			legal = true
			break
		}
	}
	if !legal {
		s.Logger.Warn("invalid order transition",
			zap.String("order_id", orderID),
			zap.String("action", string(action)),
			zap.String("status", string(o.Status)))
		return nil, ErrInvalidTransition
	}

	if action == ActionCompletePickup && pickupCode != "" && pickupCode != o.PickupCode {
		return nil, ErrPickupCodeMismatch
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, from, t.to)
		if err != nil {
			return err
		}
		// แข่งกับ transition อื่นแล้วแพ้ ก็นับเป็น invalid เหมือนกัน
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = t.to
	if s.Feed != nil {
		s.Feed.Publish(OrderEvent{Type: EventStatusChanged, Order: o})
	}
	s.Logger.Info("order status changed",
		zap.String("order_id", o.ID),
		zap.String("from", string(from)),
		zap.String("to", string(t.to)))

	return o, nil
}
