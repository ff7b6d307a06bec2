package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dog-key/pre-order/entity"
	"github.com/dog-key/pre-order/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// event ที่ยิงเข้า merchant feed (ws)
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

type OrderPublisher interface {
	Publish(evt OrderEvent)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Feed   OrderPublisher // nil ได้ (ไม่มี dashboard ต่ออยู่)
	Logger *zap.Logger

	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	feed OrderPublisher,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		DB:       db,
		Repo:     repo,
		CartRepo: cartRepo,
		Feed:     feed,
		Logger:   logger,
		now:      time.Now,
	}
}

// ----- Checkout -----

type CheckoutReq struct {
	PickupOffsetMinutes int `json:"pickupOffsetMinutes" binding:"required,gt=0"`
}

// Checkout แปลงตะกร้าเป็น order: snapshot รายการ + ราคา ณ ตอนนี้ แล้วล้างตะกร้า
// ตะกร้าว่าง → ปฏิเสธเฉย ๆ ไม่สร้างอะไร
func (s *OrderService) Checkout(userID string, pickupOffsetMinutes int) (*entity.Order, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()

	items := make([]entity.OrderItem, 0, len(cart.Items))
	var total int64
	for _, it := range cart.Items {
		items = append(items, entity.OrderItem{
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			IsVeg:     it.IsVeg,
			Qty:       it.Qty,
			Total:     it.Total,
		})
		total += it.Total
	}

	order := &entity.Order{
		ID:             newOrderID(now),
		UserID:         userID,
		RestaurantID:   cart.RestaurantID,
		RestaurantName: cart.RestaurantName,
		Total:          total,
		Status:         entity.StatusPending,
		PickupTime:     now.Add(time.Duration(pickupOffsetMinutes) * time.Minute),
		PickupCode:     newPickupCode(),
		CreatedAt:      now,
		Items:          items,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.Publish(OrderEvent{Type: EventOrderCreated, Order: order})
	}
	s.Logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("restaurant_id", order.RestaurantID),
		zap.Int64("total", order.Total))

	return order, nil
}

// ----- Queries -----

func (s *OrderService) ListForUser(userID string) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID, 50)
}

func (s *OrderService) GetForUser(userID, orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) ActiveForMerchant() ([]entity.Order, error) {
	return s.Repo.ListActiveOrders()
}

func (s *OrderService) CompletedRevenue() (int64, error) {
	return s.Repo.SumCompletedTotal()
}

type MerchantDashboard struct {
	ActiveOrders     int64 `json:"activeOrders"`
	CompletedRevenue int64 `json:"completedRevenue"`
}

func (s *OrderService) Dashboard() (*MerchantDashboard, error) {
	active, err := s.Repo.CountActiveOrders()
	if err != nil {
		return nil, err
	}
	revenue, err := s.Repo.SumCompletedTotal()
	if err != nil {
		return nil, err
	}
	return &MerchantDashboard{ActiveOrders: active, CompletedRevenue: revenue}, nil
}

// ----- ID generation -----

// id ชนกันได้ยาก: timestamp + random suffix (ไม่ได้เช็ค global uniqueness)
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), shortUUID())
}

// โค้ดรับอาหาร — สุ่มคนละตัวกับ order id เดาจากกันไม่ได้
func newPickupCode() string {
	return "QP-" + shortUUID()
}

func shortUUID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
