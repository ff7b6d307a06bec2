package services

import (
	"errors"

	"github.com/dog-key/pre-order/entity"
	"github.com/dog-key/pre-order/repository"
	"gorm.io/gorm"
)

var (
	ErrCartConflict        = errors.New("cart has another restaurant")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuNotInRestaurant = errors.New("menu not in this restaurant")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  CatalogSource // validate เมนูกับร้านที่ fetch มา
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog CatalogSource) *CartService {
	return &CartService{DB: db, CartRepo: cr, Catalog: catalog}
}

type AddToCartIn struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	ItemID       string `json:"itemId" binding:"required"`
	// ReplaceCart = user ยืนยันแล้วว่าจะทิ้งตะกร้าร้านเดิม
	ReplaceCart bool `json:"replaceCart"`
}

func (s *CartService) Get(userID string) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	return c, c.Subtotal(), nil
}

func (s *CartService) Add(userID string, in *AddToCartIn) error {
	rest, ok := s.Catalog.Restaurant(in.RestaurantID)
	if !ok {
		return ErrRestaurantNotFound
	}
	item, ok := rest.FindMenuItem(in.ItemID)
	if !ok {
		return ErrMenuNotInRestaurant
	}

	c, err := s.CartRepo.GetOrCreateCart(userID, rest.ID, rest.Name)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.Price,
		IsVeg:       item.IsVeg,
		Category:    item.Category,
		Qty:         1,
		Total:       item.Price,
	}

	// ตะกร้าล็อกร้านอื่นอยู่ → ต้องได้คำยืนยันก่อน ไม่งั้นไม่แตะอะไรเลย
	if c.RestaurantID != "" && c.RestaurantID != rest.ID {
		if !in.ReplaceCart {
			return ErrCartConflict
		}
		return s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.ReplaceWith(tx, c.ID, rest.ID, rest.Name, line)
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// ตะกร้าเพิ่งถูกล้าง → ล็อกร้านใหม่
		if c.RestaurantID == "" {
			if err := tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
				Updates(map[string]any{"restaurant_id": rest.ID, "restaurant_name": rest.Name}).Error; err != nil {
				return err
			}
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) RemoveItem(userID, itemID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
