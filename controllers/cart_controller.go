package controllers

import (
	"errors"

	"github.com/dog-key/pre-order/pkg/resp"
	"github.com/dog-key/pre-order/services"
	"github.com/dog-key/pre-order/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
// ตะกร้าล็อกร้านอื่นอยู่ → 409 ให้ FE เด้ง confirm แล้วยิงซ้ำพร้อม replaceCart=true
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrCartConflict):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrRestaurantNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrMenuNotInRestaurant):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// DELETE /cart/items/:itemId — ลบทั้ง line (ไม่ใช่ลด qty), ลบซ้ำ = no-op
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.RemoveItem(uid, c.Param("itemId")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
