package controllers

import (
	"errors"
	"net/http"

	"github.com/dog-key/pre-order/pkg/resp"
	"github.com/dog-key/pre-order/services"
	"github.com/dog-key/pre-order/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
	QR  services.QRGenerator
}

func NewOrderController(svc *services.OrderService, qr services.QRGenerator) *OrderController {
	return &OrderController{Svc: svc, QR: qr}
}

// POST /orders → checkout ตะกร้าปัจจุบัน
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(uid, req.PickupOffsetMinutes)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /profile/orders → ประวัติ order ใหม่สุดก่อน
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := h.Svc.GetForUser(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/:id/qrcode → PNG ของ pickup code ไว้โชว์หน้าร้าน
func (h *OrderController) QRCode(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	order, err := h.Svc.GetForUser(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	png, err := h.QR.Generate(order.PickupCode)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
