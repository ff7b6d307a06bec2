// controllers/merchant_order_controller.go
package controllers

import (
	"errors"

	"github.com/dog-key/pre-order/pkg/resp"
	"github.com/dog-key/pre-order/services"
	"github.com/dog-key/pre-order/utils"
	"github.com/gin-gonic/gin"
)

type MerchantOrderController struct {
	Svc *services.OrderService
}

func NewMerchantOrderController(svc *services.OrderService) *MerchantOrderController {
	return &MerchantOrderController{Svc: svc}
}

// GET /merchant/dashboard → จำนวน order ที่ค้าง + ยอดขายที่ปิดแล้ว
func (ctl *MerchantOrderController) Dashboard(c *gin.Context) {
	d, err := ctl.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /merchant/orders → order ที่ยังไม่จบ (Completed/Rejected ไม่โชว์)
func (ctl *MerchantOrderController) List(c *gin.Context) {
	orders, err := ctl.Svc.ActiveForMerchant()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

type advanceBody struct {
	// ใส่ตอน complete ถ้าร้านสแกน QR ลูกค้า
	PickupCode string `json:"pickupCode"`
}

// PATCH /merchant/orders/:id/accept     Pending → Preparing
// PATCH /merchant/orders/:id/ready      Preparing → Ready
// PATCH /merchant/orders/:id/complete   Ready → Completed
// PATCH /merchant/orders/:id/reject     Pending/Preparing → Rejected
func (ctl *MerchantOrderController) Accept(c *gin.Context) {
	ctl.advance(c, services.ActionAccept)
}
func (ctl *MerchantOrderController) MarkReady(c *gin.Context) {
	ctl.advance(c, services.ActionMarkReady)
}
func (ctl *MerchantOrderController) Complete(c *gin.Context) {
	ctl.advance(c, services.ActionCompletePickup)
}
func (ctl *MerchantOrderController) Reject(c *gin.Context) {
	ctl.advance(c, services.ActionReject)
}

func (ctl *MerchantOrderController) advance(c *gin.Context, action services.OrderAction) {
	var body advanceBody
	_ = c.ShouldBindJSON(&body) // body ว่างได้

	order, err := ctl.Svc.Advance(utils.CurrentRole(c), c.Param("id"), action, body.PickupCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrPickupCodeMismatch):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}
