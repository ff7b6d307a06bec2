package routes

import (
	"github.com/dog-key/pre-order/controllers"
	"github.com/dog-key/pre-order/entity"
	"github.com/dog-key/pre-order/middlewares"
	"github.com/dog-key/pre-order/ws"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
	Merchant *controllers.MerchantOrderController
	Feed     *ws.OrderFeed
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SessionMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Catalog (public)
	r.GET("/restaurants", d.Catalog.List)
	r.GET("/restaurants/:id", d.Catalog.Detail)

	// Cart (user)
	r.GET("/cart", d.Cart.Get)
	r.POST("/cart/items", d.Cart.Add)
	r.DELETE("/cart/items/:itemId", d.Cart.RemoveItem)
	r.DELETE("/cart", d.Cart.Clear)

	// Orders (user)
	r.POST("/orders", d.Order.Create)
	r.GET("/orders/:id", d.Order.Detail)
	r.GET("/orders/:id/qrcode", d.Order.QRCode)

	// Profile
	profile := r.Group("/profile")
	{
		profile.GET("/orders", d.Order.ListForMe)
	}

	// Merchant dashboard
	merchant := r.Group("/merchant", middlewares.RequireRole(entity.RoleMerchant))
	{
		merchant.GET("/dashboard", d.Merchant.Dashboard)
		merchant.GET("/orders", d.Merchant.List)
		merchant.PATCH("/orders/:id/accept", d.Merchant.Accept)
		merchant.PATCH("/orders/:id/ready", d.Merchant.MarkReady)
		merchant.PATCH("/orders/:id/complete", d.Merchant.Complete)
		merchant.PATCH("/orders/:id/reject", d.Merchant.Reject)
	}

	// order event feed สำหรับ dashboard
	r.GET("/ws/merchant/orders", d.Feed.HandleWebSocket)
}
