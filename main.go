package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dog-key/pre-order/configs"
	"github.com/dog-key/pre-order/controllers"
	"github.com/dog-key/pre-order/repository"
	"github.com/dog-key/pre-order/routes"
	"github.com/dog-key/pre-order/services"
	"github.com/dog-key/pre-order/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// DB (in-memory — state ทั้ง session อยู่ที่นี่ หายเมื่อปิดโปรเซส)
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// merchant dashboard feed
	feed := ws.NewOrderFeed()
	go feed.Run()

	// Services
	catalogSvc := services.NewCatalogService(cfg, &http.Client{}, logger)
	cartSvc := services.NewCartService(db, cartRepo, catalogSvc)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, feed, logger)

	// HTTP
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		Catalog:  controllers.NewCatalogController(catalogSvc, cfg.DefaultLocation),
		Cart:     controllers.NewCartController(cartSvc),
		Order:    controllers.NewOrderController(orderSvc, services.DefaultQRGenerator{}),
		Merchant: controllers.NewMerchantOrderController(orderSvc),
		Feed:     feed,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
