package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/dog-key/pre-order/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed กระจาย order event ให้ merchant dashboard ที่ต่อ WS ค้างไว้
// (ห้องเดียว — ร้านเดียวในเดโมนี้)
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *OrderFeed) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implement services.OrderPublisher — non-blocking ฝั่ง service
func (h *OrderFeed) Publish(evt services.OrderEvent) {
	select {
	case h.broadcast <- evt:
	default:
		log.Printf("ws feed full, dropping %s event for %s", evt.Type, evt.Order.ID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/merchant/orders
func (h *OrderFeed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	go h.drain(conn)
}

// drain = feed ทางเดียว ฝั่ง client ไม่ต้องส่งอะไร อ่านทิ้งจนกว่าจะหลุด
func (h *OrderFeed) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
