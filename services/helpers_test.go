package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dog-key/pre-order/configs"
	"github.com/dog-key/pre-order/entity"
	"github.com/dog-key/pre-order/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testUser = "user-1"

// DB in-memory แยกกันต่อ test (ตั้งชื่อตาม test กัน connection pool ชนกัน)
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

// catalog นิ่ง ๆ จาก fallback list (r1: m1=250/m2=220, r2: m3=25/m4=15)
type stubCatalog struct {
	restaurants []entity.Restaurant
}

func (s stubCatalog) Restaurant(id string) (entity.Restaurant, bool) {
	for _, r := range s.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return entity.Restaurant{}, false
}

func newServices(t *testing.T) (*CartService, *OrderService) {
	t.Helper()
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	cartSvc := NewCartService(db, cartRepo, stubCatalog{restaurants: FallbackRestaurants()})
	orderSvc := NewOrderService(db, orderRepo, cartRepo, nil, zap.NewNop())
	return cartSvc, orderSvc
}

// เดินนาฬิกาเองใน test ให้ created_at เรียงแน่นอน
func setClock(svc *OrderService, at time.Time) {
	svc.now = func() time.Time { return at }
}
