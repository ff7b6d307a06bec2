package configs

import (
	"github.com/dog-key/pre-order/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB เปิด sqlite in-memory แล้วส่ง handle กลับให้ caller inject ต่อ
// (ไม่มี global var — สร้างครั้งเดียวใน main)
func ConnectDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := SetupDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
