package entity

// MenuItem เมนูหนึ่งรายการจาก catalog (ไม่เก็บลง DB — อยู่ใน cache ของ CatalogService)
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	IsVeg       bool   `json:"isVeg"`
	Category    string `json:"category"`
}
