package services

import (
	"github.com/dog-key/pre-order/entity"
)

// fallback list ใช้ตอนไม่มี API key หรือ provider ล่ม
var fallbackRestaurants = []entity.Restaurant{
	{
		ID:       "r1",
		Name:     "Spice of Hyderabad",
		Cuisine:  "Biryani, North Indian",
		Rating:   4.5,
		Distance: "0.5 km",
		Address:  "Road No. 12, Banjara Hills",
		ImageURL: "https://picsum.photos/500/300?random=1",
		Menu: []entity.MenuItem{
			{ID: "m1", Name: "Chicken Dum Biryani", Description: "Authentic Hyderabadi style", Price: 250, IsVeg: false, Category: "Main Course"},
			{ID: "m2", Name: "Paneer Butter Masala", Description: "Creamy rich gravy", Price: 220, IsVeg: true, Category: "Main Course"},
		},
	},
	{
		ID:       "r2",
		Name:     "Mumbai Masala Chai",
		Cuisine:  "Cafe, Snacks",
		Rating:   4.8,
		Distance: "0.2 km",
		Address:  "Near Dadar Station",
		ImageURL: "https://picsum.photos/500/300?random=2",
		Menu: []entity.MenuItem{
			{ID: "m3", Name: "Vada Pav", Description: "The classic Mumbai burger", Price: 25, IsVeg: true, Category: "Snacks"},
			{ID: "m4", Name: "Masala Chai", Description: "Strong ginger tea", Price: 15, IsVeg: true, Category: "Beverages"},
		},
	},
}

// FallbackRestaurants คืน copy กันคนแก้ list ต้นฉบับ
func FallbackRestaurants() []entity.Restaurant {
	out := make([]entity.Restaurant, len(fallbackRestaurants))
	copy(out, fallbackRestaurants)
	return out
}
