package entity

// Restaurant ร้านจาก catalog provider — immutable หลัง fetch
type Restaurant struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cuisine  string  `json:"cuisine"`
	Rating   float64 `json:"rating"`
	Distance string  `json:"distance"` // display string เช่น "1.2 km"
	Address  string  `json:"address"`
	ImageURL string  `json:"imageUrl"`

	Menu []MenuItem `json:"menu"`
}

// FindMenuItem หาเมนูตาม id ในร้านนี้
func (r *Restaurant) FindMenuItem(itemID string) (MenuItem, bool) {
	for _, m := range r.Menu {
		if m.ID == itemID {
			return m, true
		}
	}
	return MenuItem{}, false
}
