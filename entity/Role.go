package entity

// Role ของผู้เรียก lifecycle operations — customer อ่านได้อย่างเดียว
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMerchant Role = "merchant"
)
