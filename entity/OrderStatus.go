package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusRejected  OrderStatus = "Rejected"
)

// Terminal = จบแล้ว ไปต่อไม่ได้
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}
