package domain

import "time"

// Order is a pass-through record of a placed order. The adapter only writes
// and reads it; no order lifecycle logic lives here.
type Order struct {
	ID                string     `gorm:"primaryKey;size:50" json:"id" form:"id"`
	TransactionID     string     `gorm:"size:100;index" json:"transaction_id" form:"transaction_id"`
	CustomerName      string     `gorm:"size:255" json:"customer_name" form:"customer_name"`
	CustomerPhone     string     `gorm:"size:20" json:"customer_phone" form:"customer_phone"`
	CustomerEmail     string     `gorm:"size:255" json:"customer_email" form:"customer_email"`
	CustomerAddress   string     `json:"customer_address" form:"customer_address"`
	FarmerID          string     `gorm:"size:50;index" json:"farmer_id" form:"farmer_id"`
	Items             string     `gorm:"type:jsonb" json:"items" form:"items"`
	TotalAmount       float64    `json:"total_amount" form:"total_amount"`
	Currency          string     `gorm:"size:10;default:INR" json:"currency" form:"currency"`
	PaymentStatus     string     `gorm:"size:20;default:pending" json:"payment_status" form:"payment_status"`
	FulfillmentStatus string     `gorm:"size:20;default:pending" json:"fulfillment_status" form:"fulfillment_status"`
	DeliveryType      string     `gorm:"size:50" json:"delivery_type" form:"delivery_type"`
	DeliveryAddress   string     `json:"delivery_address" form:"delivery_address"`
	DeliveryDate      *time.Time `json:"delivery_date" form:"delivery_date"`
	Notes             string     `json:"notes" form:"notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName returns table name
func (Order) TableName() string {
	return "orders"
}
