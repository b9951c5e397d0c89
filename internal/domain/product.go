package domain

import "time"

// Product represents a physical catalog item (crops, seeds, tools).
type Product struct {
	ID                string     `gorm:"primaryKey;size:50" json:"id" form:"id"`
	FarmerID          string     `gorm:"size:50;index" json:"farmer_id" form:"farmer_id"`
	Name              string     `gorm:"size:255;not null" json:"name" form:"name"`
	Category          string     `gorm:"size:100;not null;index" json:"category" form:"category"`
	Subcategory       string     `gorm:"size:100" json:"subcategory" form:"subcategory"`
	Description       string     `json:"description" form:"description"`
	Price             float64    `gorm:"not null" json:"price" form:"price"`
	Currency          string     `gorm:"size:10;default:INR" json:"currency" form:"currency"`
	Unit              string     `gorm:"size:50;not null" json:"unit" form:"unit"`
	QuantityAvailable *int       `json:"quantity_available" form:"quantity_available"`
	HarvestDate       *time.Time `json:"harvest_date" form:"harvest_date"`
	ExpiryDate        *time.Time `json:"expiry_date" form:"expiry_date"`
	Organic           bool       `gorm:"default:false" json:"organic" form:"organic"`
	Images            string     `json:"images" form:"images"`
	Specifications    string     `gorm:"type:jsonb" json:"specifications" form:"specifications"`
	Status            string     `gorm:"size:20;default:available;index" json:"status" form:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName returns table name
func (Product) TableName() string {
	return "products"
}
