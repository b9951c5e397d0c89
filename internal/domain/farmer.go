package domain

import "time"

// Farmer represents a provider entry. Farmers supply both products and
// services, so every catalog provider resolves to a farmers row.
type Farmer struct {
	ID              string    `gorm:"primaryKey;size:50" json:"id" form:"id"`
	Name            string    `gorm:"size:255;not null" json:"name" form:"name"`
	Phone           string    `gorm:"size:20" json:"phone" form:"phone"`
	Email           string    `gorm:"size:255" json:"email" form:"email"`
	Address         string    `json:"address" form:"address"`
	LocationLat     float64   `json:"location_lat" form:"location_lat"`
	LocationLng     float64   `json:"location_lng" form:"location_lng"`
	City            string    `gorm:"size:100;index" json:"city" form:"city"`
	State           string    `gorm:"size:100;index" json:"state" form:"state"`
	PostalCode      string    `gorm:"size:20" json:"postal_code" form:"postal_code"`
	FarmSizeAcres   float64   `json:"farm_size_acres" form:"farm_size_acres"`
	Specialization  string    `json:"specialization" form:"specialization"`
	Certification   string    `gorm:"size:255" json:"certification" form:"certification"`
	EstablishedYear int       `json:"established_year" form:"established_year"`
	Description     string    `json:"description" form:"description"`
	Rating          float64   `gorm:"index:,sort:desc" json:"rating" form:"rating"`
	TotalRatings    int       `json:"total_ratings" form:"total_ratings"`
	Status          string    `gorm:"size:20;default:active" json:"status" form:"status"`
	Aadhaar         string    `gorm:"size:20" json:"aadhaar" form:"aadhaar"`
	Dob             string    `gorm:"size:20" json:"dob" form:"dob"`
	Gender          string    `gorm:"size:10" json:"gender" form:"gender"`
	FarmerCategory  string    `json:"farmer_category" form:"farmer_category"`
	CasteCategory   string    `gorm:"size:20" json:"caste_category" form:"caste_category"`
	TotalLandArea   string    `gorm:"size:20" json:"total_land_area" form:"total_land_area"`
	LocationInfo    string    `gorm:"type:jsonb" json:"location_info" form:"location_info"`
	FarmDetails     string    `gorm:"type:jsonb" json:"farm_details" form:"farm_details"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns table name
func (Farmer) TableName() string {
	return "farmers"
}
