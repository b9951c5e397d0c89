package domain

import "time"

// Service represents a catalog service offering (consultation, rental,
// field work, processing). Services are not stock-counted.
type Service struct {
	ID                   string    `gorm:"primaryKey;size:50" json:"id" form:"id"`
	ProviderID           string    `gorm:"size:50;index" json:"provider_id" form:"provider_id"`
	Name                 string    `gorm:"size:255;not null" json:"name" form:"name"`
	Category             string    `gorm:"size:100;not null;index" json:"category" form:"category"`
	Subcategory          string    `gorm:"size:100" json:"subcategory" form:"subcategory"`
	Description          string    `json:"description" form:"description"`
	Price                float64   `gorm:"not null" json:"price" form:"price"`
	Currency             string    `gorm:"size:10;default:INR" json:"currency" form:"currency"`
	Unit                 string    `gorm:"size:50;not null" json:"unit" form:"unit"`
	DurationHours        *int      `json:"duration_hours" form:"duration_hours"`
	CoverageArea         string    `json:"coverage_area" form:"coverage_area"`
	EquipmentIncluded    string    `json:"equipment_included" form:"equipment_included"`
	Requirements         string    `json:"requirements" form:"requirements"`
	AvailabilitySchedule string    `json:"availability_schedule" form:"availability_schedule"`
	Rating               float64   `json:"rating" form:"rating"`
	TotalRatings         int       `json:"total_ratings" form:"total_ratings"`
	Status               string    `gorm:"size:20;default:available;index" json:"status" form:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName returns table name
func (Service) TableName() string {
	return "services"
}
