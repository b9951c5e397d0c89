package domain

// Category organizes products and services into a two-level taxonomy.
type Category struct {
	ID          string `gorm:"primaryKey;size:50" json:"id" form:"id"`
	Name        string `gorm:"size:255;not null" json:"name" form:"name"`
	Type        string `gorm:"size:20;not null" json:"type" form:"type"` // 'product' or 'service'
	ParentID    string `gorm:"size:50" json:"parent_id" form:"parent_id"`
	Description string `json:"description" form:"description"`
	Icon        string `gorm:"size:255" json:"icon" form:"icon"`
	SortOrder   int    `gorm:"default:0" json:"sort_order" form:"sort_order"`
	Status      string `gorm:"size:20;default:active" json:"status" form:"status"`
}

// TableName returns table name
func (Category) TableName() string {
	return "categories"
}
