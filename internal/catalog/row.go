package catalog

// RowType values for the type column of a catalog row.
const (
	RowTypeProduct = "product"
	RowTypeService = "service"
)

// Row is one flat search result: a product or service joined with its
// provider. Fields that the services branch cannot supply (quantity,
// organic) come back NULL and stay nil.
type Row struct {
	Type              string  `json:"type"`
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	Unit              string  `json:"unit"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory"`
	QuantityAvailable *int    `json:"quantity_available"`
	Organic           *bool   `json:"organic"`
	Images            string  `json:"images"`
	Specifications    string  `json:"specifications"`
	DurationHours     *int    `json:"duration_hours"`
	ProviderID        string  `json:"provider_id"`
	ProviderName      string  `json:"provider_name"`
	ProviderCity      string  `json:"provider_city"`
	ProviderState     string  `json:"provider_state"`
	ProviderRating    float64 `json:"provider_rating"`
	Specialization    string  `json:"specialization"`
	ProviderPhone     string  `json:"provider_phone"`
	ProviderEmail     string  `json:"provider_email"`
}

// SearchParams carries the filter criteria extracted from a search intent.
// Zero values mean the filter is not applied.
type SearchParams struct {
	Query      string `json:"query,omitempty"`
	Category   string `json:"category,omitempty"`
	Location   string `json:"location,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
	Organic    *bool  `json:"organic,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// ProviderSummary is a farmer row annotated with offering counts, used by
// the providers-in-area lookup.
type ProviderSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	TotalRatings   int     `json:"total_ratings"`
	ProductCount   int64   `json:"product_count"`
	ServiceCount   int64   `json:"service_count"`
}
