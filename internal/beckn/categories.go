package beckn

// categoryNames maps category codes to their display names. Unknown codes
// pass through unchanged.
var categoryNames = map[string]string{
	"VEGETABLES":       "Vegetables",
	"FRUITS":           "Fruits",
	"GRAINS":           "Grains & Cereals",
	"SEEDS":            "Seeds & Seedlings",
	"TOOLS":            "Farm Tools",
	"CONSULTATION":     "Consultation Services",
	"EQUIPMENT_RENTAL": "Equipment Rental",
	"FIELD_SERVICES":   "Field Services",
	"PROCESSING":       "Processing Services",
}

// CategoryName resolves a category code to its display name.
func CategoryName(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return code
}
