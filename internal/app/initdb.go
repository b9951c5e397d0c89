package app

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/kenpath/agribpp/internal/domain"
	"go.uber.org/zap"
)

// checkCategories initializes the category taxonomy used by the catalog.
func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{ID: "CROPS", Name: "Crops & Produce", Type: "product", Description: "Fresh agricultural produce", SortOrder: 1},
		{ID: "GRAINS", Name: "Grains & Cereals", Type: "product", ParentID: "CROPS", Description: "Rice, wheat, barley, etc.", SortOrder: 2},
		{ID: "VEGETABLES", Name: "Vegetables", Type: "product", ParentID: "CROPS", Description: "Fresh vegetables", SortOrder: 3},
		{ID: "FRUITS", Name: "Fruits", Type: "product", ParentID: "CROPS", Description: "Fresh fruits", SortOrder: 4},
		{ID: "SEEDS", Name: "Seeds & Seedlings", Type: "product", Description: "Seeds for planting", SortOrder: 5},
		{ID: "TOOLS", Name: "Farm Tools", Type: "product", Description: "Agricultural tools and equipment", SortOrder: 6},
		{ID: "CONSULTATION", Name: "Consultation Services", Type: "service", Description: "Expert agricultural advice", SortOrder: 7},
		{ID: "EQUIPMENT_RENTAL", Name: "Equipment Rental", Type: "service", Description: "Rent farming equipment", SortOrder: 8},
		{ID: "FIELD_SERVICES", Name: "Field Services", Type: "service", Description: "On-field agricultural services", SortOrder: 9},
		{ID: "PROCESSING", Name: "Processing Services", Type: "service", Description: "Crop processing and packaging", SortOrder: 10},
	}

	for _, cat := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("id = ?", cat.ID).Count(&count)
		if count == 0 {
			cat.Status = "active"
			if err := a.gormDB.Create(&cat).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("id", cat.ID), zap.Error(err))
			} else {
				zap.L().Info("initialized default category", zap.String("id", cat.ID), zap.String("name", cat.Name))
			}
		}
	}
}

func parseDate(value string) *time.Time {
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return nil
	}
	return &t
}

func intPtr(v int) *int { return &v }

// SeedDemoData loads the demo farmers, products and services. Rows are
// created only when absent so the seed can run repeatedly.
func (a *Application) SeedDemoData() {
	a.checkCategories()
	a.seedFarmers()
	a.seedProducts()
	a.seedServices()
}

func (a *Application) seedFarmers() {
	farmers := []domain.Farmer{
		{
			ID: "FARMER001", Name: "Birabal Kumar",
			Phone: "+91-9876501001", Email: "birabal@kenpath.ai",
			Address: "mu po titamba", City: "Nagpur", State: "Maharashtra",
			LocationLat: 21.1466, LocationLng: 79.0889,
			Specialization: "Organic vegetables and consultation",
			Rating:         4.6, TotalRatings: 128,
			Aadhaar: "XXXXXXXX5569", Dob: "01-01-1986", Gender: "Male",
			FarmerCategory: "Big Farmer(Farmer having land >=2 Hectare)",
			CasteCategory:  "ST", TotalLandArea: "10.00",
			LocationInfo: `{"latitude":"21.1466","longitude":"79.0889","address":"mu po titamba","village_lgd_code":"531465","district_lgd_code":"468","sub_district_lgd_code":"4001","state_lgd_code":"27"}`,
		},
		{
			ID: "FARMER002", Name: "Savita Deshmukh",
			Phone: "+91-9876501002", Email: "savita@kenpath.ai",
			Address: "Keshavpura village", City: "Karnal", State: "Haryana",
			LocationLat: 29.6857, LocationLng: 76.9905,
			Specialization: "Premium basmati rice and equipment rental",
			Rating:         4.4, TotalRatings: 96,
			FarmerCategory: "Big Farmer(Farmer having land >=2 Hectare)",
			TotalLandArea:  "8.50",
		},
		{
			ID: "FARMER003", Name: "Ramesh Patil",
			Phone: "+91-9876501003", Email: "ramesh@kenpath.ai",
			Address: "Ratnagiri orchard road", City: "Ratnagiri", State: "Maharashtra",
			LocationLat: 16.9902, LocationLng: 73.3120,
			Specialization: "Alphonso mangoes and fruit processing",
			Rating:         4.8, TotalRatings: 211,
			FarmerCategory: "Small Farmer(Farmer having land <2 Hectare)",
			TotalLandArea:  "1.80",
		},
	}

	for _, f := range farmers {
		var count int64
		a.gormDB.Model(&domain.Farmer{}).Where("id = ?", f.ID).Count(&count)
		if count == 0 {
			f.Status = "active"
			if err := a.gormDB.Create(&f).Error; err != nil {
				zap.L().Error("failed to seed farmer", zap.String("id", f.ID), zap.Error(err))
			} else {
				zap.L().Info("seeded farmer", zap.String("id", f.ID), zap.String("name", f.Name))
			}
		}
	}
}

func (a *Application) seedProducts() {
	products := []domain.Product{
		{
			ID: "PROD_001", FarmerID: "FARMER001", Name: "Organic Tomatoes",
			Category: "VEGETABLES", Subcategory: "Nightshades",
			Description: "Fresh organic tomatoes, pesticide-free, grown using traditional methods",
			Price:       45.00, Unit: "kg", QuantityAvailable: intPtr(500),
			HarvestDate: parseDate("2024-02-15"), ExpiryDate: parseDate("2024-02-25"),
			Organic: true, Images: "https://example.com/images/tomatoes.jpg",
			Specifications: `{"variety":"Hybrid","color":"Red","size":"Medium"}`,
		},
		{
			ID: "PROD_002", FarmerID: "FARMER002", Name: "Basmati Rice",
			Category: "GRAINS", Subcategory: "Rice",
			Description: "Premium quality Basmati rice, aged for 2 years",
			Price:       120.00, Unit: "kg", QuantityAvailable: intPtr(1000),
			HarvestDate: parseDate("2024-01-10"), ExpiryDate: parseDate("2025-01-10"),
			Images:         "https://example.com/images/basmati.jpg",
			Specifications: `{"variety":"Pusa Basmati 1121","aging":"2 years","purity":"99%"}`,
		},
		{
			ID: "PROD_003", FarmerID: "FARMER003", Name: "Fresh Mangoes",
			Category: "FRUITS", Subcategory: "Tropical",
			Description: "Sweet Alphonso mangoes, naturally ripened",
			Price:       200.00, Unit: "dozen", QuantityAvailable: intPtr(150),
			HarvestDate: parseDate("2024-03-20"), ExpiryDate: parseDate("2024-04-05"),
			Organic: true, Images: "https://example.com/images/mangoes.jpg",
			Specifications: `{"variety":"Alphonso","grade":"Export","ripening":"Natural"}`,
		},
		{
			ID: "PROD_004", FarmerID: "FARMER001", Name: "Tomato Seedlings",
			Category: "SEEDS", Subcategory: "Vegetable Seedlings",
			Description: "Disease-resistant hybrid tomato seedlings ready for transplant",
			Price:       8.00, Unit: "piece", QuantityAvailable: intPtr(2000),
			Specifications: `{"variety":"Hybrid","age_days":"25"}`,
		},
	}

	for _, p := range products {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("id = ?", p.ID).Count(&count)
		if count == 0 {
			p.Currency = "INR"
			p.Status = "available"
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to seed product", zap.String("id", p.ID), zap.Error(err))
			} else {
				zap.L().Info("seeded product", zap.String("id", p.ID), zap.String("name", p.Name))
			}
		}
	}
}

func (a *Application) seedServices() {
	services := []domain.Service{
		{
			ID: "SERV_001", ProviderID: "FARMER001", Name: "Organic Farming Consultation",
			Category: "CONSULTATION", Subcategory: "Crop Advisory",
			Description: "Expert advice on organic farming practices, pest management, and soil health",
			Price:       500.00, Unit: "per hour", DurationHours: intPtr(2),
			CoverageArea:         "50km radius from Titamba",
			EquipmentIncluded:    "Soil testing kit, pH meter",
			Requirements:         "Farm visit access, historical crop data",
			AvailabilitySchedule: `{"days":["Mon","Wed","Fri"],"hours":"09:00-17:00"}`,
			Rating:               4.6, TotalRatings: 34,
		},
		{
			ID: "SERV_002", ProviderID: "FARMER002", Name: "Tractor with Plowing Equipment",
			Category: "EQUIPMENT_RENTAL", Subcategory: "Tractors",
			Description: "Modern tractor with plowing and tilling equipment for field preparation",
			Price:       800.00, Unit: "per day", DurationHours: intPtr(8),
			CoverageArea:         "Keshavpura district",
			EquipmentIncluded:    "Tractor, Plow, Tiller, Operator",
			Requirements:         "Fuel to be provided by customer",
			AvailabilitySchedule: `{"advance_booking":"2 days","seasons":["Kharif","Rabi"]}`,
			Rating:               4.4, TotalRatings: 67,
		},
		{
			ID: "SERV_003", ProviderID: "FARMER003", Name: "Fruit Processing & Packaging",
			Category: "PROCESSING", Subcategory: "Post-Harvest",
			Description: "Cleaning, grading, packing and cold-chain dispatch for fruit harvests",
			Price:       1200.00, Unit: "per tonne", DurationHours: intPtr(6),
			CoverageArea:      "Ratnagiri and Sindhudurg",
			EquipmentIncluded: "Grading line, crates, cold storage slot",
			Rating:            4.7, TotalRatings: 52,
		},
	}

	for _, s := range services {
		var count int64
		a.gormDB.Model(&domain.Service{}).Where("id = ?", s.ID).Count(&count)
		if count == 0 {
			s.Currency = "INR"
			s.Status = "available"
			if err := a.gormDB.Create(&s).Error; err != nil {
				zap.L().Error("failed to seed service", zap.String("id", s.ID), zap.Error(err))
			} else {
				zap.L().Info("seeded service", zap.String("id", s.ID), zap.String("name", s.Name))
			}
		}
	}
}
