package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/kenpath/agribpp/internal/domain"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type service struct {
	db *gorm.DB
}

// NewService creates a gorm-backed catalog service.
func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

const productSelect = `
SELECT
    'product' AS type,
    p.id, p.name, p.description, p.price, p.currency, p.unit,
    p.category, p.subcategory, p.quantity_available, p.organic,
    p.images, p.specifications::text AS specifications,
    NULL::integer AS duration_hours,
    f.id AS provider_id, f.name AS provider_name,
    f.city AS provider_city, f.state AS provider_state,
    f.rating AS provider_rating, f.specialization,
    f.phone AS provider_phone, f.email AS provider_email
FROM products p
JOIN farmers f ON p.farmer_id = f.id
WHERE p.status = 'available'`

const serviceSelect = `
SELECT
    'service' AS type,
    s.id, s.name, s.description, s.price, s.currency, s.unit,
    s.category, s.subcategory, NULL::integer AS quantity_available,
    NULL::boolean AS organic, NULL::text AS images,
    COALESCE(s.equipment_included, '') AS specifications,
    s.duration_hours,
    f.id AS provider_id, f.name AS provider_name,
    f.city AS provider_city, f.state AS provider_state,
    s.rating AS provider_rating, f.specialization,
    f.phone AS provider_phone, f.email AS provider_email
FROM services s
JOIN farmers f ON s.provider_id = f.id
WHERE s.status = 'available'`

// buildSearchQuery assembles the products UNION services query. The organic
// filter only applies to the product branch; services carry no organic flag.
func buildSearchQuery(params SearchParams) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT * FROM (")
	sb.WriteString(productSelect)

	appendCommon := func(alias string) {
		if params.Query != "" {
			like := "%" + params.Query + "%"
			sb.WriteString(" AND (" + alias + ".name ILIKE ? OR " + alias + ".description ILIKE ? OR " + alias + ".category ILIKE ?)")
			args = append(args, like, like, like)
		}
		if params.Category != "" {
			sb.WriteString(" AND " + alias + ".category = ?")
			args = append(args, params.Category)
		}
		if params.Location != "" {
			sb.WriteString(" AND f.city = ?")
			args = append(args, params.Location)
		}
		if params.ProviderID != "" {
			sb.WriteString(" AND f.id = ?")
			args = append(args, params.ProviderID)
		}
	}

	appendCommon("p")
	if params.Organic != nil {
		sb.WriteString(" AND p.organic = ?")
		args = append(args, *params.Organic)
	}

	sb.WriteString("\nUNION ALL")
	sb.WriteString(serviceSelect)
	appendCommon("s")

	sb.WriteString("\n) AS combined_results ORDER BY provider_rating DESC")
	if params.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, params.Limit)
	}
	return sb.String(), args
}

func (s *service) Search(ctx context.Context, params SearchParams) ([]Row, error) {
	query, args := buildSearchQuery(params)
	var rows []Row
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "catalog search failed")
	}
	return rows, nil
}

func (s *service) GetItemByID(ctx context.Context, id, itemType string) (*Row, error) {
	base := productSelect
	if itemType == RowTypeService {
		base = serviceSelect
	}
	query := "SELECT * FROM (" + base + ") AS item WHERE id = ?"

	var rows []Row
	if err := s.db.WithContext(ctx).Raw(query, id).Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "lookup %s %s failed", itemType, id)
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (s *service) GetProviderByID(ctx context.Context, id string) (*domain.Farmer, error) {
	var farmer domain.Farmer
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, "active").
		First(&farmer).Error
	if err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (s *service) GetProvidersInArea(ctx context.Context, city, state string) ([]ProviderSummary, error) {
	query := `
SELECT
    f.id, f.name, f.phone, f.email, f.city, f.state,
    f.specialization, f.rating, f.total_ratings,
    COUNT(DISTINCT p.id) AS product_count,
    COUNT(DISTINCT s.id) AS service_count
FROM farmers f
LEFT JOIN products p ON f.id = p.farmer_id AND p.status = 'available'
LEFT JOIN services s ON f.id = s.provider_id AND s.status = 'available'
WHERE f.status = 'active' AND f.city = ?`
	args := []interface{}{city}
	if state != "" {
		query += " AND f.state = ?"
		args = append(args, state)
	}
	query += " GROUP BY f.id ORDER BY f.rating DESC"

	var providers []ProviderSummary
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&providers).Error; err != nil {
		return nil, errors.Wrap(err, "providers in area query failed")
	}
	return providers, nil
}

func (s *service) GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error) {
	db := s.db.WithContext(ctx).Where("status = ?", "active")
	if categoryType != "" {
		db = db.Where("type = ?", categoryType)
	}
	var categories []domain.Category
	if err := db.Order("sort_order, name").Find(&categories).Error; err != nil {
		return nil, errors.Wrap(err, "categories query failed")
	}
	return categories, nil
}

func (s *service) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order.Currency == "" {
		order.Currency = "INR"
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return errors.Wrap(err, "order insert failed")
	}
	return nil
}

func (s *service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, id, paymentStatus, fulfillmentStatus string) error {
	updates := map[string]interface{}{
		"payment_status": paymentStatus,
		"updated_at":     time.Now(),
	}
	if fulfillmentStatus != "" {
		updates["fulfillment_status"] = fulfillmentStatus
	}
	err := s.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(updates).Error
	return errors.Wrap(err, "order status update failed")
}
