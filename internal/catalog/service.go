package catalog

import (
	"context"

	"github.com/kenpath/agribpp/internal/domain"
)

// Service is the catalog query collaborator. It returns flat, type-tagged
// rows; all envelope shaping happens elsewhere.
type Service interface {
	// Search returns available products and services matching params,
	// ordered by provider rating descending. Unset filters match all.
	Search(ctx context.Context, params SearchParams) ([]Row, error)
	// GetItemByID fetches a single row by id and type ("product" or
	// "service"). Returns gorm.ErrRecordNotFound when absent.
	GetItemByID(ctx context.Context, id, itemType string) (*Row, error)
	// GetProviderByID fetches an active farmer by id.
	GetProviderByID(ctx context.Context, id string) (*domain.Farmer, error)
	// GetProvidersInArea lists active farmers in a city (optionally
	// filtered by state) with product/service counts.
	GetProvidersInArea(ctx context.Context, city, state string) ([]ProviderSummary, error)
	// GetCategories lists active categories, optionally filtered by type.
	GetCategories(ctx context.Context, categoryType string) ([]domain.Category, error)
	// CreateOrder writes an order record as-is.
	CreateOrder(ctx context.Context, order *domain.Order) error
	// GetOrderByID fetches an order record.
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	// UpdateOrderStatus updates payment and, when non-empty, fulfillment
	// status of an order.
	UpdateOrderStatus(ctx context.Context, id, paymentStatus, fulfillmentStatus string) error
}
