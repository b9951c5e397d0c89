package bppapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kenpath/agribpp/internal/beckn"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/domain"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// stubCatalog is an in-memory catalog.Service double.
type stubCatalog struct {
	rows       []catalog.Row
	items      map[string]*catalog.Row
	searchErr  error
	itemErr    error
	lastParams catalog.SearchParams
	orders     map[string]*domain.Order
}

func (s *stubCatalog) Search(_ context.Context, params catalog.SearchParams) ([]catalog.Row, error) {
	s.lastParams = params
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.rows, nil
}

func (s *stubCatalog) GetItemByID(_ context.Context, id, _ string) (*catalog.Row, error) {
	if s.itemErr != nil {
		return nil, s.itemErr
	}
	row, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (s *stubCatalog) GetProviderByID(_ context.Context, id string) (*domain.Farmer, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCatalog) GetProvidersInArea(_ context.Context, _, _ string) ([]catalog.ProviderSummary, error) {
	return nil, nil
}

func (s *stubCatalog) GetCategories(_ context.Context, _ string) ([]domain.Category, error) {
	return nil, nil
}

func (s *stubCatalog) CreateOrder(_ context.Context, order *domain.Order) error {
	if s.orders == nil {
		s.orders = map[string]*domain.Order{}
	}
	s.orders[order.ID] = order
	return nil
}

func (s *stubCatalog) GetOrderByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (s *stubCatalog) UpdateOrderStatus(_ context.Context, _, _, _ string) error {
	return nil
}

// stubSender records dispatched envelopes instead of posting them.
type stubSender struct {
	paths    []string
	payloads []interface{}
	sources  []string
}

func (s *stubSender) Dispatch(path string, payload interface{}, source string) {
	s.paths = append(s.paths, path)
	s.payloads = append(s.payloads, payload)
	s.sources = append(s.sources, source)
}

func testNormalizer() *beckn.Normalizer {
	return &beckn.Normalizer{
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) },
		NewID:  func() string { return "generated-id" },
		BppID:  beckn.DefaultBppID,
		BppURI: beckn.DefaultBppURI,
		Domain: beckn.DefaultDomain,
	}
}

// newTestContext builds an echo context with the collaborators injected the
// way the router middleware does.
func newTestContext(t *testing.T, method, target, body string, cat catalog.Service, sender *stubSender) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(catalogContextKey, cat)
	c.Set(relayContextKey, sender)
	c.Set(builderContextKey, &beckn.Builder{Normalizer: testNormalizer()})
	return c, rec
}

var _ catalog.Service = (*stubCatalog)(nil)

func ackStatusOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp beckn.AckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	return resp.Message.Ack.Status
}
