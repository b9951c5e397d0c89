package bppapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/kenpath/agribpp/internal/beckn"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/webserver"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerSelectRoutes() {
	webserver.ApiPOST("/select", selectOrder)
}

// selectOrder computes the quote for a selected item set, acknowledges, and
// relays the on_select document.
func selectOrder(c echo.Context) error {
	var req beckn.SelectRequest
	if err := c.Bind(&req); err != nil {
		zap.L().Warn("select envelope parse failed", zap.Error(err))
		return nack(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse select request")
	}

	order := req.Message.Order
	if order == nil || len(order.Items) == 0 {
		return nack(c, http.StatusBadRequest, "INVALID_REQUEST", "No order items in select request")
	}

	quote, err := buildQuote(c.Request().Context(), GetCatalog(c), order.Items)
	if err != nil {
		zap.L().Error("quote computation failed", zap.Error(err))
		return nack(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process select request")
	}
	order.Quote = quote

	envelope := &beckn.OnSelectEnvelope{
		Context: GetBuilder(c).Normalizer.Normalize(req.Context, beckn.ActionOnSelect),
		Message: beckn.OnSelectMessage{
			Ack:   beckn.Ack{Status: beckn.AckStatusACK},
			Order: order,
		},
	}
	GetRelay(c).Dispatch(beckn.ActionOnSelect, envelope, "select")

	return c.JSON(http.StatusOK, beckn.NewAckResponse())
}

// buildQuote sums unit price times quantity per resolvable item and splits
// the total evenly across the breakup entries. The even split is a known
// simplification of the upstream network, kept as-is.
func buildQuote(ctx context.Context, cat catalog.Service, items []beckn.SelectedItem) (*beckn.Quote, error) {
	var total float64
	for _, item := range items {
		row, err := cat.GetItemByID(ctx, item.ID, itemType(item))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown items contribute nothing to the total.
			zap.L().Warn("select item not found", zap.String("id", item.ID))
			continue
		}
		if err != nil {
			return nil, err
		}
		count := 1
		if item.Quantity != nil && item.Quantity.Count > 0 {
			count = item.Quantity.Count
		}
		total += row.Price * float64(count)
	}

	breakup := make([]beckn.BreakupEntry, 0, len(items))
	share := total / float64(len(items))
	for _, item := range items {
		breakup = append(breakup, beckn.BreakupEntry{
			Item:  beckn.ItemRef{ID: item.ID},
			Title: "Item charges",
			Price: beckn.Price{Currency: "INR", Value: beckn.FormatPrice(share)},
		})
	}

	return &beckn.Quote{
		Price:   beckn.Price{Currency: "INR", Value: beckn.FormatPrice(total)},
		Breakup: breakup,
	}, nil
}

// itemType reads the type tag of a selected item, defaulting to product.
func itemType(item beckn.SelectedItem) string {
	for _, tag := range item.Tags {
		if tag.Descriptor.Code == "type" && tag.Value != "" {
			return tag.Value
		}
	}
	return catalog.RowTypeProduct
}
