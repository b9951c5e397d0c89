package bppapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"github.com/kenpath/agribpp/internal/domain"
	"github.com/kenpath/agribpp/internal/webserver"
	"github.com/kenpath/agribpp/pkg/common"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type orderPayload struct {
	ID              string      `json:"id"`
	TransactionID   string      `json:"transaction_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	FarmerID        string      `json:"farmer_id"`
	Items           interface{} `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Currency        string      `json:"currency"`
	DeliveryType    string      `json:"delivery_type"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryDate    string      `json:"delivery_date"`
	Notes           string      `json:"notes"`
}

type orderStatusPayload struct {
	PaymentStatus     string `json:"payment_status"`
	FulfillmentStatus string `json:"fulfillment_status"`
}

// Order persistence is pass-through: records go in and come out unchanged,
// no lifecycle logic.
func registerOrderRoutes() {
	webserver.ApiPOST("/orders", createOrder)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPUT("/orders/:id/status", updateOrderStatus)
}

func createOrder(c echo.Context) error {
	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}
	if payload.FarmerID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "farmer_id is required", nil)
	}

	items, err := json.MarshalToString(payload.Items)
	if err != nil {
		items = "[]"
	}

	order := domain.Order{
		ID:              common.IfEmptyStr(payload.ID, common.UUIDstr()),
		TransactionID:   payload.TransactionID,
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerEmail:   payload.CustomerEmail,
		CustomerAddress: payload.CustomerAddress,
		FarmerID:        payload.FarmerID,
		Items:           items,
		TotalAmount:     payload.TotalAmount,
		Currency:        common.IfEmptyStr(payload.Currency, "INR"),
		DeliveryType:    payload.DeliveryType,
		DeliveryAddress: payload.DeliveryAddress,
		Notes:           payload.Notes,
	}
	if strings.TrimSpace(payload.DeliveryDate) != "" {
		if t, err := dateparse.ParseAny(payload.DeliveryDate); err == nil {
			order.DeliveryDate = &t
		}
	}

	if err := GetCatalog(c).CreateOrder(c.Request().Context(), &order); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order", err.Error())
	}
	return ok(c, map[string]interface{}{"id": order.ID})
}

func getOrder(c echo.Context) error {
	order, err := GetCatalog(c).GetOrderByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch order", err.Error())
	}
	return ok(c, map[string]interface{}{"order": order})
}

func updateOrderStatus(c echo.Context) error {
	var payload orderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status update", err.Error())
	}
	if payload.PaymentStatus == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "payment_status is required", nil)
	}

	err := GetCatalog(c).UpdateOrderStatus(c.Request().Context(), c.Param("id"), payload.PaymentStatus, payload.FulfillmentStatus)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order status", err.Error())
	}
	return ok(c, map[string]interface{}{"id": c.Param("id")})
}
