package bppapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/webserver"
	"github.com/kenpath/agribpp/pkg/metrics"
	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

func registerCatalogRoutes() {
	webserver.ApiGET("/health", health)
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiGET("/provider/:id", getProvider)
	webserver.ApiGET("/providers/:city", providersInArea)
	webserver.ApiGET("/item/:id", getItem)
	webserver.ApiGET("/catalog/stats", catalogStats)
	webserver.ApiGET("/metrics/:name", queryMetrics)
}

func health(c echo.Context) error {
	database := "connected"
	if appc := GetApp(c); appc != nil {
		if sqlDB, err := appc.DB().DB(); err != nil || sqlDB.Ping() != nil {
			database = "disconnected"
		}
	}
	return ok(c, map[string]interface{}{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func listCategories(c echo.Context) error {
	categories, err := GetCatalog(c).GetCategories(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch categories", err.Error())
	}
	return ok(c, map[string]interface{}{"categories": categories})
}

func getProvider(c echo.Context) error {
	farmer, err := GetCatalog(c).GetProviderByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Provider not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch provider", err.Error())
	}
	return ok(c, map[string]interface{}{"provider": farmer})
}

func providersInArea(c echo.Context) error {
	providers, err := GetCatalog(c).GetProvidersInArea(c.Request().Context(), c.Param("city"), c.QueryParam("state"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch providers", err.Error())
	}
	return ok(c, map[string]interface{}{"providers": providers})
}

func getItem(c echo.Context) error {
	kind := c.QueryParam("type")
	if kind == "" {
		kind = catalog.RowTypeProduct
	}
	row, err := GetCatalog(c).GetItemByID(c.Request().Context(), c.Param("id"), kind)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Item not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch item", err.Error())
	}
	return ok(c, map[string]interface{}{"item": row})
}

// catalogStats aggregates price statistics over the available catalog.
func catalogStats(c echo.Context) error {
	rows, err := GetCatalog(c).Search(c.Request().Context(), catalog.SearchParams{})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query catalog", err.Error())
	}

	prices := make([]float64, 0, len(rows))
	products, services := 0, 0
	for _, row := range rows {
		prices = append(prices, row.Price)
		if row.Type == catalog.RowTypeService {
			services++
		} else {
			products++
		}
	}

	res := map[string]interface{}{
		"total_items": len(rows),
		"products":    products,
		"services":    services,
	}
	if len(prices) > 0 {
		mean, _ := stats.Mean(prices)
		median, _ := stats.Median(prices)
		min, _ := stats.Min(prices)
		max, _ := stats.Max(prices)
		res["price"] = map[string]float64{
			"mean":   mean,
			"median": median,
			"min":    min,
			"max":    max,
		}
	}
	return ok(c, res)
}

// queryMetrics reads the recorded gauge history, defaulting to the last hour.
func queryMetrics(c echo.Context) error {
	end := time.Now().Unix()
	start := end - 3600
	if v := cast.ToInt64(c.QueryParam("start")); v > 0 {
		start = v
	}
	if v := cast.ToInt64(c.QueryParam("end")); v > 0 {
		end = v
	}

	points, err := metrics.Select(c.Param("name"), start, end)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "METRICS_ERROR", "Failed to query metrics", err.Error())
	}
	return ok(c, map[string]interface{}{
		"name":   c.Param("name"),
		"points": points,
	})
}
