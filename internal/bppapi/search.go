package bppapi

import (
	"net/http"
	"net/url"

	"github.com/kenpath/agribpp/internal/beckn"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/kenpath/agribpp/internal/webserver"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const defaultSearchLimit = 20

func registerSearchRoutes() {
	webserver.ApiPOST("/search", search)
	webserver.ApiGET("/webhook", webhookGET)
	webserver.ApiPOST("/webhook", webhookPOST)
}

// search handles the Beckn search flow: extract the intent, query the
// catalog, acknowledge immediately and relay the built on_search document
// after the configured delay.
func search(c echo.Context) error {
	var req beckn.SearchRequest
	if err := c.Bind(&req); err != nil {
		zap.L().Warn("search envelope parse failed", zap.Error(err))
		return nack(c, http.StatusBadRequest, "INVALID_REQUEST", "Failed to parse search request")
	}

	params := extractSearchParams(&req, c.QueryParams())
	zap.L().Info("search request",
		zap.String("transaction_id", req.Context.TransactionID),
		zap.Any("params", params))

	rows, err := GetCatalog(c).Search(c.Request().Context(), params)
	if err != nil {
		zap.L().Error("catalog search failed", zap.Error(err))
		return nack(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process search request")
	}
	zap.L().Info("search results", zap.Int("count", len(rows)))

	envelope := GetBuilder(c).BuildOnSearch(req.Context, rows)
	GetRelay(c).Dispatch(beckn.ActionOnSearch, envelope, "search")

	return c.JSON(http.StatusOK, beckn.NewAckResponse())
}

// extractSearchParams reads the intent block and falls back to query-string
// parameters for anything the intent does not carry.
func extractSearchParams(req *beckn.SearchRequest, query url.Values) catalog.SearchParams {
	var params catalog.SearchParams

	if intent := req.Message.Intent; intent != nil {
		if intent.Item != nil && intent.Item.Descriptor != nil {
			params.Query = intent.Item.Descriptor.Name
		}
		if intent.Category != nil && intent.Category.Descriptor != nil {
			params.Category = intent.Category.Descriptor.Code
		}
		if intent.Fulfillment != nil && intent.Fulfillment.End != nil && intent.Fulfillment.End.Location != nil {
			params.Location = intent.Fulfillment.End.Location.City
		}
		if intent.Provider != nil {
			params.ProviderID = intent.Provider.ID
		}
	}

	if params.Query == "" {
		params.Query = query.Get("query")
	}
	if params.Category == "" {
		params.Category = query.Get("category")
	}
	if params.Location == "" {
		params.Location = query.Get("location")
	}
	params.Organic = parseOrganic(query.Get("organic"))
	params.Limit = defaultSearchLimit
	if limit := cast.ToInt(query.Get("limit")); limit > 0 {
		params.Limit = limit
	}
	return params
}

// parseOrganic maps "true"/"false" to a filter value; anything else leaves
// the filter unset.
func parseOrganic(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// webhookGET runs a query-string search with a synthetic webhook context.
func webhookGET(c echo.Context) error {
	query := c.QueryParams()
	params := webhookParams(
		firstNonEmpty(query.Get("search"), query.Get("q"), query.Get("query")),
		query.Get("category"), query.Get("location"), query.Get("organic"), query.Get("limit"))

	rows, err := GetCatalog(c).Search(c.Request().Context(), params)
	if err != nil {
		zap.L().Error("webhook search failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook request", nil)
	}

	builder := GetBuilder(c)
	envelope := builder.BuildOnSearch(webhookContext(builder.Normalizer), rows)
	GetRelay(c).Dispatch(beckn.ActionOnSearch, envelope, "webhook-get")

	return c.JSON(http.StatusOK, beckn.NewAckResponse())
}

// webhookPOST accepts loose JSON bodies; fields fall back to the query
// string the same way the GET variant reads them.
func webhookPOST(c echo.Context) error {
	body := map[string]interface{}{}
	if err := c.Bind(&body); err != nil {
		zap.L().Warn("webhook body parse failed", zap.Error(err))
	}
	query := c.QueryParams()

	params := webhookParams(
		firstNonEmpty(cast.ToString(body["search"]), query.Get("search"), query.Get("q"), query.Get("query")),
		firstNonEmpty(cast.ToString(body["category"]), query.Get("category")),
		firstNonEmpty(cast.ToString(body["location"]), query.Get("location")),
		firstNonEmpty(cast.ToString(body["organic"]), query.Get("organic")),
		firstNonEmpty(cast.ToString(body["limit"]), query.Get("limit")))

	rows, err := GetCatalog(c).Search(c.Request().Context(), params)
	if err != nil {
		zap.L().Error("webhook search failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook request", nil)
	}

	builder := GetBuilder(c)
	reqCtx := webhookContext(builder.Normalizer)
	if raw, ok := body["context"]; ok {
		if parsed, perr := parseWebhookContext(raw); perr == nil {
			reqCtx = parsed
		}
	}
	envelope := builder.BuildOnSearch(reqCtx, rows)
	GetRelay(c).Dispatch(beckn.ActionOnSearch, envelope, "webhook-post")

	return c.JSON(http.StatusOK, map[string]interface{}{"received": true, "body": body})
}

// parseWebhookContext decodes a caller-supplied context block from the loose
// webhook body. Callers posting their own routing ids keep them in the
// relayed document; the synthetic context is only a fallback.
func parseWebhookContext(raw interface{}) (beckn.Context, error) {
	var ctx beckn.Context
	data, err := json.Marshal(raw)
	if err != nil {
		return ctx, err
	}
	err = json.Unmarshal(data, &ctx)
	return ctx, err
}

func webhookParams(search, category, location, organic, limit string) catalog.SearchParams {
	params := catalog.SearchParams{Limit: defaultSearchLimit}
	if l := cast.ToInt(limit); l > 0 {
		params.Limit = l
	}
	// Secondary filters only narrow an actual search term; a bare webhook
	// call stays a match-all probe.
	if search != "" {
		params.Query = search
		params.Category = category
		params.Location = location
		params.Organic = parseOrganic(organic)
	}
	return params
}

// webhookContext synthesizes the context used when no envelope arrived.
func webhookContext(n *beckn.Normalizer) beckn.Context {
	bapID := "webhook-test-bap"
	bapURI := "https://webhook-test.kenpath.ai"
	return beckn.Context{
		BapID:         &bapID,
		BapURI:        &bapURI,
		TransactionID: n.NewID(),
		MessageID:     n.NewID(),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
