package beckn

import (
	"strings"
	"testing"

	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder() *Builder {
	return &Builder{Normalizer: fixedNormalizer()}
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func productRow(id, providerID string) catalog.Row {
	return catalog.Row{
		Type:              catalog.RowTypeProduct,
		ID:                id,
		Name:              "Organic Tomatoes",
		Description:       "Fresh organic tomatoes",
		Price:             40,
		Currency:          "INR",
		Unit:              "kg",
		Category:          "VEGETABLES",
		QuantityAvailable: intp(50),
		Organic:           boolp(true),
		ProviderID:        providerID,
		ProviderName:      "Green Valley Farm",
		ProviderCity:      "Pune",
		ProviderState:     "Maharashtra",
	}
}

func serviceRow(id, providerID string) catalog.Row {
	return catalog.Row{
		Type:          catalog.RowTypeService,
		ID:            id,
		Name:          "Tractor Plowing",
		Description:   "Field preparation service",
		Price:         1500,
		Currency:      "INR",
		Unit:          "acre",
		Category:      "FIELD_SERVICES",
		DurationHours: intp(4),
		ProviderID:    providerID,
		ProviderName:  "AgroServe",
		ProviderCity:  "Nashik",
		ProviderState: "Maharashtra",
	}
}

func TestBuildOnSearchEmptyRows(t *testing.T) {
	env := testBuilder().BuildOnSearch(Context{}, nil)

	require.NotNil(t, env)
	assert.Equal(t, ActionOnSearch, env.Context.Action)
	assert.Equal(t, AckStatusACK, env.Message.Ack.Status)
	assert.Equal(t, catalogName, env.Message.Catalog.Descriptor.Name)
	assert.NotNil(t, env.Message.Catalog.Providers)
	assert.Len(t, env.Message.Catalog.Providers, 0)
}

func TestBuildOnSearchProviderAggregation(t *testing.T) {
	rows := []catalog.Row{
		productRow("P1", "FARMER001"),
		serviceRow("S1", "FARMER002"),
		productRow("P2", "FARMER001"),
	}

	env := testBuilder().BuildOnSearch(Context{}, rows)
	providers := env.Message.Catalog.Providers
	require.Len(t, providers, 2)

	// first-seen order
	assert.Equal(t, "FARMER001", providers[0].ID)
	assert.Equal(t, "FARMER002", providers[1].ID)

	first := providers[0]
	assert.Len(t, first.Items, 2)
	require.Len(t, first.Locations, 1)
	require.Len(t, first.Fulfillments, 1)
	require.Len(t, first.Payments, 1)
	assert.Equal(t, "FARMER001_location", first.Locations[0].ID)
	assert.Equal(t, "FARMER001_fulfillment", first.Fulfillments[0].ID)
	assert.Equal(t, "FARMER001_payment", first.Payments[0].ID)
	assert.Equal(t, "IND", first.Locations[0].Country)

	// every item references its provider's synthesized records
	for _, item := range first.Items {
		assert.Equal(t, []string{"FARMER001_location"}, item.LocationIDs)
		assert.Equal(t, []string{"FARMER001_fulfillment"}, item.FulfillmentIDs)
		assert.Equal(t, []string{"FARMER001_payment"}, item.PaymentIDs)
	}
}

func TestBuildOnSearchFulfillmentTypeFromFirstRow(t *testing.T) {
	t.Run("product first", func(t *testing.T) {
		rows := []catalog.Row{productRow("P1", "F1"), serviceRow("S1", "F1")}
		env := testBuilder().BuildOnSearch(Context{}, rows)
		require.Len(t, env.Message.Catalog.Providers, 1)
		assert.Equal(t, fulfillmentDelivery, env.Message.Catalog.Providers[0].Fulfillments[0].Type)
	})

	t.Run("service first", func(t *testing.T) {
		rows := []catalog.Row{serviceRow("S1", "F1"), productRow("P1", "F1")}
		env := testBuilder().BuildOnSearch(Context{}, rows)
		require.Len(t, env.Message.Catalog.Providers, 1)
		assert.Equal(t, fulfillmentOnSite, env.Message.Catalog.Providers[0].Fulfillments[0].Type)
	})
}

func TestBuildOnSearchCategoryDedup(t *testing.T) {
	a := productRow("P1", "F1")
	b := productRow("P2", "F1")
	c := productRow("P3", "F1")
	c.Category = "SEEDS"

	env := testBuilder().BuildOnSearch(Context{}, []catalog.Row{a, b, c})
	categories := env.Message.Catalog.Providers[0].Categories
	require.Len(t, categories, 2)
	assert.Equal(t, "VEGETABLES", categories[0].Descriptor.Code)
	assert.Equal(t, "Vegetables", categories[0].Descriptor.Name)
	assert.Equal(t, "SEEDS", categories[1].Descriptor.Code)
}

func TestBuildOnSearchStaticPayment(t *testing.T) {
	env := testBuilder().BuildOnSearch(Context{}, []catalog.Row{serviceRow("S1", "F1")})
	payment := env.Message.Catalog.Providers[0].Payments[0]

	assert.Equal(t, "PRE-ORDER", payment.Type)
	assert.Equal(t, "BPP", payment.CollectedBy)
	assert.Equal(t, "NOT-PAID", payment.Status)
	require.Len(t, payment.Tags, 1)
	require.Len(t, payment.Tags[0].List, 1)
	assert.Equal(t, "upi", payment.Tags[0].List[0].Value)
}

func TestBuildItemShortDescTruncation(t *testing.T) {
	row := productRow("P1", "F1")
	row.Description = strings.Repeat("x", 150)

	item := buildItem(&row)
	assert.Equal(t, strings.Repeat("x", 100), item.Descriptor.ShortDesc)
	assert.Equal(t, row.Description, item.Descriptor.LongDesc)
}

func TestBuildItemQuantity(t *testing.T) {
	t.Run("product uses available quantity", func(t *testing.T) {
		row := productRow("P1", "F1")
		item := buildItem(&row)
		assert.Equal(t, 50, item.Quantity.Available.Count)
		assert.Equal(t, 50, item.Quantity.Maximum.Count)
	})

	t.Run("product without quantity defaults to one", func(t *testing.T) {
		row := productRow("P1", "F1")
		row.QuantityAvailable = nil
		item := buildItem(&row)
		assert.Equal(t, 1, item.Quantity.Available.Count)
	})

	t.Run("service quantity is always one", func(t *testing.T) {
		row := serviceRow("S1", "F1")
		item := buildItem(&row)
		assert.Equal(t, 1, item.Quantity.Available.Count)
		assert.Equal(t, 1, item.Quantity.Maximum.Count)
	})
}

func TestBuildItemPriceFormatting(t *testing.T) {
	row := productRow("P1", "F1")
	row.Price = 40.50

	item := buildItem(&row)
	assert.Equal(t, "40.5", item.Price.Value)
	assert.Equal(t, "40.5", item.Price.MaximumValue)
	assert.Equal(t, "INR", item.Price.Currency)
}

func TestProductMetadataTags(t *testing.T) {
	t.Run("valid specifications", func(t *testing.T) {
		row := productRow("P1", "F1")
		row.Specifications = `{"shelf_life":"7 days","grade":"A","weight_g":500}`

		group := buildMetadataTag(&row)
		require.Len(t, group.List, 5)
		assert.Equal(t, "type", group.List[0].Descriptor.Code)
		assert.Equal(t, "product", group.List[0].Value)
		assert.Equal(t, "organic", group.List[1].Descriptor.Code)
		assert.Equal(t, "yes", group.List[1].Value)

		// spec keys appended in sorted order with display names
		assert.Equal(t, "grade", group.List[2].Descriptor.Code)
		assert.Equal(t, "GRADE", group.List[2].Descriptor.Name)
		assert.Equal(t, "shelf_life", group.List[3].Descriptor.Code)
		assert.Equal(t, "SHELF LIFE", group.List[3].Descriptor.Name)
		assert.Equal(t, "weight_g", group.List[4].Descriptor.Code)
		assert.Equal(t, "500", group.List[4].Value)
	})

	t.Run("malformed specifications keep the fixed entries", func(t *testing.T) {
		row := productRow("P1", "F1")
		row.Organic = boolp(false)
		row.Specifications = `{"broken":`

		group := buildMetadataTag(&row)
		require.Len(t, group.List, 2)
		assert.Equal(t, "no", group.List[1].Value)
	})
}

func TestServiceMetadataTags(t *testing.T) {
	t.Run("with duration", func(t *testing.T) {
		row := serviceRow("S1", "F1")
		group := buildMetadataTag(&row)
		require.Len(t, group.List, 2)
		assert.Equal(t, "service", group.List[0].Value)
		assert.Equal(t, "4", group.List[1].Value)
	})

	t.Run("without duration", func(t *testing.T) {
		row := serviceRow("S1", "F1")
		row.DurationHours = nil
		group := buildMetadataTag(&row)
		assert.Equal(t, "1", group.List[1].Value)
	})
}

func TestProviderDefaults(t *testing.T) {
	row := productRow("P1", "F1")
	row.Specialization = ""
	row.ProviderPhone = ""
	row.ProviderEmail = ""

	p := newProvider(&row)
	assert.Equal(t, defaultProviderDesc, p.Descriptor.ShortDesc)
	assert.Equal(t, defaultProviderPhone, p.Fulfillments[0].Agent.Contact.Phone)
	assert.Equal(t, defaultProviderEmail, p.Fulfillments[0].Agent.Contact.Email)
	require.Len(t, p.Descriptor.Images, 1)
	assert.Equal(t, "https://api.kenpath.ai/images/providers/F1.jpg", p.Descriptor.Images[0].URL)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "1500", FormatPrice(1500))
	assert.Equal(t, "40.5", FormatPrice(40.5))
	assert.Equal(t, "0.1", FormatPrice(0.1))
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Grains & Cereals", CategoryName("GRAINS"))
	assert.Equal(t, "UNKNOWN_CODE", CategoryName("UNKNOWN_CODE"))
}
