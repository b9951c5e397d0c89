package beckn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kenpath/agribpp/internal/catalog"
	"github.com/spf13/cast"
)

// Static marketplace text of the catalog descriptor.
const (
	catalogName      = "AgriStack OAN Products & Services Catalog"
	catalogShortDesc = "Discover fresh produce, farming equipment, and agristack services"
	catalogLongDesc  = "A comprehensive marketplace for agristack products and services connecting farmers, suppliers, and buyers across India"

	defaultProviderDesc  = "AgriStack OAN products and services"
	defaultProviderPhone = "+91-9876543210"
	defaultProviderEmail = "contact@provider.com"

	fulfillmentOnSite   = "on_site_service"
	fulfillmentDelivery = "home_delivery"

	shortDescLimit = 100
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Builder folds flat catalog rows into on_search envelopes. It is a pure
// transformation; the only non-determinism comes through the normalizer's
// injected clock and id source.
type Builder struct {
	Normalizer *Normalizer
}

// NewBuilder returns a builder with default normalization.
func NewBuilder() *Builder {
	return &Builder{Normalizer: NewNormalizer()}
}

// BuildOnSearch groups rows by provider in first-seen order and wraps them,
// together with the normalized context, into the catalog envelope.
func (b *Builder) BuildOnSearch(reqCtx Context, rows []catalog.Row) *OnSearchEnvelope {
	providerMap := make(map[string]*Provider)
	var providerOrder []string

	for i := range rows {
		row := &rows[i]
		provider, ok := providerMap[row.ProviderID]
		if !ok {
			// Provider-level records are synthesized once, from the
			// first row seen for this id. A provider whose first row
			// is a product but later rows are services keeps the
			// home_delivery fulfillment for all of them; known
			// limitation carried over from the upstream network.
			provider = newProvider(row)
			providerMap[row.ProviderID] = provider
			providerOrder = append(providerOrder, row.ProviderID)
		}

		if !hasCategory(provider, row.Category) {
			provider.Categories = append(provider.Categories, ProviderCategory{
				ID: row.Category,
				Descriptor: Descriptor{
					Code: row.Category,
					Name: CategoryName(row.Category),
				},
			})
		}

		provider.Items = append(provider.Items, buildItem(row))
	}

	providers := make([]*Provider, 0, len(providerOrder))
	for _, id := range providerOrder {
		providers = append(providers, providerMap[id])
	}

	return &OnSearchEnvelope{
		Context: b.Normalizer.Normalize(reqCtx, ActionOnSearch),
		Message: OnSearchMessage{
			Ack: Ack{Status: AckStatusACK},
			Catalog: Catalog{
				Descriptor: Descriptor{
					Name:      catalogName,
					ShortDesc: catalogShortDesc,
					LongDesc:  catalogLongDesc,
				},
				Providers: providers,
			},
		},
	}
}

func hasCategory(p *Provider, code string) bool {
	for _, c := range p.Categories {
		if c.Descriptor.Code == code {
			return true
		}
	}
	return false
}

// newProvider synthesizes the provider aggregate with its single location,
// fulfillment and payment record.
func newProvider(row *catalog.Row) *Provider {
	fulfillmentType := fulfillmentDelivery
	if row.Type == catalog.RowTypeService {
		fulfillmentType = fulfillmentOnSite
	}

	shortDesc := row.Specialization
	if shortDesc == "" {
		shortDesc = defaultProviderDesc
	}

	phone := row.ProviderPhone
	if phone == "" {
		phone = defaultProviderPhone
	}
	email := row.ProviderEmail
	if email == "" {
		email = defaultProviderEmail
	}

	return &Provider{
		ID: row.ProviderID,
		Descriptor: Descriptor{
			Name:      row.ProviderName,
			ShortDesc: shortDesc,
			Images: []Image{
				{
					URL:      fmt.Sprintf("https://api.kenpath.ai/images/providers/%s.jpg", row.ProviderID),
					SizeType: "sm",
				},
			},
		},
		Locations: []ProviderLocation{
			{
				ID:      row.ProviderID + "_location",
				City:    row.ProviderCity,
				State:   row.ProviderState,
				Country: DefaultCountry,
			},
		},
		Categories: []ProviderCategory{},
		Items:      []Item{},
		Fulfillments: []Fulfillment{
			{
				ID:   row.ProviderID + "_fulfillment",
				Type: fulfillmentType,
				Agent: Agent{
					Person:  Person{Name: row.ProviderName},
					Contact: Contact{Phone: phone, Email: email},
				},
			},
		},
		// Static template: the network settles pre-paid UPI collections
		// through the BPP regardless of row data.
		Payments: []Payment{
			{
				ID:          row.ProviderID + "_payment",
				Type:        "PRE-ORDER",
				CollectedBy: "BPP",
				Status:      "NOT-PAID",
				Tags: []PaymentTag{
					{
						Code: "SETTLEMENT_TYPE",
						List: []PaymentTagEntry{{Code: "SETTLEMENT_TYPE", Value: "upi"}},
					},
				},
			},
		},
	}
}

// buildItem converts one row into one item. Malformed per-row data degrades
// to defaults; nothing here returns an error.
func buildItem(row *catalog.Row) Item {
	var images []Image
	if row.Images != "" {
		images = []Image{{URL: row.Images}}
	} else {
		images = []Image{}
	}

	count := 1
	if row.Type == catalog.RowTypeProduct && row.QuantityAvailable != nil {
		count = *row.QuantityAvailable
	}

	price := FormatPrice(row.Price)

	return Item{
		ID: row.ID,
		Descriptor: Descriptor{
			Name:      row.Name,
			ShortDesc: truncate(row.Description, shortDescLimit),
			LongDesc:  row.Description,
			Images:    images,
		},
		CategoryIDs:    []string{row.Category},
		LocationIDs:    []string{row.ProviderID + "_location"},
		FulfillmentIDs: []string{row.ProviderID + "_fulfillment"},
		PaymentIDs:     []string{row.ProviderID + "_payment"},
		Price: Price{
			Currency:     currencyOrDefault(row.Currency),
			Value:        price,
			MaximumValue: price,
		},
		Quantity: Quantity{
			Unitized:  Unitized{Measure: Measure{Unit: row.Unit, Value: "1"}},
			Available: ItemCount{Count: count},
			Maximum:   ItemCount{Count: count},
		},
		Tags: []TagGroup{buildMetadataTag(row)},
	}
}

// buildMetadataTag emits the single type-specific tag group of an item.
func buildMetadataTag(row *catalog.Row) TagGroup {
	if row.Type == catalog.RowTypeService {
		duration := "1"
		if row.DurationHours != nil {
			duration = strconv.Itoa(*row.DurationHours)
		}
		return TagGroup{
			Descriptor: Descriptor{Code: "service-metadata", Name: "Service Metadata"},
			List: []TagEntry{
				{Descriptor: Descriptor{Code: "type", Name: "Type"}, Value: "service"},
				{Descriptor: Descriptor{Code: "duration", Name: "Duration (hours)"}, Value: duration},
			},
		}
	}

	organic := "no"
	if row.Organic != nil && *row.Organic {
		organic = "yes"
	}
	group := TagGroup{
		Descriptor: Descriptor{Code: "product-metadata", Name: "Product Metadata"},
		List: []TagEntry{
			{Descriptor: Descriptor{Code: "type", Name: "Type"}, Value: "product"},
			{Descriptor: Descriptor{Code: "organic", Name: "Organic"}, Value: organic},
		},
	}

	group.List = append(group.List, parseSpecifications(row.Specifications)...)
	return group
}

// parseSpecifications attempts to read the serialized key-value block of a
// product. A parse failure is deliberately discarded: the item keeps its two
// fixed entries and no partial data leaks in.
func parseSpecifications(raw string) []TagEntry {
	if raw == "" {
		return nil
	}
	specs := map[string]interface{}{}
	if err := json.UnmarshalFromString(raw, &specs); err != nil {
		return nil
	}

	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	// JSON maps have no order; sort for a stable tag list.
	sort.Strings(keys)

	entries := make([]TagEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, TagEntry{
			Descriptor: Descriptor{Code: key, Name: specDisplayName(key)},
			Value:      cast.ToString(specs[key]),
		})
	}
	return entries
}

// specDisplayName replaces the first underscore with a space and uppercases.
func specDisplayName(key string) string {
	return strings.ToUpper(strings.Replace(key, "_", " ", 1))
}

// truncate cuts s to at most limit runes, mid-word, no ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "INR"
	}
	return currency
}

// FormatPrice renders a price the way the wire format expects: no trailing
// zeros, no exponent.
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
