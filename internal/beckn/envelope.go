// Package beckn implements the envelope-to-catalog transformation engine:
// context normalization, provider aggregation, item synthesis and response
// assembly for the AgriStack OAN commerce network.
package beckn

// Protocol actions emitted by this BPP.
const (
	ActionOnSearch = "on_search"
	ActionOnSelect = "on_select"
)

// Acknowledgement statuses.
const (
	AckStatusACK  = "ACK"
	AckStatusNACK = "NACK"
)

// Context is the protocol routing block of an envelope. On input every field
// is optional; NormalizeContext guarantees each output field holds a defined
// value (bap_id/bap_uri stay null when the caller omitted them).
type Context struct {
	TTL           string    `json:"ttl,omitempty"`
	Action        string    `json:"action,omitempty"`
	Timestamp     string    `json:"timestamp,omitempty"`
	MessageID     string    `json:"message_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Domain        string    `json:"domain,omitempty"`
	Version       string    `json:"version,omitempty"`
	BapID         *string   `json:"bap_id"`
	BapURI        *string   `json:"bap_uri"`
	BppID         string    `json:"bpp_id,omitempty"`
	BppURI        string    `json:"bpp_uri,omitempty"`
	Location      *GeoScope `json:"location,omitempty"`
}

// GeoScope is the country scope attached to a context.
type GeoScope struct {
	Country Country `json:"country"`
}

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Descriptor is the generic name/description block used across the schema.
type Descriptor struct {
	Name      string  `json:"name,omitempty"`
	Code      string  `json:"code,omitempty"`
	ShortDesc string  `json:"short_desc,omitempty"`
	LongDesc  string  `json:"long_desc,omitempty"`
	Images    []Image `json:"images,omitempty"`
}

type Image struct {
	URL      string `json:"url"`
	SizeType string `json:"size_type,omitempty"`
}

// --- inbound ---

// SearchRequest is the inbound search envelope.
type SearchRequest struct {
	Context Context       `json:"context"`
	Message SearchMessage `json:"message"`
}

type SearchMessage struct {
	Intent *Intent `json:"intent,omitempty"`
}

// Intent carries the search criteria of a BAP.
type Intent struct {
	Item        *IntentDescriptorRef `json:"item,omitempty"`
	Category    *IntentDescriptorRef `json:"category,omitempty"`
	Fulfillment *IntentFulfillment   `json:"fulfillment,omitempty"`
	Provider    *IntentProvider      `json:"provider,omitempty"`
}

type IntentDescriptorRef struct {
	Descriptor *Descriptor `json:"descriptor,omitempty"`
}

type IntentFulfillment struct {
	End *IntentEnd `json:"end,omitempty"`
}

type IntentEnd struct {
	Location *IntentLocation `json:"location,omitempty"`
}

type IntentLocation struct {
	City string `json:"city,omitempty"`
}

type IntentProvider struct {
	ID string `json:"id,omitempty"`
}

// SelectRequest is the inbound select envelope.
type SelectRequest struct {
	Context Context       `json:"context"`
	Message SelectMessage `json:"message"`
}

type SelectMessage struct {
	Order *Order `json:"order,omitempty"`
}

// Order is the selected item set; on_select attaches the quote.
type Order struct {
	Items []SelectedItem `json:"items"`
	Quote *Quote         `json:"quote,omitempty"`
}

type SelectedItem struct {
	ID       string     `json:"id"`
	Quantity *ItemCount `json:"quantity,omitempty"`
	Tags     []TagEntry `json:"tags,omitempty"`
}

type ItemCount struct {
	Count int `json:"count"`
}

// --- outbound ---

// Ack is the acknowledgement block of a response.
type Ack struct {
	Status string `json:"status"`
}

// Error accompanies a NACK.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse is the synchronous reply sent to the caller before any
// asynchronous callback.
type AckResponse struct {
	Message AckMessage `json:"message"`
}

type AckMessage struct {
	Ack   Ack    `json:"ack"`
	Error *Error `json:"error,omitempty"`
}

// NewAckResponse builds a plain positive acknowledgement.
func NewAckResponse() AckResponse {
	return AckResponse{Message: AckMessage{Ack: Ack{Status: AckStatusACK}}}
}

// NewNackResponse builds a rejection with a structured error body.
func NewNackResponse(code, message string) AckResponse {
	return AckResponse{Message: AckMessage{
		Ack:   Ack{Status: AckStatusNACK},
		Error: &Error{Code: code, Message: message},
	}}
}

// OnSearchEnvelope is the asynchronous catalog response.
type OnSearchEnvelope struct {
	Context Context         `json:"context"`
	Message OnSearchMessage `json:"message"`
}

type OnSearchMessage struct {
	Ack     Ack     `json:"ack"`
	Catalog Catalog `json:"catalog"`
}

type Catalog struct {
	Descriptor Descriptor  `json:"descriptor"`
	Providers  []*Provider `json:"providers"`
}

// Provider is one aggregated provider with its categories, items and the
// single synthesized location/fulfillment/payment records all of its items
// reference.
type Provider struct {
	ID           string             `json:"id"`
	Descriptor   Descriptor         `json:"descriptor"`
	Locations    []ProviderLocation `json:"locations"`
	Categories   []ProviderCategory `json:"categories"`
	Items        []Item             `json:"items"`
	Fulfillments []Fulfillment      `json:"fulfillments"`
	Payments     []Payment          `json:"payments"`
}

type ProviderLocation struct {
	ID      string `json:"id"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type ProviderCategory struct {
	ID         string     `json:"id"`
	Descriptor Descriptor `json:"descriptor"`
}

type Fulfillment struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Agent Agent  `json:"agent"`
}

type Agent struct {
	Person  Person  `json:"person"`
	Contact Contact `json:"contact"`
}

type Person struct {
	Name string `json:"name"`
}

type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Payment struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	CollectedBy string       `json:"collected_by"`
	Status      string       `json:"status"`
	Tags        []PaymentTag `json:"tags"`
}

type PaymentTag struct {
	Code string            `json:"code"`
	List []PaymentTagEntry `json:"list"`
}

type PaymentTagEntry struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Item is one catalog entry derived from a single row.
type Item struct {
	ID             string     `json:"id"`
	Descriptor     Descriptor `json:"descriptor"`
	CategoryIDs    []string   `json:"category_ids"`
	LocationIDs    []string   `json:"location_ids"`
	FulfillmentIDs []string   `json:"fulfillment_ids"`
	PaymentIDs     []string   `json:"payment_ids"`
	Price          Price      `json:"price"`
	Quantity       Quantity   `json:"quantity"`
	Tags           []TagGroup `json:"tags"`
}

type Price struct {
	Currency     string `json:"currency"`
	Value        string `json:"value"`
	MaximumValue string `json:"maximum_value,omitempty"`
}

type Quantity struct {
	Unitized  Unitized  `json:"unitized"`
	Available ItemCount `json:"available"`
	Maximum   ItemCount `json:"maximum"`
}

type Unitized struct {
	Measure Measure `json:"measure"`
}

type Measure struct {
	Unit  string `json:"unit"`
	Value string `json:"value"`
}

// TagGroup is a single metadata tag group on an item.
type TagGroup struct {
	Descriptor Descriptor `json:"descriptor"`
	List       []TagEntry `json:"list"`
}

type TagEntry struct {
	Descriptor Descriptor `json:"descriptor"`
	Value      string     `json:"value"`
}

// OnSelectEnvelope is the asynchronous quote response.
type OnSelectEnvelope struct {
	Context Context         `json:"context"`
	Message OnSelectMessage `json:"message"`
}

type OnSelectMessage struct {
	Ack   Ack    `json:"ack"`
	Order *Order `json:"order"`
}

type Quote struct {
	Price   Price          `json:"price"`
	Breakup []BreakupEntry `json:"breakup"`
}

type BreakupEntry struct {
	Item  ItemRef `json:"item"`
	Title string  `json:"title"`
	Price Price   `json:"price"`
}

type ItemRef struct {
	ID string `json:"id"`
}
