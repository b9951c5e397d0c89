package beckn

import (
	"time"

	"github.com/google/uuid"
)

// Context defaults applied by the normalizer.
const (
	DefaultTTL     = "PT30M"
	DefaultDomain  = "agristack:oan"
	DefaultVersion = "1.1.0"
	DefaultBppID   = "kenpath-agriculture-bpp"
	DefaultBppURI  = "https://bpp-client.kenpath.ai"
	DefaultCountry = "IND"
)

// Normalizer produces a complete output context from a possibly-partial
// input context. The clock and id source are injected so callers and tests
// control the only non-deterministic inputs of the engine.
type Normalizer struct {
	Now   func() time.Time
	NewID func() string

	BppID  string
	BppURI string
	Domain string
}

// NewNormalizer returns a normalizer with the wall clock, random UUIDs and
// the default platform identity.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Now:    time.Now,
		NewID:  uuid.NewString,
		BppID:  DefaultBppID,
		BppURI: DefaultBppURI,
		Domain: DefaultDomain,
	}
}

// Normalize fills every context field by the layered-default rule: explicit
// caller value, then system default, then a generated value. Every input
// shape is accepted; nothing errors. The action is always forced to the
// given value and the timestamp is regenerated on every call. message_id is
// the one field passed through without a default.
func (n *Normalizer) Normalize(in Context, action string) Context {
	out := Context{
		TTL:           in.TTL,
		Action:        action,
		Timestamp:     n.Now().UTC().Format(time.RFC3339),
		MessageID:     in.MessageID,
		TransactionID: in.TransactionID,
		Domain:        in.Domain,
		Version:       in.Version,
		BapID:         in.BapID,
		BapURI:        in.BapURI,
		BppID:         in.BppID,
		BppURI:        in.BppURI,
		Location:      in.Location,
	}

	if out.TTL == "" {
		out.TTL = DefaultTTL
	}
	if out.TransactionID == "" {
		out.TransactionID = n.NewID()
	}
	if out.Domain == "" {
		out.Domain = n.Domain
	}
	if out.Version == "" {
		out.Version = DefaultVersion
	}
	if out.BppID == "" {
		out.BppID = n.BppID
	}
	if out.BppURI == "" {
		out.BppURI = n.BppURI
	}
	if out.Location == nil {
		out.Location = &GeoScope{Country: Country{Name: DefaultCountry, Code: DefaultCountry}}
	}
	return out
}
