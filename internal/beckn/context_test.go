package beckn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNormalizer() *Normalizer {
	return &Normalizer{
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) },
		NewID:  func() string { return "generated-id" },
		BppID:  DefaultBppID,
		BppURI: DefaultBppURI,
		Domain: DefaultDomain,
	}
}

func TestNormalizeEmptyContext(t *testing.T) {
	n := fixedNormalizer()
	out := n.Normalize(Context{}, ActionOnSearch)

	assert.Equal(t, ActionOnSearch, out.Action)
	assert.Equal(t, DefaultTTL, out.TTL)
	assert.Equal(t, "2024-05-01T12:30:00Z", out.Timestamp)
	assert.Equal(t, "generated-id", out.TransactionID)
	assert.Equal(t, DefaultDomain, out.Domain)
	assert.Equal(t, DefaultVersion, out.Version)
	assert.Equal(t, DefaultBppID, out.BppID)
	assert.Equal(t, DefaultBppURI, out.BppURI)

	// message_id has no default and bap identity stays null
	assert.Empty(t, out.MessageID)
	assert.Nil(t, out.BapID)
	assert.Nil(t, out.BapURI)

	require.NotNil(t, out.Location)
	assert.Equal(t, DefaultCountry, out.Location.Country.Name)
	assert.Equal(t, DefaultCountry, out.Location.Country.Code)
}

func TestNormalizeKeepsCallerValues(t *testing.T) {
	n := fixedNormalizer()
	bapID := "example-bap"
	bapURI := "https://bap.example.com"
	in := Context{
		TTL:           "PT10M",
		Action:        "search",
		Timestamp:     "2020-01-01T00:00:00Z",
		MessageID:     "m1",
		TransactionID: "t1",
		Domain:        "custom:domain",
		Version:       "2.0.0",
		BapID:         &bapID,
		BapURI:        &bapURI,
		BppID:         "other-bpp",
		BppURI:        "https://other-bpp.example.com",
		Location:      &GeoScope{Country: Country{Name: "NPL", Code: "NPL"}},
	}

	out := n.Normalize(in, ActionOnSelect)

	// action and timestamp are always regenerated
	assert.Equal(t, ActionOnSelect, out.Action)
	assert.Equal(t, "2024-05-01T12:30:00Z", out.Timestamp)

	assert.Equal(t, "PT10M", out.TTL)
	assert.Equal(t, "m1", out.MessageID)
	assert.Equal(t, "t1", out.TransactionID)
	assert.Equal(t, "custom:domain", out.Domain)
	assert.Equal(t, "2.0.0", out.Version)
	assert.Equal(t, "other-bpp", out.BppID)
	assert.Equal(t, "https://other-bpp.example.com", out.BppURI)
	require.NotNil(t, out.BapID)
	assert.Equal(t, "example-bap", *out.BapID)
	require.NotNil(t, out.BapURI)
	assert.Equal(t, "https://bap.example.com", *out.BapURI)
	require.NotNil(t, out.Location)
	assert.Equal(t, "NPL", out.Location.Country.Code)
}

func TestNormalizeConfiguredIdentity(t *testing.T) {
	n := fixedNormalizer()
	n.BppID = "custom-bpp"
	n.BppURI = "https://custom-bpp.example.com"
	n.Domain = "custom:oan"

	out := n.Normalize(Context{}, ActionOnSearch)

	assert.Equal(t, "custom-bpp", out.BppID)
	assert.Equal(t, "https://custom-bpp.example.com", out.BppURI)
	assert.Equal(t, "custom:oan", out.Domain)
}

func TestNormalizeTimestampIsUTC(t *testing.T) {
	n := fixedNormalizer()
	ist := time.FixedZone("IST", 5*3600+1800)
	n.Now = func() time.Time { return time.Date(2024, 5, 1, 18, 0, 0, 0, ist) }

	out := n.Normalize(Context{}, ActionOnSearch)
	assert.Equal(t, "2024-05-01T12:30:00Z", out.Timestamp)
}
