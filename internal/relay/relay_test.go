package relay

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kenpath/agribpp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type delivery struct {
	path string
	body string
}

func TestDispatchDelivers(t *testing.T) {
	received := make(chan delivery, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivery{path: r.URL.Path, body: string(body)}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d, err := NewDispatcher(config.RelayConfig{
		CallbackURL: srv.URL,
		DelayMs:     10,
		TimeoutMs:   2000,
		Workers:     2,
	})
	require.NoError(t, err)
	defer d.Release()

	d.Dispatch("on_search", map[string]string{"hello": "world"}, "test")

	select {
	case got := <-received:
		assert.Equal(t, "/on_search", got.path)
		assert.Contains(t, got.body, `"hello":"world"`)
	case <-time.After(3 * time.Second):
		t.Fatal("delivery never arrived")
	}
}

func TestDispatchSwallowsDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	d, err := NewDispatcher(config.RelayConfig{
		CallbackURL: srv.URL,
		DelayMs:     0,
		TimeoutMs:   200,
		Workers:     1,
	})
	require.NoError(t, err)
	defer d.Release()

	// nothing to observe but the absence of a panic; failures only log
	d.Dispatch("on_select", map[string]string{"k": "v"}, "test")
	time.Sleep(500 * time.Millisecond)
}

func TestDispatchTrimsSlashes(t *testing.T) {
	received := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.URL.Path
	}))
	defer srv.Close()

	d, err := NewDispatcher(config.RelayConfig{
		CallbackURL: srv.URL + "/",
		DelayMs:     0,
		TimeoutMs:   2000,
		Workers:     1,
	})
	require.NoError(t, err)
	defer d.Release()

	d.Dispatch("/on_select", nil, "test")

	select {
	case path := <-received:
		assert.Equal(t, "/on_select", path)
	case <-time.After(3 * time.Second):
		t.Fatal("delivery never arrived")
	}
}

func TestNewDispatcherDefaultsWorkers(t *testing.T) {
	d, err := NewDispatcher(config.RelayConfig{CallbackURL: "http://localhost:1"})
	require.NoError(t, err)
	defer d.Release()
	assert.NotNil(t, d.pool)
}
