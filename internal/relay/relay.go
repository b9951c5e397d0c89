// Package relay forwards built envelopes to the counterparty endpoint.
//
// Delivery is fire-and-forget: each dispatch is a pooled background task
// that waits a fixed delay, posts once, and logs the outcome. There is no
// retry, no backpressure and no way for a failure to reach the caller who
// already received its acknowledgement.
package relay

import (
	"strings"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/kenpath/agribpp/config"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sender is the narrow interface handlers depend on.
type Sender interface {
	// Dispatch schedules payload for delivery to the callback endpoint
	// under path (e.g. "on_search"). It never blocks on the network and
	// never reports delivery errors.
	Dispatch(path string, payload interface{}, source string)
}

// Dispatcher posts envelopes through a bounded worker pool.
type Dispatcher struct {
	pool        *ants.Pool
	callbackURL string
	delay       time.Duration
	timeout     time.Duration
}

// NewDispatcher builds a dispatcher from relay configuration.
func NewDispatcher(cfg config.RelayConfig) (*Dispatcher, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		pool:        pool,
		callbackURL: strings.TrimRight(cfg.CallbackURL, "/"),
		delay:       time.Duration(cfg.DelayMs) * time.Millisecond,
		timeout:     time.Duration(cfg.TimeoutMs) * time.Millisecond,
	}, nil
}

// Dispatch submits one delivery task. When the pool is saturated the
// dispatch is dropped and logged; at-most-once is the contract.
func (d *Dispatcher) Dispatch(path string, payload interface{}, source string) {
	url := d.callbackURL + "/" + strings.TrimLeft(path, "/")
	err := d.pool.Submit(func() {
		if d.delay > 0 {
			time.Sleep(d.delay)
		}
		d.post(url, payload, source)
	})
	if err != nil {
		zap.L().Warn("relay dispatch dropped",
			zap.String("url", url),
			zap.String("source", source),
			zap.Error(err))
	}
}

func (d *Dispatcher) post(url string, payload interface{}, source string) {
	var respBody string
	err := gout.POST(url).
		SetJSON(payload).
		SetTimeout(d.timeout).
		BindBody(&respBody).
		Do()
	if err != nil {
		zap.L().Error("relay delivery failed",
			zap.String("url", url),
			zap.String("source", source),
			zap.Error(err))
		return
	}

	if ce := zap.L().Check(zap.DebugLevel, "relay delivered"); ce != nil {
		raw, _ := json.MarshalToString(payload)
		ce.Write(
			zap.String("url", url),
			zap.String("source", source),
			zap.Int("payload_bytes", len(raw)),
			zap.String("response", respBody))
	} else {
		zap.L().Info("relay delivered",
			zap.String("url", url),
			zap.String("source", source))
	}
}

// Release stops the worker pool. Queued tasks may be lost; acceptable under
// the no-delivery-guarantee contract.
func (d *Dispatcher) Release() {
	d.pool.Release()
}
