// Package metrics はPrometheus向けのカウンタをまとめる。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// result ラベルの値
const (
	ResultOK         = "ok"
	ResultNotFound   = "not_found"
	ResultBadRequest = "bad_request"
	ResultError      = "error"
)

type Metrics struct {
	registry         *prometheus.Registry
	productLookups   *prometheus.CounterVec
	ordersRegistered *prometheus.CounterVec
}

// テストで何度作っても衝突しないようにレジストリは毎回作る
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		productLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_product_lookups_total",
			Help: "Product lookups by result.",
		}, []string{"result"}),
		ordersRegistered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_orders_registered_total",
			Help: "Order registrations by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.productLookups, m.ordersRegistered)
	return m
}

func (m *Metrics) ProductLookup(result string) {
	m.productLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) OrderRegistered(result string) {
	m.ordersRegistered.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
