// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package stats exports minisdp activity as prometheus metrics.
package stats

import (
	"errors"

	"github.com/pion/minisdp"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelReason = "reason"
	labelOp     = "op"
	labelClass  = "class"

	classOther = "other"
)

//nolint:gochecknoglobals
var errorClasses = []struct {
	err   error
	class string
}{
	{minisdp.ErrSizeExceeded, "size_exceeded"},
	{minisdp.ErrPacketTooShort, "too_short"},
	{minisdp.ErrBadMagic, "bad_magic"},
	{minisdp.ErrUnsupportedVersion, "version"},
	{minisdp.ErrMalformedSDP, "malformed_sdp"},
	{minisdp.ErrURLTooLong, "url_too_long"},
	{minisdp.ErrSignatureTooLong, "signature_too_long"},
	{minisdp.ErrAACConfigTooLong, "aac_config_too_long"},
	{minisdp.ErrInvalidMediaKind, "media_kind"},
	{minisdp.ErrInvalidSDPType, "sdp_type"},
	{minisdp.ErrTrailingData, "trailing_data"},
}

// Collector counts packets handled by a minisdp.API. Pass it to
// SettingEngine.SetObserver and register it with a prometheus.Registerer.
type Collector struct {
	packed      prometheus.Counter
	unpacked    prometheus.Counter
	dropped     *prometheus.CounterVec
	failures    *prometheus.CounterVec
	packetSizes *prometheus.HistogramVec
}

// NewCollector creates a Collector whose metrics live under namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		packed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_packed_total",
			Help:      "Number of packets encoded.",
		}),
		unpacked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_unpacked_total",
			Help:      "Number of packets decoded.",
		}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_total",
			Help:      "Number of description elements the wire format could not carry.",
		}, []string{labelReason}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of failed encodes and decodes.",
		}, []string{labelOp, labelClass}),
		packetSizes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "packet_size_bytes",
			Help:      "Size of encoded and decoded packets.",
			Buckets:   prometheus.LinearBuckets(100, 100, minisdp.MaxPacketSize/100),
		}, []string{labelOp}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.packed.Describe(ch)
	c.unpacked.Describe(ch)
	c.dropped.Describe(ch)
	c.failures.Describe(ch)
	c.packetSizes.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.packed.Collect(ch)
	c.unpacked.Collect(ch)
	c.dropped.Collect(ch)
	c.failures.Collect(ch)
	c.packetSizes.Collect(ch)
}

// OnPacked implements minisdp.Observer.
func (c *Collector) OnPacked(size int) {
	c.packed.Inc()
	c.packetSizes.WithLabelValues(minisdp.OpPack).Observe(float64(size))
}

// OnUnpacked implements minisdp.Observer.
func (c *Collector) OnUnpacked(size int) {
	c.unpacked.Inc()
	c.packetSizes.WithLabelValues(minisdp.OpUnpack).Observe(float64(size))
}

// OnDropped implements minisdp.Observer.
func (c *Collector) OnDropped(reason minisdp.DropReason, _ string) {
	c.dropped.WithLabelValues(string(reason)).Inc()
}

// OnError implements minisdp.Observer.
func (c *Collector) OnError(op string, err error) {
	c.failures.WithLabelValues(op, errorClass(err)).Inc()
}

func errorClass(err error) string {
	for _, e := range errorClasses {
		if errors.Is(err, e.err) {
			return e.class
		}
	}

	return classOther
}
