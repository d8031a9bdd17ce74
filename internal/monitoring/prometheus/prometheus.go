// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	paymentEvents          *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	o, err := m.responseTime.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	o.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	g, err := m.dependencyAvailability.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) IncPaymentEvent(tags map[string]string) error {
	if m.paymentEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	c, err := m.paymentEvents.GetMetricWith(m.labels(tags))
	if err != nil {
		return err
	}

	c.Inc()

	return nil
}

func (m *Monitor) labels(tags map[string]string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		l[k] = v
	}

	return l
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Errorf("failed to register response time histogram: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	if err := prometheus.Register(m.dependencyAvailability); err != nil {
		m.logger.Errorf("failed to register dependency gauge: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.paymentEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_events_total",
			Help: "payment provider events by source and outcome",
		},
		[]string{"source", "type", "outcome", "service"},
	)

	if err := prometheus.Register(m.paymentEvents); err != nil {
		m.logger.Errorf("failed to register payment event counter: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
