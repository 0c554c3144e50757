// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package logseq

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsAPI holds Prometheus metrics for the Logseq API client.
type metricsAPI struct {
	once sync.Once

	calls     *prometheus.CounterVec
	errors    *prometheus.CounterVec
	followUps prometheus.Counter
	duration  prometheus.Histogram
}

var apiMetrics metricsAPI

func (m *metricsAPI) init() {
	m.once.Do(func() {
		m.calls = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "lsq_api_calls_total", Help: "Successful Logseq API calls by method"}, []string{"method"})
		m.errors = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "lsq_api_errors_total", Help: "Failed Logseq API calls by method"}, []string{"method"})
		m.followUps = prometheus.NewCounter(prometheus.CounterOpts{Name: "lsq_api_followup_fetches_total", Help: "Follow-up getBlock fetches issued during insert/update normalization"})

		buckets := []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{Name: "lsq_api_call_seconds", Help: "Logseq API call duration", Buckets: buckets})

		prometheus.MustRegister(m.calls, m.errors, m.followUps, m.duration)
	})
}

// record helpers - used by the client for metrics tracking
func recordAPICall(method string, d time.Duration) {
	apiMetrics.init()
	apiMetrics.calls.WithLabelValues(method).Inc()
	apiMetrics.duration.Observe(d.Seconds())
}

func recordAPIError(method string) {
	apiMetrics.init()
	apiMetrics.errors.WithLabelValues(method).Inc()
}

func recordFollowUpFetch() {
	apiMetrics.init()
	apiMetrics.followUps.Inc()
}
