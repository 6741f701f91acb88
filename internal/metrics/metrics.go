// Copyright (C) 2026 tinycbor contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package metrics exposes Prometheus counters for the cborpack and
// cbordump command-line tools: items decoded by major type, decode
// errors by stage, and bytes produced.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cbor_items_decoded_total",
		Help: "Total CBOR items decoded, by major type.",
	}, []string{"major"})

	DecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cbor_decode_errors_total",
		Help: "Total decode errors, by stage.",
	}, []string{"stage"})

	BytesProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cbor_bytes_produced_total",
		Help: "Total bytes written to output streams.",
	})

	BuffersPacked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cbor_buffers_packed_total",
		Help: "Total item buffers packed by cborpack.",
	})
)

// Error stage label constants, to bound cardinality.
const (
	StageHead    = "head"
	StageTyped   = "typed"
	StageWalk    = "walk"
	StageDigest  = "digest"
	StageArchive = "archive"
)

// IncDecoded records one decoded item of the given major type name.
func IncDecoded(major string) {
	ItemsDecoded.WithLabelValues(major).Inc()
}

// IncError records one decode error at the given stage.
func IncError(stage string) {
	DecodeErrors.WithLabelValues(stage).Inc()
}

// AddBytes records n bytes written to an output stream.
func AddBytes(n int) {
	BytesProduced.Add(float64(n))
}

// Serve starts an HTTP server exposing /metrics on addr and returns
// it; the caller is responsible for shutting it down.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
