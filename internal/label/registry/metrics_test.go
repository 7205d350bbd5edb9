// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kolkov/threadlabel/internal/label/goid"
)

// collect reads all metrics from reader and indexes them by name.
func collect(t *testing.T, reader sdkmetric.Reader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	byName := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			byName[m.Name] = m
		}
	}
	return byName
}

// TestMetrics verifies minted labels and registered identities are reported.
func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r := New(WithMeterProvider(mp))

	a := goid.ID{Kind: goid.Goroutine, N: 1}
	b := goid.ID{Kind: goid.Goroutine, N: 2}
	r.Label(a)
	r.Label(a)
	r.Label(b)
	r.Lookup(goid.ID{Kind: goid.Goroutine, N: 3})

	metrics := collect(t, reader)

	minted, ok := metrics["threadlabel.labels.minted"]
	if !ok {
		t.Fatal("threadlabel.labels.minted not reported")
	}
	sum, ok := minted.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("minted data = %T, want metricdata.Sum[int64]", minted.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2 {
		t.Errorf("minted data points = %+v, want single value 2", sum.DataPoints)
	}
	if !sum.IsMonotonic {
		t.Error("minted counter is not monotonic")
	}

	identities, ok := metrics["threadlabel.identities"]
	if !ok {
		t.Fatal("threadlabel.identities not reported")
	}
	gauge, ok := identities.Data.(metricdata.Gauge[int64])
	if !ok {
		t.Fatalf("identities data = %T, want metricdata.Gauge[int64]", identities.Data)
	}
	if len(gauge.DataPoints) != 1 || gauge.DataPoints[0].Value != 2 {
		t.Errorf("identities data points = %+v, want single value 2", gauge.DataPoints)
	}
}

// TestCloseStopsGauge verifies Close unregisters the identities callback and
// leaves labelling working.
func TestCloseStopsGauge(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r := New(WithMeterProvider(mp))
	r.Label(goid.ID{Kind: goid.Goroutine, N: 1})

	if _, ok := collect(t, reader)["threadlabel.identities"]; !ok {
		t.Fatal("threadlabel.identities not reported before Close")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	if m, ok := collect(t, reader)["threadlabel.identities"]; ok {
		if g, ok := m.Data.(metricdata.Gauge[int64]); ok && len(g.DataPoints) != 0 {
			t.Errorf("identities data points after Close = %+v, want none", g.DataPoints)
		}
	}

	if got := r.Label(goid.ID{Kind: goid.Goroutine, N: 2}); got != "thread-1" {
		t.Errorf("Label() after Close = %q, want thread-1", got)
	}
}
