// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/kolkov/threadlabel/internal/label/goid"
	"github.com/kolkov/threadlabel/internal/label/registry"
	"github.com/kolkov/threadlabel/internal/label/stamp"
)

// Registry maps threads of execution to labels. See NewRegistry.
type Registry = registry.Registry

// Entry is one registered identity, as returned by Registry.Snapshot.
type Entry = registry.Entry

// Identity names one thread of execution.
type Identity = goid.ID

// Source captures the calling thread's Identity.
type Source = goid.Source

// Option configures a Registry.
type Option = registry.Option

// Current returns the label of the calling goroutine in the process-wide
// registry, assigning one on first use.
func Current() string {
	return registry.Default().Current()
}

// Timestamp returns the current local time as "YYYY-MMDD:HH:MM:SS-uuuuuu".
func Timestamp() string {
	return stamp.Now()
}

// Default returns the process-wide registry used by Current. It is created
// on first use.
func Default() *Registry {
	return registry.Default()
}

// NewRegistry returns an empty registry independent of Default.
func NewRegistry(opts ...Option) *Registry {
	return registry.New(opts...)
}

// Goroutine is the Source that identifies the calling goroutine.
func Goroutine() Identity {
	return goid.Current()
}

// Thread is the Source that identifies the OS thread running the caller.
func Thread() Identity {
	return goid.Thread()
}

// WithSource sets the identity source of a registry. The default is
// Goroutine.
func WithSource(s Source) Option {
	return registry.WithSource(s)
}

// WithMeterProvider sets where a registry reports its metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return registry.WithMeterProvider(mp)
}
