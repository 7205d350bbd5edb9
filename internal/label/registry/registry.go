// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry assigns stable, human-readable labels to threads of
// execution.
//
// The first time a thread asks for its label it is minted as "thread-N",
// where N is the number of labels minted before it. Every later request from
// the same thread returns the same label. Entries are never removed: a
// thread that exits keeps its slot, and no label is ever handed out twice.
//
// One mutex guards the label map and the counter together, and is held for
// the whole check-or-create so two threads can never mint the same suffix.
package registry

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kolkov/threadlabel/internal/label/goid"
)

// Prefix is the fixed leading part of every label.
const Prefix = "thread-"

// instrumentationName is the meter name used for registry metrics.
const instrumentationName = "github.com/kolkov/threadlabel"

// Entry is one registered identity.
type Entry struct {
	// Identity is the thread of execution the label belongs to.
	Identity goid.ID

	// Label is the minted label, "thread-<Seq>".
	Label string

	// Seq is the label's numeric suffix, equal to its insertion rank.
	Seq uint64
}

// Registry maps thread identities to labels.
//
// A Registry is safe for concurrent use. The zero value is not usable; use
// New or Default.
type Registry struct {
	source    goid.Source
	minted    metric.Int64Counter
	gauge     metric.Registration
	closeOnce sync.Once

	mu     sync.Mutex
	labels map[goid.ID]string
	order  []goid.ID // order[i] holds the identity labelled "thread-i"
	next   uint64
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	source        goid.Source
	meterProvider metric.MeterProvider
}

// WithSource sets how the caller's identity is captured by Current.
// The default is goid.Current (goroutine identity).
func WithSource(s goid.Source) Option {
	return func(o *options) { o.source = s }
}

// WithMeterProvider sets the provider for registry metrics. The default is
// the global provider returned by otel.GetMeterProvider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	o := options{
		source: goid.Current,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.source == nil {
		o.source = goid.Current
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	r := &Registry{
		source: o.source,
		labels: make(map[goid.ID]string),
	}
	r.instrument(o.meterProvider.Meter(instrumentationName))

	return r
}

// instrument creates the registry's metric instruments. Instrument errors are
// reported to the global otel error handler and the affected instrument is
// replaced with a no-op.
func (r *Registry) instrument(m metric.Meter) {
	minted, err := m.Int64Counter(
		"threadlabel.labels.minted",
		metric.WithUnit("{label}"),
		metric.WithDescription("The number of thread labels that have been minted."),
	)
	if err != nil {
		otel.Handle(err)
		minted, _ = noop.Meter{}.Int64Counter("threadlabel.labels.minted")
	}
	r.minted = minted

	identities, err := m.Int64ObservableGauge(
		"threadlabel.identities",
		metric.WithUnit("{identity}"),
		metric.WithDescription("The number of thread identities holding a label."),
	)
	if err != nil {
		otel.Handle(err)
		return
	}

	reg, err := m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(identities, int64(r.Len()))
			return nil
		},
		identities,
	)
	if err != nil {
		otel.Handle(err)
		return
	}
	r.gauge = reg
}

// Close unregisters the registry's gauge callback from its meter provider.
//
// The callback references the registry, so a registry that is never closed
// stays reachable for as long as the meter provider does (with the global
// provider, until process exit). Labels remain usable after Close; only the
// identities gauge stops reporting. Close is idempotent. Default is never
// closed.
func (r *Registry) Close() error {
	var err error
	r.closeOnce.Do(func() {
		if r.gauge != nil {
			err = r.gauge.Unregister()
		}
	})
	return err
}

// Current returns the label of the calling thread of execution, minting one
// on first use.
//
// All calls from the same thread return the same label. Labels of distinct
// threads are pairwise distinct.
func (r *Registry) Current() string {
	return r.Label(r.source())
}

// Label returns the label for id, minting one if id has none yet.
func (r *Registry) Label(id goid.ID) string {
	r.mu.Lock()
	if l, ok := r.labels[id]; ok {
		r.mu.Unlock()
		return l
	}

	l := Prefix + strconv.FormatUint(r.next, 10)
	r.next++
	r.labels[id] = l
	r.order = append(r.order, id)
	r.mu.Unlock()

	r.minted.Add(context.Background(), 1)
	return l
}

// Lookup returns the label for id without minting.
func (r *Registry) Lookup(id goid.ID) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.labels[id]
	return l, ok
}

// Len returns the number of registered identities.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.labels)
}

// Snapshot returns a copy of every entry, ordered by Seq.
func (r *Registry) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, len(r.order))
	for i, id := range r.order {
		entries[i] = Entry{
			Identity: id,
			Label:    r.labels[id],
			Seq:      uint64(i),
		}
	}
	return entries
}

// liveGoroutines reports the ids of running goroutines and whether the list
// is complete.
var liveGoroutines = goid.Live

// Stale returns the entries whose goroutine has exited, ordered by Seq.
//
// ok is false when the goroutine dump was truncated; no verdict is given
// then because ids past the cut-off would look exited.
//
// Nothing is evicted; this is a diagnostic view of how many labels are held
// for threads that can no longer ask for them. OS thread entries are never
// reported because kernel thread liveness is not observable portably.
//
// Stale takes a full goroutine dump (see goid.Live) and must not be called
// on a hot path.
func (r *Registry) Stale() (stale []Entry, ok bool) {
	// The snapshot must precede the dump: every entry in it was alive when
	// it was minted, so it is absent from a later dump only if it exited.
	entries := r.Snapshot()

	gids, complete := liveGoroutines()
	if !complete {
		return nil, false
	}

	live := make(map[int64]struct{}, len(gids))
	for _, gid := range gids {
		live[gid] = struct{}{}
	}

	for _, e := range entries {
		if e.Identity.Kind != goid.Goroutine {
			continue
		}
		if _, ok := live[e.Identity.N]; !ok {
			stale = append(stale, e)
		}
	}

	return stale, true
}

// ParseSeq returns the numeric suffix of a label minted by a Registry.
func ParseSeq(label string) (uint64, bool) {
	digits, ok := strings.CutPrefix(label, Prefix)
	if !ok || digits == "" {
		return 0, false
	}

	// Minted labels never carry leading zeros.
	if digits[0] == '0' && len(digits) > 1 {
		return 0, false
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
