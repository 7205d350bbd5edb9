// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"github.com/go-logr/logr"

	"github.com/kolkov/threadlabel/internal/label/registry"
	"github.com/kolkov/threadlabel/internal/label/stamp"
)

// LoggerOption configures WrapLogger.
type LoggerOption func(*sink)

// WithRegistry makes the wrapped logger take labels from r instead of the
// process-wide registry.
func WithRegistry(r *Registry) LoggerOption {
	return func(s *sink) { s.registry = r }
}

// WithTimestamp adds the current Timestamp after the label.
func WithTimestamp() LoggerOption {
	return func(s *sink) { s.timestamp = true }
}

// WrapLogger returns a logger that prefixes every Info and Error message
// with the label of the goroutine doing the logging:
//
//	[thread-2] message
//	[thread-2] (2024-0315:10:22:05-123456) message   (WithTimestamp)
//
// Loggers derived with V, WithValues and WithName keep the prefix. The
// verbosity of l is preserved. Wrapping a logger without a sink (such as
// logr.Discard) returns it unchanged.
func WrapLogger(l logr.Logger, opts ...LoggerOption) logr.Logger {
	inner := l.GetSink()
	if inner == nil {
		return l
	}

	// Account for the extra frame this sink adds between the caller and the
	// wrapped sink, so caller information still points at user code.
	if cd, ok := inner.(logr.CallDepthLogSink); ok {
		inner = cd.WithCallDepth(1)
	}

	s := &sink{inner: inner}
	for _, fn := range opts {
		fn(s)
	}
	if s.registry == nil {
		s.registry = registry.Default()
	}

	return logr.New(s).V(l.GetV())
}

// sink is a logr.LogSink that decorates messages before handing them to the
// wrapped sink.
type sink struct {
	inner     logr.LogSink
	registry  *Registry
	timestamp bool
}

var (
	_ logr.LogSink          = (*sink)(nil)
	_ logr.CallDepthLogSink = (*sink)(nil)
)

// Init is a no-op: the wrapped sink was initialized by its own logger.
func (s *sink) Init(logr.RuntimeInfo) {}

func (s *sink) Enabled(level int) bool {
	return s.inner.Enabled(level)
}

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	s.inner.Info(level, s.prefix()+msg, keysAndValues...)
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	s.inner.Error(err, s.prefix()+msg, keysAndValues...)
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	return s.with(s.inner.WithValues(keysAndValues...))
}

func (s *sink) WithName(name string) logr.LogSink {
	return s.with(s.inner.WithName(name))
}

// WithCallDepth forwards to the wrapped sink when it supports call depth.
func (s *sink) WithCallDepth(depth int) logr.LogSink {
	cd, ok := s.inner.(logr.CallDepthLogSink)
	if !ok {
		return s
	}
	return s.with(cd.WithCallDepth(depth))
}

func (s *sink) with(inner logr.LogSink) *sink {
	c := *s
	c.inner = inner
	return &c
}

// prefix renders "[<label>] " or "[<label>] (<timestamp>) ".
func (s *sink) prefix() string {
	p := "[" + s.registry.Current() + "] "
	if s.timestamp {
		p += "(" + stamp.Now() + ") "
	}
	return p
}
