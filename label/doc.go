// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label gives every thread of execution a stable, human-readable
// name for log lines.
//
// The first time a goroutine calls Current it is assigned "thread-0", the
// next new caller gets "thread-1", and so on. A caller always gets back the
// label it was first given. Labels are never reclaimed or reused.
//
// Basic usage:
//
//	log.Printf("[%s] (%s) starting", label.Current(), label.Timestamp())
//
// With logr, wrap a logger once and every line carries the label of the
// goroutine that wrote it:
//
//	logger := label.WrapLogger(stdr.New(nil), label.WithTimestamp())
//	logger.Info("starting", "port", 8080)
//	// "level"=0 "msg"="[thread-3] (2024-0315:10:22:05-123456) starting" "port"=8080
//
// Identity:
//
// By default a "thread" is a goroutine. Registries created with
// WithSource(Thread) key on the OS thread instead; use that when the
// caller wires goroutines to threads with runtime.LockOSThread and cares
// which kernel thread ran the code.
//
// Every function returns its own string value. Nothing is written to a
// shared buffer, so results may be kept and passed between goroutines
// freely.
package label
