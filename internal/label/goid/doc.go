// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package goid captures the identity of the calling thread of execution.
//
// Go multiplexes goroutines over OS threads, so "the calling thread" has
// two reasonable meanings. This package supports both:
//
//   - Goroutine: the runtime goroutine id. Ids are assigned by the runtime,
//     are unique for the life of the process and are never reused.
//   - OSThread: the kernel thread id of the OS thread currently running the
//     goroutine. Kernel ids are recycled after a thread exits.
//
// The goroutine id is extracted by parsing the first line of
// runtime.Stack output ("goroutine 123 [running]:"). This works on every
// Go version and architecture at a cost of roughly one microsecond per
// call, which is acceptable because callers cache the result (see the
// registry package).
//
// Live enumerates every goroutine id currently known to the runtime. It is
// expensive (a full stack dump) and is meant for diagnostics only.
package goid
