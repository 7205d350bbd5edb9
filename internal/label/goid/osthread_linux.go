// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package goid

import "golang.org/x/sys/unix"

// osThreadID returns the kernel thread id (gettid) of the calling thread.
func osThreadID() (int64, bool) {
	return int64(unix.Gettid()), true
}
