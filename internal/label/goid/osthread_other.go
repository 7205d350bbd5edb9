// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package goid

// osThreadID reports that no kernel thread id is available. Thread falls
// back to the goroutine id.
func osThreadID() (int64, bool) {
	return 0, false
}
