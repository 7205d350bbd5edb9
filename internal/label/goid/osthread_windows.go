// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package goid

import "golang.org/x/sys/windows"

// osThreadID returns the Win32 thread id of the calling thread.
func osThreadID() (int64, bool) {
	return int64(windows.GetCurrentThreadId()), true
}
