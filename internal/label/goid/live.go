// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goid

import "runtime"

// initialDumpSize is the first buffer size tried by Live. It holds a few
// hundred goroutines with typical stack depths.
const initialDumpSize = 64 * 1024

// maxDumpSize caps buffer growth in Live. With more goroutines than fit in
// 64MB of stack dump the result is truncated and Live reports it.
const maxDumpSize = 64 * 1024 * 1024

// Live returns the ids of all goroutines currently known to the runtime.
//
// complete is false when the dump did not fit in the largest buffer and the
// list is cut off; callers must not treat a missing id as an exited
// goroutine in that case.
//
// This uses runtime.Stack(all=true), which stops the world while the dump is
// taken. The buffer is doubled until the whole dump fits.
//
// Performance: ~1ms for 1000 goroutines. Do not call on a hot path.
func Live() (gids []int64, complete bool) {
	return liveWithin(initialDumpSize, maxDumpSize)
}

// liveWithin is Live with explicit buffer bounds.
func liveWithin(initial, limit int) ([]int64, bool) {
	buf := make([]byte, initial)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			return ParseAll(buf[:n]), true
		}
		if len(buf) >= limit {
			return ParseAll(buf[:n]), false
		}
		buf = make([]byte, 2*len(buf))
	}
}

// ParseAll extracts every goroutine id from runtime.Stack(all=true) output.
//
// Input format (example):
//
//	goroutine 1 [running]:
//	main.main()
//	    /path/to/main.go:10 +0x20
//
//	goroutine 5 [chan receive]:
//	main.worker()
//	    /path/to/main.go:20 +0x40
//
// Lines that do not start with "goroutine " are skipped, as are headers
// whose id does not parse.
func ParseAll(buf []byte) []int64 {
	var gids []int64

	for i := 0; i < len(buf); {
		end := i
		for end < len(buf) && buf[end] != '\n' {
			end++
		}

		if gid := ParseGoroutineID(buf[i:end]); gid != 0 {
			gids = append(gids, gid)
		}

		i = end + 1
	}

	return gids
}
