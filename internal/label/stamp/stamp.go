// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stamp formats wall-clock time for log line prefixes.
package stamp

import (
	"strconv"
	"time"
)

// layout renders the calendar part: "2024-0315:10:22:05-".
const layout = "2006-0102:15:04:05-"

// Format renders t in local time as "YYYY-MMDD:HH:MM:SS-" followed by the
// microseconds elapsed within the second, for example
// "2024-0315:10:22:05-123456".
//
// The microsecond field is zero-padded to six digits so successive stamps
// sort lexicographically in time order.
func Format(t time.Time) string {
	t = t.Local()

	buf := make([]byte, 0, len(layout)+6)
	buf = t.AppendFormat(buf, layout)

	us := t.Nanosecond() / int(time.Microsecond)
	for d := 100000; d > 1 && us < d; d /= 10 {
		buf = append(buf, '0')
	}
	return string(strconv.AppendInt(buf, int64(us), 10))
}

// Now returns Format(time.Now()).
func Now() string {
	return Format(time.Now())
}
