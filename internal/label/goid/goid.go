// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package goid

import (
	"runtime"
	"strconv"
)

// Kind distinguishes the namespace an ID was taken from.
//
// Goroutine ids and kernel thread ids overlap numerically, so the kind is
// part of the key.
type Kind uint8

const (
	// Goroutine identifies a goroutine by its runtime id.
	Goroutine Kind = iota

	// OSThread identifies an OS thread by its kernel thread id.
	OSThread
)

// String returns "goroutine" or "osthread".
func (k Kind) String() string {
	switch k {
	case Goroutine:
		return "goroutine"
	case OSThread:
		return "osthread"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ID is the identity of one thread of execution.
//
// ID is comparable and is used directly as a map key. Two IDs are equal
// only if both the kind and the number match.
type ID struct {
	Kind Kind
	N    int64
}

// String returns "<kind>:<n>", for example "goroutine:17".
func (id ID) String() string {
	return id.Kind.String() + ":" + strconv.FormatInt(id.N, 10)
}

// Source captures the identity of the calling thread of execution.
//
// Implementations must be safe for concurrent use and must return the same
// ID for every call made from the same thread of execution while it lives.
type Source func() ID

// Current returns the calling goroutine's identity.
//
// This is the default Source.
func Current() ID {
	return ID{Kind: Goroutine, N: goroutineID()}
}

// Thread returns the identity of the OS thread running the caller.
//
// The calling goroutine is locked to its OS thread while the id is read, so
// the result names the thread that was running the caller at the moment of
// the call. The goroutine may migrate afterwards unless the caller holds its
// own runtime.LockOSThread.
//
// On platforms without a kernel thread id API (anything other than Linux and
// Windows) Thread falls back to Current.
func Thread() ID {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	n, ok := osThreadID()
	if !ok {
		return Current()
	}
	return ID{Kind: OSThread, N: n}
}

// goroutineID extracts the current goroutine id from runtime.Stack.
//
// Stack trace format: "goroutine 123 [running]:\n..."
//
// Returns 0 if the header cannot be parsed, which does not happen with any
// released Go runtime.
func goroutineID() int64 {
	// Only the first line is needed, 64 bytes is plenty.
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return ParseGoroutineID(buf[:n])
}

// ParseGoroutineID extracts the goroutine id from a stack trace header.
//
// Expected format: "goroutine 123 [running]:..."
// Returns the numeric id (123 in this example) or 0 if the format is invalid.
//
// The parser works on bytes directly: no string conversion of the whole
// buffer and no regexp.
func ParseGoroutineID(buf []byte) int64 {
	const prefix = "goroutine "

	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}

	var gid int64
	digits := 0
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			// Usually the space before "[running]".
			break
		}
		gid = gid*10 + int64(c-'0')
		digits++
	}

	if digits == 0 {
		return 0
	}
	return gid
}
