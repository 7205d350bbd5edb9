// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label_test

import (
	"fmt"

	"github.com/go-logr/logr/funcr"

	"github.com/kolkov/threadlabel/label"
)

// Example shows labels minted in order of first request.
func Example() {
	reg := label.NewRegistry()

	fmt.Println(reg.Current())
	fmt.Println(reg.Current())

	done := make(chan string)
	go func() { done <- reg.Current() }()
	fmt.Println(<-done)

	// Output:
	// thread-0
	// thread-0
	// thread-1
}

// ExampleWrapLogger shows the label prefix added to every log line.
func ExampleWrapLogger() {
	base := funcr.New(func(_, args string) { fmt.Println(args) }, funcr.Options{})
	logger := label.WrapLogger(base, label.WithRegistry(label.NewRegistry()))

	logger.Info("starting", "port", 8080)
	logger.WithValues("conn", 1).Info("accepted")

	// Output:
	// "level"=0 "msg"="[thread-0] starting" "port"=8080
	// "level"=0 "msg"="[thread-0] accepted" "conn"=1
}

// Example_snapshot lists every label handed out so far.
func Example_snapshot() {
	reg := label.NewRegistry()
	reg.Label(label.Identity{N: 40})
	reg.Label(label.Identity{N: 2})

	for _, e := range reg.Snapshot() {
		fmt.Println(e.Seq, e.Label, e.Identity)
	}

	// Output:
	// 0 thread-0 goroutine:40
	// 1 thread-1 goroutine:2
}
