// Copyright 2025 The threadlabel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

// Version information for threadlabel.
const (
	// Version is the current version of the module.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the runtime state of the process-wide registry.
type Info struct {
	// Version is the module version string.
	Version string

	// Labelled is the number of identities holding a label.
	Labelled int
}

// GetInfo returns version and registry information.
//
// Example:
//
//	info := label.GetInfo()
//	fmt.Printf("threadlabel %s, %d labelled\n", info.Version, info.Labelled)
func GetInfo() Info {
	return Info{
		Version:  Version,
		Labelled: Default().Len(),
	}
}
