// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

// State names the phase a bump invocation is in.
const (
	StateResolved      State = "resolved"
	StateBumpRequested State = "bump-requested"
	StateRewriting     State = "rewriting"
	StateBumped        State = "bumped"
	StateNoChange      State = "no-change"
)

// State is a string-based enum for orchestration states.
type State string

func (s State) String() string {
	return string(s)
}
