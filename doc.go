// Copyright 2021-2024 The utility Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package replace takes the value out of a slot, maps it through a function and
// writes the result back, keeping the slot valid when the function panics.
//
// The value is moved out of the slot before the function runs: the slot holds the
// zero value of T until the result is written back. A deferred guard is armed for
// that window. If the function panics (or calls runtime.Goexit), the guard writes a
// replacement into the slot and lets the panic continue unchanged, so callers further
// up still see the failure while the slot already holds a usable value:
//
//	type State struct {
//		Name string
//		Open bool
//	}
//
//	func (s *State) Toggle() {
//		replace.With(s, func(old State) State {
//			return State{Name: old.Name, Open: !old.Open}
//		}, func() State {
//			return State{Name: "closed"}
//		})
//	}
//
// Producing the replacement must not fail. A fallback that panics while a failed
// transform is being repaired terminates the process through errors.Abort, as does
// any failure of the transform passed to WithOrAbort.
//
// The caller must hold exclusive access to the slot for the whole call. Nothing here
// locks it or detects concurrent use.

package replace
