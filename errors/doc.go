// Copyright 2021-2024 The utility Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package errors provides errors carrying a stacktrace and the fatal exit path used when
// a value can no longer be kept valid.
// The package is compatible with the standard library errors package: Is, As and Join are
// re-exported, and every error it creates unwraps to the errors it was built from.

package errors
