// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Log takes the given error and logs it if it is non-nil.
// It returns the error regardless, so the intended usage is:
//
//	err := errors.Log(MyFunc(...))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is
// non-nil, and returns the value. The intended usage is:
//
//	v := errors.Log1(MyFunc(...))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil, for errors that
// indicate programmer error rather than runtime conditions.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the given value, panicking if the error is non-nil.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// CallerInfo returns the name, file, and line of the function that
// called the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	return fmt.Sprintf("%s (%s:%d)", runtime.FuncForPC(pc).Name(), file, line)
}
