// Copyright (c) 2026, The DragKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dragkit

import "github.com/dragkit/dragkit/base/errors"

var (
	// ErrConfiguration indicates an invalid option value, such as a
	// non-positive grid cell or a malformed selector. It is reported
	// once per session and the offending constraint is disabled; the
	// interaction itself proceeds.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrResolution indicates that a bounds descriptor could not be
	// resolved, such as a selector matching nothing. The previously
	// resolved rectangle stays in effect, or movement is unconstrained
	// when there is none.
	ErrResolution = errors.New("bounds resolution failed")

	// ErrCallback indicates that a caller-supplied callback or
	// transform function panicked. The engine's own bookkeeping still
	// completes.
	ErrCallback = errors.New("callback failed")
)
