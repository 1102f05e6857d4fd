// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package multierror

import (
	"fmt"
	"strings"
)

// Wrap takes a slice of errors and returns a single error that encapsulates
// the underlying errors. If the slice is nil or empty it returns nil. If it
// contains a single element, that error is returned directly.
func Wrap(errs []error) error {
	return multiError(errs).AsError()
}

// multiError bundles more than one error together into a single error.
type multiError []error

// AsError returns either: nil, the only error, or the multiError instance
// itself if there are 0, 1, or more errors in the slice respectively.
func (errors multiError) AsError() error {
	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return errors
	}
}

// Error returns a string like "[e1, e2, ...]" where each eN is the Error()
// of each error in the slice.
func (errors multiError) Error() string {
	parts := make([]string, len(errors))
	for i, err := range errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// Unwrap exposes the bundled errors to errors.Is and errors.As.
func (errors multiError) Unwrap() []error {
	return errors
}
