//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is matched by every *InvalidOperationError
var ErrInvalidOperation = errors.New("invalid operation")

// ErrNotBound means the file has no api client to send requests
var ErrNotBound = errors.New("file is not bound to api client")

const (
	errResizeNoSize   = "provide at least width or height for resize"
	errCropFillCenter = "center is not a fill color"
)

// InvalidOperationError means the operation is rejected locally, before it is
// embedded into URL or sent to the service.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (err *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation '%s': %s", err.Op, err.Reason)
}

func (err *InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

func invalid(op, reason string) error {
	return &InvalidOperationError{Op: op, Reason: reason}
}
