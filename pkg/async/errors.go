package async

import "errors"

// ErrPanicked wraps the value recovered from a panicking computation.
var ErrPanicked = errors.New("async: computation panicked")
