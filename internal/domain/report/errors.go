package report

import "errors"

// ErrInvalidWindow indicates a window outside the selectable set.
var ErrInvalidWindow = errors.New("invalid report window")
