// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the asyncfs library.

package api

import "fmt"

var (
	ErrLoopClosed      = fmt.Errorf("loop is closed")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
	ErrStreamShutdown  = fmt.Errorf("stream has shut down")
)
