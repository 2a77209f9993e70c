// File: internal/platform/flags_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !unix

package platform

import "github.com/momentics/asyncfs/api"

// MapFileFlags has no native flags to map to on unsupported platforms;
// Open rejects the call with ENOSYS before flags matter.
func MapFileFlags(flags api.FileFlags) int { return 0 }
