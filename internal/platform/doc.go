// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package platform holds the thin OS shims behind the asyncfs bridge:
// filesystem syscalls, portable-to-native open-flag mapping, terminal
// classification, and errno-to-text translation.
//
// Every shim reports a libuv-style status: a non-negative result on success,
// the negated errno on failure. Callers never see a Go error on this layer;
// translation to a human-readable message happens exactly once, in the
// loop's error translator.
package platform
