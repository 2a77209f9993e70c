// File: api/vm.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Value slot boundary of the embedding VM. The bridge reads arguments from
// and writes results into numbered slots, allocates foreign-object storage
// for File and Stat entities, and builds call handles for named methods.

package api

// Handle is an opaque, VM-owned reference to a class, variable, or callable
// method. Handles obtained from the VM must be released through
// ReleaseHandle when no longer needed.
type Handle any

// VM is the embedding VM consumed by the bridge. All methods operate on the
// VM's current slot array and must only be called from the loop's control
// goroutine.
type VM interface {
	// EnsureSlots guarantees the slot array holds at least count slots.
	EnsureSlots(count int)

	SetSlotNull(slot int)
	SetSlotBool(slot int, value bool)
	SetSlotDouble(slot int, value float64)
	SetSlotString(slot int, value string)
	SetSlotBytes(slot int, value []byte)

	// SetSlotNewList replaces slot with a fresh, empty ordered sequence.
	SetSlotNewList(slot int)
	// InsertInList inserts the value at elementSlot into the list at
	// listSlot. Index -1 appends.
	InsertInList(listSlot, index, elementSlot int)

	// GetVariable looks up a top-level variable of a module and stores it
	// in slot.
	GetVariable(module, name string, slot int)

	// GetSlotHandle captures the value in slot as a reusable handle.
	GetSlotHandle(slot int) Handle
	// SetSlotHandle stores a previously captured handle back into slot.
	SetSlotHandle(slot int, h Handle)

	// SetSlotNewForeign creates a foreign object of the class held in
	// classSlot, stores it in slot, and attaches value as its payload.
	SetSlotNewForeign(slot, classSlot int, value any)
	// GetSlotForeign returns the payload of the foreign object in slot.
	GetSlotForeign(slot int) any

	// MakeCallHandle builds a callable handle for a method signature such
	// as "onData_(_)".
	MakeCallHandle(signature string) Handle
	// Call invokes a call handle against the receiver in slot 0.
	Call(h Handle) error

	// ReleaseHandle releases a handle obtained from this VM.
	ReleaseHandle(h Handle)
}
