// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/asyncfs/api"
)

// List is the fake's ordered sequence value.
type List struct {
	Items []any
}

// Foreign is the fake's foreign object: the class it was created from plus
// the attached payload.
type Foreign struct {
	Class   any
	Payload any
}

type valueHandle struct{ value any }

type callHandle struct{ signature string }

// VM is an in-memory implementation of the api.VM slot surface. Byte slots
// are copied on write, the way a real embedding copies into its own heap,
// so recycled bridge buffers can never alias a held value.
type VM struct {
	mu        sync.Mutex
	slots     map[int]any
	variables map[string]any
	released  []api.Handle

	// OnCall observes Call invocations; slot 0 holds the receiver and
	// slot 1 the argument at that point.
	OnCall func(signature string)
}

// NewVM creates an empty VM double.
func NewVM() *VM {
	return &VM{
		slots:     make(map[int]any),
		variables: make(map[string]any),
	}
}

// RegisterVariable declares a module-level variable, typically a class
// value the bridge looks up and caches.
func (m *VM) RegisterVariable(module, name string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.variables[module+"\x00"+name] = value
}

// Slot returns the current value of a slot.
func (m *VM) Slot(i int) any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[i]
}

// ReleasedHandles returns every handle released so far.
func (m *VM) ReleasedHandles() []api.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]api.Handle, len(m.released))
	copy(out, m.released)
	return out
}

func (m *VM) EnsureSlots(count int) {}

func (m *VM) SetSlotNull(slot int) { m.set(slot, nil) }

func (m *VM) SetSlotBool(slot int, value bool) { m.set(slot, value) }

func (m *VM) SetSlotDouble(slot int, value float64) { m.set(slot, value) }

func (m *VM) SetSlotString(slot int, value string) { m.set(slot, value) }

func (m *VM) SetSlotBytes(slot int, value []byte) {
	owned := make([]byte, len(value))
	copy(owned, value)
	m.set(slot, owned)
}

func (m *VM) SetSlotNewList(slot int) { m.set(slot, &List{}) }

func (m *VM) InsertInList(listSlot, index, elementSlot int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.slots[listSlot].(*List)
	elem := m.slots[elementSlot]
	if index == -1 || index == len(list.Items) {
		list.Items = append(list.Items, elem)
		return
	}
	list.Items = append(list.Items[:index+1], list.Items[index:]...)
	list.Items[index] = elem
}

func (m *VM) GetVariable(module, name string, slot int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = m.variables[module+"\x00"+name]
}

func (m *VM) GetSlotHandle(slot int) api.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &valueHandle{value: m.slots[slot]}
}

func (m *VM) SetSlotHandle(slot int, h api.Handle) {
	m.set(slot, h.(*valueHandle).value)
}

func (m *VM) SetSlotNewForeign(slot, classSlot int, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = &Foreign{Class: m.slots[classSlot], Payload: value}
}

func (m *VM) GetSlotForeign(slot int) any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[slot].(*Foreign).Payload
}

func (m *VM) MakeCallHandle(signature string) api.Handle {
	return &callHandle{signature: signature}
}

func (m *VM) Call(h api.Handle) error {
	ch := h.(*callHandle)
	if m.OnCall != nil {
		m.OnCall(ch.signature)
	}
	return nil
}

func (m *VM) ReleaseHandle(h api.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = append(m.released, h)
}

func (m *VM) set(slot int, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
}
