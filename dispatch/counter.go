// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package dispatch

import "sync/atomic"

// Counter is a lock-free uint32 shared by concurrent work items.
// The zero value is ready to use.
type Counter uint32

// Increment adds one and returns the new value.
func (c *Counter) Increment() uint32 {
	return atomic.AddUint32((*uint32)(c), 1)
}

// CompareAndSwap stores new only if the counter still holds old.
func (c *Counter) CompareAndSwap(old, new uint32) bool {
	return atomic.CompareAndSwapUint32((*uint32)(c), old, new)
}

func (c *Counter) Load() uint32 {
	return atomic.LoadUint32((*uint32)(c))
}

func (c *Counter) Store(v uint32) {
	atomic.StoreUint32((*uint32)(c), v)
}

// Diagnostics are observational counters updated by every work item.
// They have no effect on the output surface.
type Diagnostics struct {
	// Items is incremented once per work item.
	Items Counter
	// First holds 1 + the linear index (x + y*width) of the first work item to
	// finish, or 0 if none has.
	First Counter
}

func (d *Diagnostics) record(index int) {
	d.Items.Increment()
	// Only succeeds for the first item
	d.First.CompareAndSwap(0, uint32(index)+1)
}

// FirstIndex returns the linear index of the first item to finish.
func (d *Diagnostics) FirstIndex() (index int, ok bool) {
	first := d.First.Load()
	return int(first) - 1, first != 0
}

// Reset zeroes the counters. Not safe during a dispatch.
func (d *Diagnostics) Reset() {
	d.Items.Store(0)
	d.First.Store(0)
}
