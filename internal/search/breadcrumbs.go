/*
 * MIT License
 *
 * Copyright (c) 2020-2026 Yomigo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import "sync/atomic"

// breadcrumbSlots is the size of the open hash used by Breadcrumbs. Power of
// two so the bucket index can be taken with a mask instead of a modulo.
const breadcrumbSlots = 1024

// Breadcrumbs is a best-effort, lock-free marker of "which worker is
// currently searching which position", used by Lazy-SMP workers to bias
// late-move reductions away from work another worker already owns. See
// spec §4.9: workers that land on a position already claimed by a sibling
// get their reduction bumped by one ply, spreading search effort across
// the tree instead of duplicating it.
type Breadcrumbs struct {
	slots [breadcrumbSlots]struct {
		key   uint64
		owner int32
	}
}

// NewBreadcrumbs returns an empty breadcrumb table shared by all workers
// in a thread pool.
func NewBreadcrumbs() *Breadcrumbs {
	return &Breadcrumbs{}
}

func (b *Breadcrumbs) index(key uint64) int {
	return int(key & (breadcrumbSlots - 1))
}

// Hold attempts to claim the slot for key on behalf of threadID. It
// returns held=true only if this call claimed the slot - the caller
// then calls Release with the same key when the node returns; a slot
// this thread already owns yields held=false, marked=false. marked is
// true if another thread already owns an equal key,
// in which case the caller should bias its own search (bump LMR) rather
// than assume ownership.
func (b *Breadcrumbs) Hold(threadID int, key uint64) (held bool, marked bool) {
	idx := b.index(key)
	slot := &b.slots[idx]
	owner := atomic.LoadInt32(&slot.owner)
	slotKey := atomic.LoadUint64(&slot.key)
	if owner != 0 && slotKey == key && int(owner) != threadID+1 {
		return false, true
	}
	if owner == 0 {
		atomic.StoreUint64(&slot.key, key)
		if atomic.CompareAndSwapInt32(&slot.owner, 0, int32(threadID+1)) {
			return true, false
		}
	}
	return false, false
}

// Release frees a slot previously claimed with Hold, but only if this
// thread still owns it (it may already have been recycled by another
// worker's collision).
func (b *Breadcrumbs) Release(threadID int, key uint64) {
	idx := b.index(key)
	slot := &b.slots[idx]
	atomic.CompareAndSwapInt32(&slot.owner, int32(threadID+1), 0)
}
