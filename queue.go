// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync/atomic"

// node is a single link in msQueue's list. A dequeued node is left for
// the garbage collector rather than recycled: reclaiming it by hand
// (e.g. via sync.Pool) would let a preempted producer's stale tail
// pointer observe a reused address as if it were still part of the
// live queue, the classic ABA hazard. Go's GC never reuses an address
// while a reference to it exists, which is exactly why a plain
// unpooled node is safe here.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// msQueue is a Michael–Scott lock-free linked queue. push is safe for
// any number of concurrent producer goroutines; pop is safe for a
// single active consumer at a time, which is the only access pattern
// the event-loop pump needs — exactly one pump goroutine is ever live
// for a given loop.
type msQueue[T any] struct {
	head atomic.Pointer[node[T]]
	tail atomic.Pointer[node[T]]
}

func newMSQueue[T any]() *msQueue[T] {
	dummy := new(node[T])
	q := &msQueue[T]{}
	q.head.Store(dummy)
	q.tail.Store(dummy)
	return q
}

func (q *msQueue[T]) push(v T) {
	n := &node[T]{value: v}
	for {
		tail := q.tail.Load()
		next := tail.next.Load()
		if tail != q.tail.Load() {
			continue
		}
		if next == nil {
			if tail.next.CompareAndSwap(nil, n) {
				q.tail.CompareAndSwap(tail, n)
				return
			}
			continue
		}
		q.tail.CompareAndSwap(tail, next)
	}
}

func (q *msQueue[T]) pop() (v T, ok bool) {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()
		if head != q.head.Load() {
			continue
		}
		if head == tail {
			if next == nil {
				return v, false
			}
			q.tail.CompareAndSwap(tail, next)
			continue
		}
		value := next.value
		if q.head.CompareAndSwap(head, next) {
			return value, true
		}
	}
}
