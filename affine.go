// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync/atomic"

// onceGuard enforces at-most-once delivery on an engine-owned
// continuation pair. A task author may misbehave and call both of its
// continuations, or the same one twice; wrapping the delivery in a
// onceGuard ensures only the first call has any effect.
type onceGuard struct {
	fired atomic.Bool
}

// fire runs f iff this is the first call across the guard's lifetime.
// Reports whether f ran.
func (g *onceGuard) fire(f func()) bool {
	if !g.fired.CompareAndSwap(false, true) {
		return false
	}
	f()
	return true
}

// done reports whether the guard has already fired.
func (g *onceGuard) done() bool {
	return g.fired.Load()
}
