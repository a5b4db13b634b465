// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Do eagerly starts t against a fresh Promise and returns the
// promise's subscribable task. Every subscriber of the returned task —
// including one that subscribes after t has already terminated — sees
// the same memoized result.
func Do[T any](t Task[T]) Task[T] {
	p := NewPromise[T]()
	p.Complete(t)
	return p.Task()
}

// DoSync starts t and blocks the calling goroutine until it terminates,
// returning its success value or its error. Go always supports
// suspending a goroutine on a channel receive, so — unlike hosts
// without a thread-suspension primitive — DoSync never fails solely
// because blocking is unavailable.
func DoSync[T any](t Task[T]) (T, error) {
	type outcome struct {
		v   T
		err error
	}
	ch := make(chan outcome, 1)
	guard := &onceGuard{}
	t(
		func(v T) { guard.fire(func() { ch <- outcome{v: v} }) },
		func(err error) { guard.fire(func() { ch <- outcome{err: err} }) },
	)
	o := <-ch
	return o.v, o.err
}
