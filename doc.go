// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task implements a continuation-passing abstraction for
// deferred, re-runnable, possibly-asynchronous computations that yield
// exactly one result and support cooperative cancellation.
//
// # Task contract
//
// A Task[T] is a callable value: Task[T](success, failure) returns a
// CancelFunc. Invoking a task starts a fresh, independent execution; it
// must eventually call exactly one of success or failure, and never
// both. The engine — not the task author — is responsible for making
// engine-owned continuations tolerate a misbehaving author's double
// call; see onceGuard in affine.go.
//
// # Leaf tasks
//
// Success, Failure, Effect, EffectVia, EffectOff, and Timeout/TimeoutVia
// are the primitive, non-composite tasks. The composite combinators are
// built on the event-loop helper below; Promise and Do are built on a
// CAS-updated cell instead.
//
// # The event-loop helper
//
// NewTask and NewTaskVia construct a task backed by a single-writer
// serialized event loop (loop.go, queue.go): a boot function receives an
// event wrapper E[T] and wires up child subscriptions via On, returning
// a cancellation handler. Handlers obtained from the same E[T] execute
// strictly in FIFO submission order and never run concurrently with one
// another, so they may share unsynchronized local state. Join, Race,
// Then, and Else are all expressed as boot functions over this helper.
//
// # Promise and do!/do!!
//
// Promise[T] is a completable, memoized, multi-subscriber task with
// per-subscriber cancellation (promise.go). Do builds a Promise, starts
// a task against it eagerly, and returns the promise's subscribable
// task; DoSync additionally blocks the calling goroutine until a result
// is available (do.go).
//
// # Error model
//
// Failures propagate exclusively through FailureFunc. A panic inside a
// handler, an Effect body, or the success continuation given to an
// Effect task is recovered and delivered as a *PanicError; a panic in
// any other continuation is not recovered. Race failing every child delivers an
// *AggregateError. A promise subscriber that cancels before the
// underlying task terminates receives a *CancelledError (errors.go).
package task
