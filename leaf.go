// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "time"

// Success returns a task that synchronously calls s(v) from the
// starting call and returns a no-op canceller.
func Success[T any](v T) Task[T] {
	return func(s SuccessFunc[T], f FailureFunc) CancelFunc {
		s(v)
		return noopCancel
	}
}

// Failure returns a task that synchronously calls f(err).
func Failure[T any](err error) Task[T] {
	return func(s SuccessFunc[T], f FailureFunc) CancelFunc {
		f(err)
		return noopCancel
	}
}

// Effect submits body to DefaultExecutor. On normal return it calls
// s(result); if body returns a non-nil error, or body or the success
// continuation panics, it calls f exactly once with the resulting
// error. Cancellation is a best-effort no-op: the work may already be
// queued or running.
func Effect[T any](body func() (T, error)) Task[T] {
	return EffectVia[T](DefaultExecutor(), body)
}

// EffectVia is Effect submitting to an explicit executor.
func EffectVia[T any](ex Executor, body func() (T, error)) Task[T] {
	return func(s SuccessFunc[T], f FailureFunc) CancelFunc {
		ex.Submit(func() { runEffect(body, s, f) })
		return noopCancel
	}
}

// EffectOff is Effect submitting to BlockingExecutor, for bodies
// expected to block.
func EffectOff[T any](body func() (T, error)) Task[T] {
	return EffectVia[T](BlockingExecutor(), body)
}

func runEffect[T any](body func() (T, error), s SuccessFunc[T], f FailureFunc) {
	v, err, panicErr := callBody(body)
	if panicErr != nil {
		f(panicErr)
		return
	}
	if err != nil {
		f(err)
		return
	}
	deliverOrRedirect(v, s, f)
}

func callBody[T any](body func() (T, error)) (v T, err error, panicErr error) {
	defer func() {
		if r := recover(); r != nil {
			panicErr = toPanicError(r)
		}
	}()
	v, err = body()
	return
}

// deliverOrRedirect calls s(v); if s panics, the panic is caught and
// forwarded to f instead, so the evaluation-or-success-continuation
// failure reaches the outer task exactly once either way.
func deliverOrRedirect[T any](v T, s SuccessFunc[T], f FailureFunc) {
	defer func() {
		if r := recover(); r != nil {
			f(toPanicError(r))
		}
	}()
	s(v)
}

// Timeout returns a task that calls s(v) after delay via
// DefaultScheduler; its canceller cancels the scheduled callback.
// It never fails.
func Timeout[T any](delay time.Duration, v T) Task[T] {
	return TimeoutVia[T](DefaultScheduler(), delay, v)
}

// TimeoutVia is Timeout against an explicit scheduler.
func TimeoutVia[T any](sched Scheduler, delay time.Duration, v T) Task[T] {
	return func(s SuccessFunc[T], f FailureFunc) CancelFunc {
		return sched.Schedule(delay, func() { s(v) })
	}
}
