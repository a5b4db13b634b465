// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"fmt"
	"strings"
)

// CancelledError is delivered to a Promise subscriber that cancelled
// before the underlying task terminated. It never reaches the
// underlying task itself.
type CancelledError struct{}

func (*CancelledError) Error() string { return "task: cancelled" }

// AggregateError carries every child error from a combinator that
// failed only after all of its children failed (currently: Race with
// zero successes).
type AggregateError struct {
	Errs []error
}

func (e *AggregateError) Error() string {
	if len(e.Errs) == 0 {
		return "task: aggregate error with no competitors"
	}
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("task: %d errors occurred: %s", len(e.Errs), strings.Join(parts, "; "))
}

func (e *AggregateError) Unwrap() []error { return e.Errs }

func (e *AggregateError) Is(target error) bool {
	_, ok := target.(*AggregateError)
	return ok
}

// PanicError wraps a recovered panic value raised by a handler, an
// Effect/EffectVia/EffectOff body, or the success continuation given to
// one of those Effect tasks.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("task: panic: %v", e.Value) }

// Unwrap exposes the original error when the panic value was itself an
// error, so errors.Is/errors.As can see through it.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func toPanicError(v any) error {
	return &PanicError{Value: v}
}

// IsError reports whether err represents a failure. On this host every
// error value satisfies the standard error interface, so the check
// degenerates to a nil comparison; the predicate is kept for parity
// with hosts that distinguish error-tagged values from ordinary ones.
func IsError(err error) bool {
	return err != nil
}
