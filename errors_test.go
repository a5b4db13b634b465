// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hybscloud/task"
)

func TestAggregateError_UnwrapsEveryChild(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	agg := &task.AggregateError{Errs: []error{e1, e2}}
	assert.ErrorIs(t, agg, e1)
	assert.ErrorIs(t, agg, e2)
	assert.True(t, errors.Is(agg, &task.AggregateError{}))
}

func TestPanicError_UnwrapsOriginalErrorValue(t *testing.T) {
	sentinel := errors.New("original")
	pe := &task.PanicError{Value: sentinel}
	assert.ErrorIs(t, pe, sentinel)
}

func TestPanicError_NonErrorValueHasNoUnwrapTarget(t *testing.T) {
	pe := &task.PanicError{Value: "just a string"}
	assert.Nil(t, pe.Unwrap())
	assert.Contains(t, pe.Error(), "just a string")
}

func TestIsError(t *testing.T) {
	require.False(t, task.IsError(nil))
	require.True(t, task.IsError(errors.New("x")))
}
