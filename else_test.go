// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hybscloud/task"
)

func TestElse_RecoversOnFailure(t *testing.T) {
	sentinel := errors.New("E")
	var got error
	task.Else[error](task.NewSyncExecutor(), task.Failure[error](sentinel), func(e error) task.Task[error] {
		return task.Success(e)
	})(
		func(v error) { got = v },
		func(err error) { t.Fatalf("unexpected failure: %v", err) },
	)
	assert.ErrorIs(t, got, sentinel)
}

func TestElse_PropagatesSuccessWithoutCallingF(t *testing.T) {
	called := false
	var got int
	task.Else[int](task.NewSyncExecutor(), task.Success(9), func(error) task.Task[int] {
		called = true
		return task.Success(0)
	})(
		func(v int) { got = v },
		func(error) { t.Fatal("unexpected failure") },
	)
	assert.False(t, called)
	assert.Equal(t, 9, got)
}

func TestElse_RecoveryFailurePropagates(t *testing.T) {
	original := errors.New("original")
	recovery := errors.New("recovery also failed")
	var got error
	task.Else[int](task.NewSyncExecutor(), task.Failure[int](original), func(error) task.Task[int] {
		return task.Failure[int](recovery)
	})(
		func(int) { t.Fatal("unexpected success") },
		func(err error) { got = err },
	)
	assert.ErrorIs(t, got, recovery)
}
