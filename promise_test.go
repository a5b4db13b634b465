// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hybscloud/task"
)

func TestPromise_MemoizesResultForAllSubscribers(t *testing.T) {
	p := task.NewPromise[int]()
	p.Complete(task.Success(7))

	var first, second int
	p.Task()(func(v int) { first = v }, func(error) { t.Fatal("unexpected failure") })
	p.Task()(func(v int) { second = v }, func(error) { t.Fatal("unexpected failure") })

	assert.Equal(t, 7, first)
	assert.Equal(t, 7, second)
}

func TestPromise_BroadcastsToSubscribersAddedBeforeCompletion(t *testing.T) {
	p := task.NewPromise[int]()
	var results []int
	var mu sync.Mutex
	for i := 0; i < 5; i++ {
		p.Task()(func(v int) {
			mu.Lock()
			results = append(results, v)
			mu.Unlock()
		}, func(error) {})
	}
	p.Complete(task.Success(99))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, results, 5)
	for _, v := range results {
		assert.Equal(t, 99, v)
	}
}

func TestPromise_CancelOneSubscriberDoesNotAffectAnother(t *testing.T) {
	p := task.NewPromise[int]()

	var sub1Err error
	cancel1 := p.Task()(func(int) { t.Fatal("subscriber 1 should be cancelled, not succeed") }, func(err error) { sub1Err = err })

	var sub2Val int
	p.Task()(func(v int) { sub2Val = v }, func(error) { t.Fatal("subscriber 2 should succeed") })

	cancel1()
	var cancelled *task.CancelledError
	require.ErrorAs(t, sub1Err, &cancelled)

	p.Complete(task.Success(5))
	assert.Equal(t, 5, sub2Val)
}

func TestPromise_CancelAfterCompletionIsNoop(t *testing.T) {
	p := task.NewPromise[int]()
	p.Complete(task.Success(1))

	var got int
	cancel := p.Task()(func(v int) { got = v }, func(error) { t.Fatal("unexpected failure") })
	assert.Equal(t, 1, got)
	cancel() // must not panic and must not redeliver anything
	cancel()
}

func TestPromise_CompleteOnlyTakesFirstResult(t *testing.T) {
	p := task.NewPromise[int]()
	inner := task.NewPromise[int]()
	p.Complete(inner.Task())

	inner.Complete(task.Success(1))
	inner.Complete(task.Success(2)) // dropped: inner is already closed

	var got int
	p.Task()(func(v int) { got = v }, func(error) {})
	assert.Equal(t, 1, got)
}

func TestPromise_FailurePropagates(t *testing.T) {
	sentinel := errors.New("broke")
	p := task.NewPromise[int]()
	p.Complete(task.Failure[int](sentinel))

	var got error
	p.Task()(func(int) { t.Fatal("unexpected success") }, func(err error) { got = err })
	assert.ErrorIs(t, got, sentinel)
}
