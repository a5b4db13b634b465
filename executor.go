// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/semaphore"
)

// Executor submits a unit of work for later, possibly concurrent,
// execution.
type Executor interface {
	Submit(thunk func())
}

type executorConfig struct {
	parallelism int64
}

var maxprocsOnce sync.Once

// correctedGOMAXPROCS applies go.uber.org/automaxprocs once per process
// so a bounded executor's default parallelism reflects a container's
// real CPU quota rather than the host's visible core count, then
// returns the current GOMAXPROCS value.
func correctedGOMAXPROCS() int {
	maxprocsOnce.Do(func() {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	})
	return runtime.GOMAXPROCS(0)
}

// boundedExecutor bounds the number of in-flight submissions with a
// weighted semaphore, sized by default to the corrected GOMAXPROCS —
// the default compute pool spec.md's Executor interface calls for.
type boundedExecutor struct {
	sema *semaphore.Weighted
}

// NewBoundedExecutor returns a compute-bound Executor. Default
// parallelism is the container-corrected GOMAXPROCS; override with
// WithParallelism.
func NewBoundedExecutor(opts ...ExecutorOption) Executor {
	cfg := executorConfig{parallelism: int64(correctedGOMAXPROCS())}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parallelism < 1 {
		cfg.parallelism = 1
	}
	return &boundedExecutor{sema: semaphore.NewWeighted(cfg.parallelism)}
}

func (e *boundedExecutor) Submit(thunk func()) {
	go func() {
		if err := e.sema.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer e.sema.Release(1)
		thunk()
	}()
}

// unboundedExecutor submits every thunk onto its own goroutine
// immediately; it is the "unbounded blocking" pool spec.md's Executor
// interface calls for, suitable for effect-off bodies that may block.
type unboundedExecutor struct{}

// NewUnboundedExecutor returns an Executor with no concurrency limit.
func NewUnboundedExecutor() Executor { return unboundedExecutor{} }

func (unboundedExecutor) Submit(thunk func()) { go thunk() }

var (
	defaultExecutorOnce sync.Once
	defaultExecutorInst Executor

	blockingExecutorOnce sync.Once
	blockingExecutorInst Executor
)

// DefaultExecutor is the process-wide default compute pool used by
// Effect and NewTask. Join, Race, Then and Else always take an explicit
// executor.
func DefaultExecutor() Executor {
	defaultExecutorOnce.Do(func() { defaultExecutorInst = NewBoundedExecutor() })
	return defaultExecutorInst
}

// BlockingExecutor is the process-wide unbounded pool used by
// EffectOff.
func BlockingExecutor() Executor {
	blockingExecutorOnce.Do(func() { blockingExecutorInst = NewUnboundedExecutor() })
	return blockingExecutorInst
}
