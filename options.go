// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// ExecutorOption configures NewBoundedExecutor.
type ExecutorOption func(*executorConfig)

// WithParallelism overrides the number of concurrently in-flight
// submissions a bounded executor permits. The default tracks
// GOMAXPROCS, corrected for container CPU quotas.
func WithParallelism(n int) ExecutorOption {
	return func(c *executorConfig) { c.parallelism = int64(n) }
}

// SchedulerOption configures NewTimerScheduler. Reserved for a future
// backing scheduler swap; no options are defined yet.
type SchedulerOption func(*schedulerConfig)
