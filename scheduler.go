// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"sync"
	"time"
)

// Scheduler schedules a delayed callback and returns a canceller.
type Scheduler interface {
	Schedule(delay time.Duration, thunk func()) CancelFunc
}

type schedulerConfig struct{}

// timerScheduler backs Timeout with time.AfterFunc. No third-party
// scheduling library appears anywhere in the retrieved corpus, so this
// stays on the standard library; see DESIGN.md.
type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc.
func NewTimerScheduler(_ ...SchedulerOption) Scheduler { return timerScheduler{} }

func (timerScheduler) Schedule(delay time.Duration, thunk func()) CancelFunc {
	timer := time.AfterFunc(delay, thunk)
	return func() { timer.Stop() }
}

var (
	defaultSchedulerOnce sync.Once
	defaultSchedulerInst Scheduler
)

// DefaultScheduler is the process-wide scheduler used by Timeout.
func DefaultScheduler() Scheduler {
	defaultSchedulerOnce.Do(func() { defaultSchedulerInst = NewTimerScheduler() })
	return defaultSchedulerInst
}
