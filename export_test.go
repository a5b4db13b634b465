// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// NewSyncExecutor exposes syncExecutor to the black-box test package.
// It runs every submission inline, on the submitting goroutine, which
// makes event-loop ordering deterministic in tests that do not care
// about genuine concurrency.
func NewSyncExecutor() Executor { return syncExecutor{} }
