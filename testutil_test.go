// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// syncExecutor runs every submission inline, on the submitting
// goroutine. It makes event-loop ordering deterministic in tests that
// do not care about genuine concurrency.
type syncExecutor struct{}

func (syncExecutor) Submit(thunk func()) { thunk() }
