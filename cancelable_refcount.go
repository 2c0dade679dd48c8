// Copyright 2025 samber.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://github.com/samber/ro/blob/main/licenses/LICENSE.apache.md
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ro

import (
	"sync"
	"sync/atomic"
)

var _ Cancelable = (*RefCountCancelable)(nil)

// RefCountCancelable fires a terminal action once two independent
// conditions both hold: the "main" producer has finished (MarkMainDone was
// called) and every outstanding Acquire has been matched by a Cancel. This
// is the liveness primitive flat_map needs: the outer source may complete
// while inner subscriptions are still live, and the downstream must not be
// completed until both the outer source and every inner subscription have
// finished.
type RefCountCancelable struct {
	count    int64 // outstanding acquisitions, biased by 1 until MarkMainDone
	terminal func()
	once     sync.Once
}

// NewRefCountCancelable returns a RefCountCancelable that runs terminal once
// MarkMainDone has been called and every Acquire'd child has been canceled.
func NewRefCountCancelable(terminal func()) *RefCountCancelable {
	return &RefCountCancelable{
		count:    1, // the bias held by the main producer until MarkMainDone
		terminal: terminal,
	}
}

// Acquire registers one more outstanding child and returns a Cancelable
// that releases it. Calling Acquire after the terminal action has already
// fired yields an already-canceled handle instead of extending a scope
// that no longer exists: there is no live reference left to hold, and the
// caller's own subscribe logic is responsible for treating that handle as
// already torn down.
func (r *RefCountCancelable) Acquire() Cancelable {
	for {
		n := atomic.LoadInt64(&r.count)
		if n <= 0 {
			return AlreadyCanceled()
		}

		if atomic.CompareAndSwapInt64(&r.count, n, n+1) {
			break
		}
	}

	return NewCancelable(r.release)
}

// MarkMainDone releases the bias held on behalf of the main producer. Call
// this exactly once, when the outer/main source reaches a terminal state.
func (r *RefCountCancelable) MarkMainDone() {
	r.release()
}

func (r *RefCountCancelable) release() {
	if atomic.AddInt64(&r.count, -1) == 0 {
		r.once.Do(r.terminal)
	}
}

// Cancel forces the terminal action to run immediately, regardless of
// outstanding acquisitions. It is idempotent.
func (r *RefCountCancelable) Cancel() {
	atomic.StoreInt64(&r.count, 0)
	r.once.Do(r.terminal)
}

// IsCanceled reports whether the terminal action has already fired.
func (r *RefCountCancelable) IsCanceled() bool {
	return atomic.LoadInt64(&r.count) <= 0
}
