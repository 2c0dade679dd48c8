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

	"github.com/samber/lo"
)

// Cancelable is the cancellation substrate of the runtime. Every
// subscription, timer and intermediate link in an operator chain returns one.
// Cancel is idempotent: calling it more than once, from any number of
// goroutines, runs the teardown at most once.
type Cancelable interface {
	// Cancel runs the teardown associated with this Cancelable, if any has
	// not already run. Safe to call concurrently and more than once.
	Cancel()
	// IsCanceled reports whether Cancel has already been observed to run (or
	// to have started running) on this Cancelable.
	IsCanceled() bool
}

var _ Cancelable = (*booleanCancelable)(nil)

// NewCancelable returns a Cancelable that runs teardown exactly once, on the
// first call to Cancel. A nil teardown is legal: the Cancelable then only
// tracks cancellation state.
func NewCancelable(teardown func()) Cancelable {
	return &booleanCancelable{teardown: teardown}
}

// booleanCancelable is the plain single-teardown variant, grounded on the
// mutex+done-flag discipline of a basic subscription: at most one teardown
// call, guarded by a lock, with the flag flipped before the teardown runs so
// a teardown that re-enters Cancel does not deadlock or re-run itself.
type booleanCancelable struct {
	mu       sync.Mutex
	done     bool
	teardown func()
}

func (c *booleanCancelable) Cancel() {
	c.mu.Lock()

	if c.done {
		c.mu.Unlock()
		return
	}

	c.done = true
	teardown := c.teardown
	c.teardown = nil

	c.mu.Unlock()

	if teardown == nil {
		return
	}

	runTeardown(teardown)
}

func (c *booleanCancelable) IsCanceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.done
}

// runTeardown executes a teardown callback, converting a panic into a
// reported unhandled error instead of letting it escape into the caller of
// Cancel, which is frequently library-internal plumbing.
func runTeardown(teardown func()) {
	lo.TryCatchWithErrorValue(
		func() error {
			teardown()
			return nil
		},
		func(e any) {
			OnUnhandledError(newUnsubscriptionError(recoverValueToError(e)))
		},
	)
}

var alreadyCanceledSingleton = &alreadyCanceled{}

// AlreadyCanceled returns the sentinel Cancelable that is permanently in the
// canceled state. Cancel on it is a guaranteed no-op; it exists so that
// paths which short-circuit before producing any real resource (an already
// exhausted source, a synchronously failed subscribe) can still return a
// well-formed Cancelable instead of nil.
func AlreadyCanceled() Cancelable {
	return alreadyCanceledSingleton
}

type alreadyCanceled struct{}

func (*alreadyCanceled) Cancel()          {}
func (*alreadyCanceled) IsCanceled() bool { return true }
