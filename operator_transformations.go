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
	"sync/atomic"
)

// Map applies project to each item emitted by an Observable and emits the
// result in its place. A panic raised from project is a stream error: it is
// caught, reported as an OnError, and the upstream is stopped, without ever
// reaching destination.OnNext. A panic raised from destination itself, once
// project has already returned, is not caught here and propagates to the
// producer.
func Map[T, R any](project func(item T) R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewObservable(func(destination Observer[R]) Teardown {
			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					var projected R

					if err := guardStreamCall(func() { projected = project(value) }); err != nil {
						destination.OnError(err)
						return Stop
					}

					return destination.OnNext(projected)
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// FlatMap transforms each item emitted by an Observable into an inner
// Observable via project, subscribes to every inner Observable as it
// arrives, and forwards their emissions to destination as they happen,
// interleaved in whatever order the inner Observables produce them.
//
// The outer subscription and every live inner subscription are tracked by
// a RefCountCancelable: the result only completes once the outer source
// has completed and every inner Observable it spawned has completed too.
// An error from the outer source or from any inner Observable is forwarded
// immediately and cancels every other live subscription. A panic raised
// from project itself is a stream error of the outer subscription: it is
// caught, reported, and stops the outer source, without ever being
// subscribed to.
func FlatMap[T, R any](project func(item T) Observable[R]) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewObservable(func(destination Observer[R]) Teardown {
			var stopped int32

			composite := NewCompositeCancelable()
			refCount := NewRefCountCancelable(destination.OnCompleted)

			fail := func(err error) {
				if atomic.CompareAndSwapInt32(&stopped, 0, 1) {
					destination.OnError(err)
					composite.Cancel()
				}
			}

			outer := source.Subscribe(NewObserver(
				func(value T) Ack {
					if atomic.LoadInt32(&stopped) == 1 {
						return Stop
					}

					var inner Observable[R]

					if err := guardStreamCall(func() { inner = project(value) }); err != nil {
						fail(err)
						return Stop
					}

					innerLease := refCount.Acquire()

					innerSub := NewSingleAssignmentCancelable()
					composite.Add(innerSub)

					innerSub.Assign(inner.Subscribe(NewObserver(
						func(v R) Ack {
							ack := destination.OnNext(v)
							if ack == Stop {
								atomic.StoreInt32(&stopped, 1)
							}

							return ack
						},
						fail,
						func() {
							innerLease.Cancel()
							innerSub.Cancel()
							composite.Remove(innerSub)
						},
					)))

					if atomic.LoadInt32(&stopped) == 1 {
						return Stop
					}

					return Continue
				},
				fail,
				refCount.MarkMainDone,
			))
			composite.Add(outer)

			return composite.Cancel
		})
	}
}
