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
	"github.com/samber/lo"

	"github.com/flowcore-go/ro/internal/xsync"
)

// Concat subscribes to each of sources in order, forwarding every value it
// emits, and only subscribes to the next one once the previous one
// completes. It completes once the last source completes; an error from
// any source is forwarded immediately and cancels the subscription. With
// zero sources, Concat behaves like Empty.
func Concat[T any](sources ...Observable[T]) Observable[T] {
	if len(sources) == 0 {
		return Empty[T]()
	}

	return NewObservable(func(destination Observer[T]) Teardown {
		destination = NewSynchronizedObserver(destination)
		composite := NewCompositeCancelable()

		var subscribeNext func(index int)

		subscribeNext = func(index int) {
			if index >= len(sources) {
				destination.OnCompleted()
				return
			}

			sub := NewSingleAssignmentCancelable()
			composite.Add(sub)

			sub.Assign(sources[index].Subscribe(NewObserver(
				destination.OnNext,
				destination.OnError,
				func() {
					sub.Cancel()
					composite.Remove(sub)
					subscribeNext(index + 1)
				},
			)))
		}

		subscribeNext(0)

		return composite.Cancel
	})
}

// Zip subscribes to obsA and obsB concurrently and emits a pair for every
// index at which both have produced a value, in the order each side
// produced it. It completes as soon as either side has completed and its
// queue of unpaired values has run dry; an error from either side is
// forwarded immediately and cancels both subscriptions.
func Zip[A, B any](obsA Observable[A], obsB Observable[B]) Observable[lo.Tuple2[A, B]] {
	return NewObservable(func(destination Observer[lo.Tuple2[A, B]]) Teardown {
		mu := xsync.NewMutexWithLock()

		var queueA []A
		var queueB []B
		var completedA, completedB, stopped bool

		composite := NewCompositeCancelable()

		markStopped := func() bool {
			mu.Lock()
			alreadyStopped := stopped
			stopped = true
			mu.Unlock()

			return alreadyStopped
		}

		stopSilently := func() {
			if !markStopped() {
				composite.Cancel()
			}
		}

		complete := func() {
			if !markStopped() {
				destination.OnCompleted()
				composite.Cancel()
			}
		}

		fail := func(err error) {
			if !markStopped() {
				destination.OnError(err)
				composite.Cancel()
			}
		}

		drain := func() {
			for {
				mu.Lock()

				if stopped || len(queueA) == 0 || len(queueB) == 0 {
					mu.Unlock()
					return
				}

				a, b := queueA[0], queueB[0]
				queueA, queueB = queueA[1:], queueB[1:]

				mu.Unlock()

				if destination.OnNext(lo.T2(a, b)) == Stop {
					stopSilently()
					return
				}

				mu.Lock()
				drained := (completedA && len(queueA) == 0) || (completedB && len(queueB) == 0)
				mu.Unlock()

				if drained {
					complete()
					return
				}
			}
		}

		subA := obsA.Subscribe(NewObserver(
			func(v A) Ack {
				mu.Lock()
				queueA = append(queueA, v)
				mu.Unlock()

				drain()

				mu.Lock()
				s := stopped
				mu.Unlock()

				if s {
					return Stop
				}

				return Continue
			},
			func(err error) { fail(err) },
			func() {
				mu.Lock()
				completedA = true
				empty := len(queueA) == 0
				mu.Unlock()

				if empty {
					complete()
				}
			},
		))
		composite.Add(subA)

		subB := obsB.Subscribe(NewObserver(
			func(v B) Ack {
				mu.Lock()
				queueB = append(queueB, v)
				mu.Unlock()

				drain()

				mu.Lock()
				s := stopped
				mu.Unlock()

				if s {
					return Stop
				}

				return Continue
			},
			func(err error) { fail(err) },
			func() {
				mu.Lock()
				completedB = true
				empty := len(queueB) == 0
				mu.Unlock()

				if empty {
					complete()
				}
			},
		))
		composite.Add(subB)

		return composite.Cancel
	})
}
