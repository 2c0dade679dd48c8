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

import "sync/atomic"

// Filter emits only those items from an Observable that pass a predicate
// test. Rejected items are dropped without consulting the downstream
// Observer; the upstream keeps running under the Ack the downstream
// returned for the last accepted item. A panic raised from predicate is a
// stream error: it is caught, reported as an OnError, and the upstream is
// stopped, without ever reaching destination.OnNext.
func Filter[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					var keep bool

					if err := guardStreamCall(func() { keep = predicate(value) }); err != nil {
						destination.OnError(err)
						return Stop
					}

					if keep {
						return destination.OnNext(value)
					}

					return Continue
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// Take emits only the first count items emitted by an Observable, then
// stops the upstream and completes. If count is 0, the source is never
// subscribed and the result completes immediately.
func Take[T any](count int64) func(Observable[T]) Observable[T] {
	if count < 0 {
		panic(ErrTakeCountNotPositive)
	}

	return func(source Observable[T]) Observable[T] {
		if count == 0 {
			return Empty[T]()
		}

		return NewObservable(func(destination Observer[T]) Teardown {
			var index int64

			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					var n int64

					for {
						n = atomic.LoadInt64(&index)
						if n >= count {
							return Stop
						}

						if atomic.CompareAndSwapInt64(&index, n, n+1) {
							break
						}
					}

					if n+1 >= count {
						destination.OnNext(value)
						destination.OnCompleted()

						return Stop
					}

					return destination.OnNext(value)
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// Drop suppresses the first count items emitted by an Observable, then
// forwards every item after that. If count is 0, Drop forwards every item.
func Drop[T any](count int64) func(Observable[T]) Observable[T] {
	if count < 0 {
		panic(ErrDropCountNegative)
	}

	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			var index int64

			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					for {
						n := atomic.LoadInt64(&index)
						if n >= count {
							break
						}

						if atomic.CompareAndSwapInt64(&index, n, n+1) {
							return Continue
						}
					}

					return destination.OnNext(value)
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// TakeWhile forwards items emitted by an Observable so long as predicate
// holds, then stops the upstream and completes as soon as predicate
// returns false for an item. A panic raised from predicate is a stream
// error: it is caught, reported as an OnError, and the upstream is
// stopped, without ever reaching destination.OnNext or OnCompleted.
func TakeWhile[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			var done int32

			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					if atomic.LoadInt32(&done) == 1 {
						return Stop
					}

					var keep bool

					if err := guardStreamCall(func() { keep = predicate(value) }); err != nil {
						destination.OnError(err)
						return Stop
					}

					if !keep {
						atomic.StoreInt32(&done, 1)
						destination.OnCompleted()
						return Stop
					}

					return destination.OnNext(value)
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// DropWhile suppresses items emitted by an Observable until predicate
// first returns false, then forwards that item and every item after it,
// without consulting predicate again. A panic raised from predicate, while
// still dropping, is a stream error: it is caught, reported as an
// OnError, and the upstream is stopped.
func DropWhile[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			dropping := int32(1)

			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					if atomic.LoadInt32(&dropping) == 1 {
						var skip bool

						if err := guardStreamCall(func() { skip = predicate(value) }); err != nil {
							destination.OnError(err)
							return Stop
						}

						if skip {
							return Continue
						}

						atomic.StoreInt32(&dropping, 0)
					}

					return destination.OnNext(value)
				},
				destination.OnError,
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}
