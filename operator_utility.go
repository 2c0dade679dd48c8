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

// DoOnCompleted forwards every notification from an Observable unchanged,
// then invokes cb after OnCompleted has been delivered downstream. cb is not
// guarded by any stream-error discipline: a panic it raises unwinds like any
// other downstream panic, recovered only by the nearest producer's Subscribe
// boundary. Since this operator's own subscription to source has already
// reached its terminal state by the time cb runs, that recovery reports the
// panic through OnDroppedNotification rather than delivering it as an
// OnError to destination.
func DoOnCompleted[T any](cb func()) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			sub := source.Subscribe(NewObserver(
				destination.OnNext,
				destination.OnError,
				func() {
					destination.OnCompleted()
					cb()
				},
			))

			return sub.Cancel
		})
	}
}

// DoWork invokes cb on every item emitted by an Observable before forwarding
// it downstream unchanged. A panic raised from cb is a stream error: it is
// caught, reported as an OnError, and the upstream is stopped, without ever
// reaching destination.OnNext.
func DoWork[T any](cb func(item T)) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					if err := guardStreamCall(func() { cb(value) }); err != nil {
						destination.OnError(err)
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

// Safe wraps the destination Observer of an Observable in a synchronized
// Observer, so that an operator multiplexing several producers onto one
// downstream (e.g. a hand-written flat_map that does not already serialize
// its inner streams) can be made safe to call concurrently without requiring
// the caller's own Observer to be thread-safe.
func Safe[T any](source Observable[T]) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		sub := source.Subscribe(NewSynchronizedObserver(destination))
		return sub.Cancel
	})
}
