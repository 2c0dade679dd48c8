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

// FoldLeft applies accumulator over every item emitted by an Observable,
// starting from seed, and emits exactly one value, the final accumulated
// result, when the source completes. If the source is empty, seed itself
// is emitted unchanged. A panic raised from accumulator is a stream error:
// it is caught, reported as an OnError, and the upstream is stopped.
func FoldLeft[T, R any](accumulator func(agg R, item T) R, seed R) func(Observable[T]) Observable[R] {
	return func(source Observable[T]) Observable[R] {
		return NewObservable(func(destination Observer[R]) Teardown {
			agg := seed

			sub := source.Subscribe(NewObserver(
				func(value T) Ack {
					if err := guardStreamCall(func() { agg = accumulator(agg, value) }); err != nil {
						destination.OnError(err)
						return Stop
					}

					return Continue
				},
				destination.OnError,
				func() {
					if destination.OnNext(agg) == Continue {
						destination.OnCompleted()
					}
				},
			))

			return sub.Cancel
		})
	}
}

// Count emits the number of items emitted by an Observable, once the
// source completes.
func Count[T any]() func(Observable[T]) Observable[int64] {
	return func(source Observable[T]) Observable[int64] {
		return NewObservable(func(destination Observer[int64]) Teardown {
			var n int64

			sub := source.Subscribe(NewObserver(
				func(T) Ack {
					n++
					return Continue
				},
				destination.OnError,
				func() {
					if destination.OnNext(n) == Continue {
						destination.OnCompleted()
					}
				},
			))

			return sub.Cancel
		})
	}
}
