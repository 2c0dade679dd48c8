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

// Empty creates an Observable that emits no values and completes
// immediately upon subscription.
func Empty[T any]() Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		destination.OnCompleted()
		return nil
	})
}

// Unit creates an Observable that emits a single value and completes.
func Unit[T any](value T) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		if destination.OnNext(value) == Continue {
			destination.OnCompleted()
		}

		return nil
	})
}

// Error creates an Observable that emits err as OnError immediately, without
// any value and without OnCompleted.
// A nil err is a valid value: the Observer still receives an OnError(nil).
func Error[T any](err error) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		destination.OnError(err)
		return nil
	})
}

// Never creates an Observable that never emits a value and never
// terminates. Subscribe returns a Cancelable; canceling it is the only
// way to release the subscription, since the Observer is never called.
func Never[T any]() Observable[T] {
	return NewObservable(func(Observer[T]) Teardown {
		return nil
	})
}

// FromSlice creates an Observable that synchronously emits every element
// of items, in order, then completes. Subscribe itself pushes the whole
// sequence before returning, so the Observer may stop the iteration early
// by returning Stop from OnNext.
func FromSlice[T any](items []T) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		for _, item := range items {
			if destination.OnNext(item) == Stop {
				return nil
			}
		}

		destination.OnCompleted()

		return nil
	})
}

// FromIterator creates an Observable from a lo.Seq2-style iterator: next is
// called repeatedly and must return (value, true) for each emitted value,
// then (zero, false) to signal the end of the sequence. Only the call to
// next is a stream error: a panic it raises is caught and reported as an
// OnError, and the iteration stops there. Once next has returned, the
// resulting call to destination.OnNext is made outside of that protection,
// so a panic from the downstream Observer is not caught here: it unwinds to
// the Subscribe boundary, which reports it to destination as OnError.
func FromIterator[T any](next func() (T, bool)) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		for {
			var value T
			var ok bool

			if err := guardStreamCall(func() { value, ok = next() }); err != nil {
				destination.OnError(err)
				return nil
			}

			if !ok {
				destination.OnCompleted()
				return nil
			}

			if destination.OnNext(value) == Stop {
				return nil
			}
		}
	})
}
