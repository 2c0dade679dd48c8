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
	"errors"
	"sync/atomic"

	"github.com/samber/mo"
)

// Head emits only the first item of an Observable, then completes. Unlike
// Take(1), a source that completes without ever emitting is reported as
// ErrHeadEmpty rather than as an empty completion.
func Head[T any](source Observable[T]) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		var emitted bool

		sub := Take[T](1)(source).Subscribe(NewObserver(
			func(value T) Ack {
				emitted = true
				return destination.OnNext(value)
			},
			destination.OnError,
			func() {
				if !emitted {
					destination.OnError(ErrHeadEmpty)
					return
				}

				destination.OnCompleted()
			},
		))

		return sub.Cancel
	})
}

// Tail forwards every item of an Observable except the first. A source that
// completes without ever emitting is reported as ErrTailEmpty, since there
// is no head to drop; a source with exactly one item yields an empty Tail
// with no error.
func Tail[T any](source Observable[T]) Observable[T] {
	return NewObservable(func(destination Observer[T]) Teardown {
		var index int64

		sub := source.Subscribe(NewObserver(
			func(value T) Ack {
				index++

				if index == 1 {
					return Continue
				}

				return destination.OnNext(value)
			},
			destination.OnError,
			func() {
				if index == 0 {
					destination.OnError(ErrTailEmpty)
					return
				}

				destination.OnCompleted()
			},
		))

		return sub.Cancel
	})
}

// Find emits the first item of an Observable matching predicate, then
// completes. A source with no matching item is reported as ErrFindNotFound.
func Find[T any](predicate func(item T) bool) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			sub := Head[T](Filter[T](predicate)(source)).Subscribe(NewObserver(
				destination.OnNext,
				func(err error) {
					if errors.Is(err, ErrHeadEmpty) {
						destination.OnError(ErrFindNotFound)
						return
					}

					destination.OnError(err)
				},
				destination.OnCompleted,
			))

			return sub.Cancel
		})
	}
}

// Exists emits true as soon as one item emitted by an Observable matches
// predicate, or false once the source completes having matched none.
func Exists[T any](predicate func(item T) bool) func(Observable[T]) Observable[bool] {
	return func(source Observable[T]) Observable[bool] {
		matched := Take[T](1)(Filter[T](predicate)(source))

		return FoldLeft[T, bool](
			func(bool, T) bool { return true },
			false,
		)(matched)
	}
}

// ForAll emits true if every item emitted by an Observable matches
// predicate, or false as soon as one item fails to match.
func ForAll[T any](predicate func(item T) bool) func(Observable[T]) Observable[bool] {
	return func(source Observable[T]) Observable[bool] {
		counterExample := Exists[T](func(item T) bool { return !predicate(item) })(source)

		return Map[bool, bool](func(found bool) bool { return !found })(counterExample)
	}
}

// Flatten subscribes to every inner Observable emitted by source as it
// arrives and forwards their items, exactly as FlatMap(identity) would.
func Flatten[T any](source Observable[Observable[T]]) Observable[T] {
	return FlatMap[Observable[T], T](func(inner Observable[T]) Observable[T] {
		return inner
	})(source)
}

// Merge subscribes to a and b concurrently and forwards every item either
// one emits, interleaved in whatever order they produce them.
func Merge[T any](a, b Observable[T]) Observable[T] {
	return Flatten[T](FromSlice([]Observable[T]{a, b}))
}

// HeadOrElse emits the first item of an Observable, or fallback[0] if the
// source completes without ever emitting. With no fallback argument, an
// empty source is reported as ErrHeadOrElseNoSource instead.
func HeadOrElse[T any](fallback ...T) func(Observable[T]) Observable[T] {
	return func(source Observable[T]) Observable[T] {
		return NewObservable(func(destination Observer[T]) Teardown {
			resolved := mo.None[T]()

			sub := Take[T](1)(source).Subscribe(NewObserver(
				func(value T) Ack {
					resolved = mo.Some(value)
					return destination.OnNext(value)
				},
				destination.OnError,
				func() {
					if resolved.IsPresent() {
						destination.OnCompleted()
						return
					}

					if len(fallback) > 0 {
						if destination.OnNext(fallback[0]) == Continue {
							destination.OnCompleted()
						}

						return
					}

					destination.OnError(ErrHeadOrElseNoSource)
				},
			))

			return sub.Cancel
		})
	}
}

// AsFuture subscribes to source immediately and resolves the returned
// Future with the first value it emits (wrapped in mo.Some), with
// mo.None on an empty completion, or with the source's error. Once the
// Future has been resolved with a value, the underlying subscription
// returns Stop and no further items are observed. An error delivered after
// the Future has already resolved (which the Observer grammar forbids, but
// a misbehaving source could still attempt) is reported to reporter instead
// of being silently dropped a second time.
func AsFuture[T any](source Observable[T], reporter FailureReporter) *mo.Future[mo.Option[T]] {
	return mo.NewFuture(func(resolve func(mo.Option[T], error)) {
		var resolved int32

		source.Subscribe(NewObserver(
			func(value T) Ack {
				if atomic.CompareAndSwapInt32(&resolved, 0, 1) {
					resolve(mo.Some(value), nil)
				}

				return Stop
			},
			func(err error) {
				if atomic.CompareAndSwapInt32(&resolved, 0, 1) {
					resolve(mo.None[T](), err)
				} else {
					reporter.ReportFailure(err)
				}
			},
			func() {
				if atomic.CompareAndSwapInt32(&resolved, 0, 1) {
					resolve(mo.None[T](), nil)
				}
			},
		))
	})
}
