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
	"fmt"
	"sync/atomic"
)

// Observer is the consumer of an Observable. It receives OnNext zero or more
// times, each call replying with an Ack, followed by at most one of OnError
// or OnCompleted. An Observer must not be called again after it has replied
// Stop from OnNext, or after it has received OnError/OnCompleted. The
// Observer built by NewObserver tracks only the terminal events: a
// notification arriving after OnError/OnCompleted is dropped and reported
// through OnDroppedNotification, while a Stop reply alone does not close it.
//
// This Observer does not itself guard its callbacks against panics: OnNext's
// outer boundary is never wrapped by a recover. A panic raised from onNext
// propagates straight out of the call, up through however many operators
// forwarded to it, until it either unwinds into the producer's own Subscribe
// call (which reports it as an OnError) or crosses an operator that, per its
// own per-call discipline, caught the panic closer to its source. See
// operator_transformations.go, operator_filter.go, operator_math.go and
// FromIterator in sources.go for that discipline: each protects only the
// user-supplied transform/predicate/accumulator/iterator call with its own
// narrow recover, and calls the downstream Observer outside of it, so that a
// panic from the downstream itself is never mistaken for one raised by the
// operator's own user code.
type Observer[T any] interface {
	// OnNext delivers the next value. The returned Ack tells the source
	// whether to keep pushing (Continue) or to stop (Stop).
	OnNext(value T) Ack
	// OnError delivers a terminal error. Called at most once, and never
	// after OnCompleted or after OnNext has returned Stop.
	OnError(err error)
	// OnCompleted delivers a terminal completion signal. Called at most
	// once, and never after OnError or after OnNext has returned Stop.
	OnCompleted()

	// IsClosed reports whether this Observer has already reached a
	// terminal state (OnError or OnCompleted already delivered).
	IsClosed() bool
	// HasThrown reports whether this Observer's terminal state is OnError.
	HasThrown() bool
	// IsCompleted reports whether this Observer's terminal state is
	// OnCompleted.
	IsCompleted() bool
}

var _ Observer[int] = (*observerImpl[int])(nil)

// NewObserver builds an Observer from up to three closures. onNext is
// required. A nil onError reports errors through the package-level
// OnUnhandledError hook instead of silently dropping them. A nil
// onCompleted is a no-op, matching the common case of a consumer that only
// cares about values and errors.
func NewObserver[T any](onNext func(value T) Ack, onError func(err error), onCompleted func()) Observer[T] {
	if onError == nil {
		onError = OnUnhandledError
	}

	if onCompleted == nil {
		onCompleted = func() {}
	}

	return &observerImpl[T]{
		onNext:      onNext,
		onError:     onError,
		onCompleted: onCompleted,
	}
}

type observerImpl[T any] struct {
	// 0: active, 1: errored, 2: completed
	status      int32
	onNext      func(T) Ack
	onError     func(error)
	onCompleted func()
}

func (o *observerImpl[T]) OnNext(value T) Ack {
	if atomic.LoadInt32(&o.status) != 0 {
		OnDroppedNotification(NewNotificationNext(value))
		return Stop
	}

	return o.onNext(value)
}

func (o *observerImpl[T]) OnError(err error) {
	if !atomic.CompareAndSwapInt32(&o.status, 0, 1) {
		OnDroppedNotification(NewNotificationError[T](err))
		return
	}

	o.onError(err)
}

func (o *observerImpl[T]) OnCompleted() {
	if !atomic.CompareAndSwapInt32(&o.status, 0, 2) {
		OnDroppedNotification(NewNotificationComplete[T]())
		return
	}

	o.onCompleted()
}

func (o *observerImpl[T]) IsClosed() bool {
	return atomic.LoadInt32(&o.status) != 0
}

func (o *observerImpl[T]) HasThrown() bool {
	return atomic.LoadInt32(&o.status) == 1
}

func (o *observerImpl[T]) IsCompleted() bool {
	return atomic.LoadInt32(&o.status) == 2
}

/*********************
 * Partial Observers *
 *********************/

// NewSubscribeFunc builds an Observer from a single onNext closure. Errors
// are reported through the package-level OnUnhandledError hook; completion
// is ignored.
//
// Warning: errors delivered to this Observer are never surfaced to the
// caller directly; use NewSubscribeFuncs if you need to observe them.
func NewSubscribeFunc[T any](onNext func(value T) Ack) Observer[T] {
	return NewObserver(onNext, nil, nil)
}

// NewSubscribeFuncs builds an Observer from onNext and onError closures,
// with completion handled as a no-op.
func NewSubscribeFuncs[T any](onNext func(value T) Ack, onError func(err error)) Observer[T] {
	return NewObserver(onNext, onError, nil)
}

// NoopObserver is an Observer that discards every notification.
func NoopObserver[T any]() Observer[T] {
	return NewObserver(
		func(T) Ack { return Continue },
		func(error) {},
		func() {},
	)
}

// PrintObserver dumps every notification to stdout. Useful for debugging a
// pipeline interactively.
func PrintObserver[T any]() Observer[T] {
	return NewObserver(
		func(value T) Ack {
			fmt.Printf("Next: %v\n", value)
			return Continue
		},
		func(err error) {
			fmt.Printf("Error: %s\n", err.Error())
		},
		func() {
			fmt.Printf("Completed\n")
		},
	)
}
