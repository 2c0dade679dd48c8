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
)

// Teardown is a function that releases the resources held by a single
// subscription: closing a file, stopping a goroutine, detaching from an
// upstream subscription. It runs at most once, when its Cancelable is
// canceled or when the subscription delivers OnError/OnCompleted.
type Teardown func()

// Observable is a factory for synchronous, push-based streams of values. It
// is not itself a stream: each call to Subscribe starts a new, independent
// execution. An Observable emits any number of values to its Observer
// (including zero), then at most one of an error or a completion signal.
// Once an Observer has returned Stop from OnNext, or received OnError/
// OnCompleted, the Observable must not call it again.
type Observable[T any] interface {
	// Subscribe attaches destination to the Observable and starts producing
	// values. It returns a Cancelable that detaches destination and
	// releases any resource the subscription holds; canceling it more than
	// once is a no-op.
	Subscribe(destination Observer[T]) Cancelable
}

var _ Observable[int] = (*observableImpl[int])(nil)

// NewObservable builds an Observable from a subscribe function. subscribe
// is invoked once per Subscribe call, is given the (possibly wrapped)
// destination Observer, and returns the Teardown to run on cancellation. A
// nil Teardown is legal when there is nothing to release.
//
// Once destination has received OnError or OnCompleted, the subscription is
// canceled and the Teardown runs; the caller need not cancel it.
//
// If subscribe panics, the panic is reported to destination as OnError
// instead of propagating to the caller of Subscribe, and Subscribe returns
// AlreadyCanceled().
func NewObservable[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return &observableImpl[T]{subscribe: subscribe}
}

// Create is an alias of NewObservable for readers coming from the wider
// Rx family.
func Create[T any](subscribe func(destination Observer[T]) Teardown) Observable[T] {
	return NewObservable(subscribe)
}

type observableImpl[T any] struct {
	subscribe func(destination Observer[T]) Teardown
}

func (o *observableImpl[T]) Subscribe(destination Observer[T]) Cancelable {
	assignment := NewSingleAssignmentCancelable()
	panicked := false

	// A terminal notification releases the subscription by itself.
	observer := NewObserver(
		destination.OnNext,
		func(err error) {
			destination.OnError(err)
			assignment.Cancel()
		},
		func() {
			destination.OnCompleted()
			assignment.Cancel()
		},
	)

	lo.TryCatchWithErrorValue(
		func() error {
			teardown := o.subscribe(observer)
			assignment.Assign(NewCancelable(teardown))
			return nil
		},
		func(e any) {
			destination.OnError(newObservableError(recoverValueToError(e)))
			panicked = true
		},
	)

	if panicked {
		return AlreadyCanceled()
	}

	return assignment
}

// Collect subscribes to obs and blocks until it reaches a terminal state,
// returning every value it emitted along with its terminal error, if any.
// It exists purely for tests: a synchronous Observable has no async
// boundary to wait on, but Collect still saves every call site from
// hand-rolling the same Observer.
func Collect[T any](obs Observable[T]) ([]T, error) {
	values := []T{}
	done := make(chan struct{})
	var terminalErr error

	obs.Subscribe(NewObserver(
		func(value T) Ack {
			values = append(values, value)
			return Continue
		},
		func(err error) {
			terminalErr = err
			close(done)
		},
		func() {
			close(done)
		},
	))

	<-done

	return values, terminalErr
}
