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
	"fmt"

	"github.com/samber/lo"
)

func recoverValueToError(e any) error {
	if err, ok := e.(error); ok {
		return err
	}

	return fmt.Errorf("unexpected error: %v", e)
}

func recoverUnhandledError(cb func()) {
	lo.TryCatchWithErrorValue(
		func() error {
			cb()
			return nil
		},
		func(e any) {
			OnUnhandledError(recoverValueToError(e))
		},
	)
}

// guardStreamCall runs fn, which must be exactly one operator's
// user-supplied transform, predicate, accumulator or iterator call and
// nothing past it: no forwarding to a downstream Observer belongs inside
// fn. A panic raised by fn is a stream error and is returned as an
// *observerError; a nil return means fn ran to completion and the caller is
// now free to touch its downstream without this guard's protection, since a
// panic from the downstream itself must propagate rather than be caught
// here.
func guardStreamCall(fn func()) (err error) {
	lo.TryCatchWithErrorValue(
		func() error {
			fn()
			return nil
		},
		func(e any) {
			err = newObserverError(recoverValueToError(e))
		},
	)

	return err
}

var (
	//nolint:revive
	ErrTakeCountNotPositive      = errors.New("ro.Take: count must be greater or equal to 0")
	ErrDropCountNegative         = errors.New("ro.Drop: count must be greater or equal to 0")
	ErrHeadEmpty                 = errors.New("ro.Head: source completed without emitting a value")
	ErrTailEmpty                 = errors.New("ro.Tail: source completed without emitting a value")
	ErrFindNotFound              = errors.New("ro.Find: no value matched the predicate")
	ErrHeadOrElseNoSource        = errors.New("ro.HeadOrElse: source completed without emitting a value and no fallback was provided")
	ErrCancelableAlreadyAssigned = errors.New("ro.SingleAssignment: a child Cancelable has already been assigned")
)

func newUnsubscriptionError(err error) error {
	return &unsubscriptionError{err: err}
}

// unsubscriptionError wraps a panic recovered while running a Cancelable's
// teardown function.
type unsubscriptionError struct {
	err error
}

func (e *unsubscriptionError) Error() string {
	return "ro.Cancelable: " + e.err.Error()
}

func (e *unsubscriptionError) Unwrap() error {
	return e.err
}

func newObservableError(err error) error {
	return &observableError{err: err}
}

// observableError wraps a panic recovered while running an Observable's
// subscribe function.
type observableError struct {
	err error
}

func (e *observableError) Error() string {
	return "ro.Observable: " + e.err.Error()
}

func (e *observableError) Unwrap() error {
	return e.err
}

func newObserverError(err error) error {
	return &observerError{err: err}
}

// observerError wraps a panic recovered while running one of an Observer's
// callbacks.
type observerError struct {
	err error
}

func (e *observerError) Error() string {
	msg := "<nil>"
	if e.err != nil {
		msg = e.err.Error()
	}

	return "ro.Observer: " + msg
}

func (e *observerError) Unwrap() error {
	return e.err
}
