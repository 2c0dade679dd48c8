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

import "time"

// FailureReporter is the minimal handle an external collaborator (a
// scheduler, an async boundary outside this package) needs to surface a
// failure it cannot otherwise deliver to an Observer.
type FailureReporter interface {
	ReportFailure(cause error)
}

// Scheduler is an external collaborator referenced only by interface: this
// package never constructs a thread pool or work queue of its own.
// No operator in this package takes a Scheduler; AsFuture takes only the
// narrower FailureReporter.
type Scheduler interface {
	FailureReporter

	// ScheduleOnce runs task after delay and returns a Cancelable that, if
	// canceled before the delay elapses, prevents task from running.
	ScheduleOnce(delay time.Duration, task func()) Cancelable
}

var _ Scheduler = (*DefaultFailureReporter)(nil)

// DefaultFailureReporter is a minimal Scheduler backed by the standard
// library's timer and the package-level OnUnhandledError hook. It is not a
// thread pool: ScheduleOnce simply arms a time.Timer on its own goroutine.
type DefaultFailureReporter struct{}

// ReportFailure forwards cause to the package-level OnUnhandledError hook.
func (DefaultFailureReporter) ReportFailure(cause error) {
	OnUnhandledError(cause)
}

// ScheduleOnce arms a time.Timer for delay and runs task when it fires,
// unless the returned Cancelable is canceled first.
func (DefaultFailureReporter) ScheduleOnce(delay time.Duration, task func()) Cancelable {
	timer := time.AfterFunc(delay, func() {
		recoverUnhandledError(task)
	})

	return NewCancelable(func() {
		timer.Stop()
	})
}
