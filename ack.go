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

// Ack is the reply an Observer gives to an Observable after receiving a value
// through OnNext. It is the only backpressure signal in this runtime: an
// Observable must not call OnNext again on an Observer that has last replied
// Stop.
type Ack int8

const (
	// Continue tells the source that more values may be pushed.
	Continue Ack = iota
	// Stop tells the source that the Observer is no longer interested in
	// further values. It is not an error: the source stops producing and
	// does not call that Observer again, not even with OnError or
	// OnCompleted.
	Stop
)

// String returns a human-readable representation of the Ack, mostly useful
// for test failures and debugging.
func (a Ack) String() string {
	switch a {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	default:
		return "Ack(unknown)"
	}
}
