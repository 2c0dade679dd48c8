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
	"log"
)

var (
	// By default, the library ignores unhandled errors and dropped
	// notifications. Change this behavior by assigning your own handlers.
	//
	// Example:
	//
	// 	ro.OnUnhandledError = func(err error) {
	// 		slog.Error(fmt.Sprintf("unhandled error: %s\n", err.Error()))
	// 	}
	//
	// Note: OnUnhandledError and OnDroppedNotification are called
	// synchronously from the goroutine that emits the error or the
	// notification. A slow callback slows down the whole pipeline.

	// OnUnhandledError is called when an Observer has no registered error
	// handler, or when a panic is recovered from a callback that has no
	// narrower place to report to.
	OnUnhandledError = IgnoreOnUnhandledError
	// OnDroppedNotification is called when a value, error or completion is
	// produced after an Observer has already reached a terminal state.
	OnDroppedNotification = IgnoreOnDroppedNotification
)

// IgnoreOnUnhandledError is the default implementation of OnUnhandledError.
func IgnoreOnUnhandledError(err error) {}

// IgnoreOnDroppedNotification is the default implementation of
// OnDroppedNotification.
func IgnoreOnDroppedNotification(notification fmt.Stringer) {}

// DefaultOnUnhandledError logs the error with the standard library logger.
func DefaultOnUnhandledError(err error) {
	if err != nil {
		// bearer:disable go_lang_logger_leak
		log.Printf("ro: unhandled error: %s\n", err.Error())
	}
}

var _ fmt.Stringer = (*Notification[int])(nil) // see below

// DefaultOnDroppedNotification logs the dropped notification with the
// standard library logger.
//
// Since we cannot assign a generic callback to OnDroppedNotification, we use
// a fmt.Stringer instead of a Notification[T any].
func DefaultOnDroppedNotification(notification fmt.Stringer) {
	// bearer:disable go_lang_logger_leak
	log.Printf("ro: dropped notification: %s\n", notification.String())
}
