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
	"github.com/flowcore-go/ro/internal/xsync"
)

var _ Observer[int] = (*synchronizedObserver[int])(nil)

// NewSynchronizedObserver wraps destination so that OnNext/OnError/
// OnCompleted calls arriving from different goroutines are serialized
// through a mutex before reaching destination. Concat (++) and Safe use
// this to guarantee destination never observes two notifications
// interleaved, without requiring destination itself to be thread-safe;
// FlatMap does not wrap its destination.
func NewSynchronizedObserver[T any](destination Observer[T]) Observer[T] {
	return &synchronizedObserver[T]{
		destination: destination,
		mu:          xsync.NewMutexWithLock(),
	}
}

type synchronizedObserver[T any] struct {
	destination Observer[T]
	mu          xsync.Mutex
}

func (s *synchronizedObserver[T]) OnNext(value T) Ack {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.destination.OnNext(value)
}

func (s *synchronizedObserver[T]) OnError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destination.OnError(err)
}

func (s *synchronizedObserver[T]) OnCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destination.OnCompleted()
}

func (s *synchronizedObserver[T]) IsClosed() bool {
	return s.destination.IsClosed()
}

func (s *synchronizedObserver[T]) HasThrown() bool {
	return s.destination.HasThrown()
}

func (s *synchronizedObserver[T]) IsCompleted() bool {
	return s.destination.IsCompleted()
}
