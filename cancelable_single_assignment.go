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
	"github.com/flowcore-go/ro/internal/xatomic"
)

var _ Cancelable = (*SingleAssignmentCancelable)(nil)

// preCanceled is not stored in the slot and is not read by
// SingleAssignmentCancelable: a Cancel observed before any child is
// assigned is recorded in the canceled field instead, and the next Assign
// cancels its child immediately.
var preCanceled Cancelable = NewCancelable(nil)

// SingleAssignmentCancelable is a Cancelable with an empty, write-once child
// slot. It is returned up front, before the work that produces the real
// child Cancelable has run, so that a caller can cancel the eventual child
// even if Cancel happens to race the assignment. Assigning a second child
// after the first is a programming error and panics.
type SingleAssignmentCancelable struct {
	slot     xatomic.Pointer[Cancelable]
	canceled xatomic.Pointer[struct{}]
}

// NewSingleAssignmentCancelable returns an empty SingleAssignmentCancelable.
func NewSingleAssignmentCancelable() *SingleAssignmentCancelable {
	return &SingleAssignmentCancelable{}
}

// Assign sets the child Cancelable. It must be called at most once. If this
// SingleAssignmentCancelable was already canceled, child is canceled
// immediately instead of being stored.
func (s *SingleAssignmentCancelable) Assign(child Cancelable) {
	if child == nil {
		child = AlreadyCanceled()
	}

	if !s.slot.CompareAndSwap(nil, &child) {
		panic(ErrCancelableAlreadyAssigned)
	}

	if s.canceled.Load() != nil {
		child.Cancel()
	}
}

// Cancel cancels the assigned child, if any. If no child has been assigned
// yet, the next call to Assign cancels its argument immediately.
func (s *SingleAssignmentCancelable) Cancel() {
	s.canceled.Store(&struct{}{})

	if childPtr := s.slot.Load(); childPtr != nil {
		(*childPtr).Cancel()
	}
}

// IsCanceled reports whether Cancel has been called on this
// SingleAssignmentCancelable, regardless of whether a child has been
// assigned yet.
func (s *SingleAssignmentCancelable) IsCanceled() bool {
	return s.canceled.Load() != nil
}
