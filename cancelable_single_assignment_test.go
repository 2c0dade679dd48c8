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
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingleAssignmentCancelable_assignThenCancel(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var runs int32

	s := NewSingleAssignmentCancelable()
	is.False(s.IsCanceled())

	s.Assign(NewCancelable(func() { atomic.AddInt32(&runs, 1) }))
	is.Equal(int32(0), atomic.LoadInt32(&runs))

	s.Cancel()
	is.True(s.IsCanceled())
	is.Equal(int32(1), atomic.LoadInt32(&runs))
}

func TestSingleAssignmentCancelable_cancelBeforeAssign(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var runs int32

	s := NewSingleAssignmentCancelable()
	s.Cancel()
	is.True(s.IsCanceled())

	s.Assign(NewCancelable(func() { atomic.AddInt32(&runs, 1) }))
	is.Equal(int32(1), atomic.LoadInt32(&runs))
}

func TestSingleAssignmentCancelable_nilChildBecomesAlreadyCanceled(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	s := NewSingleAssignmentCancelable()

	is.NotPanics(func() { s.Assign(nil) })
	is.NotPanics(s.Cancel)
}

func TestSingleAssignmentCancelable_doubleAssignPanics(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	s := NewSingleAssignmentCancelable()
	s.Assign(NewCancelable(nil))

	is.PanicsWithValue(ErrCancelableAlreadyAssigned, func() {
		s.Assign(NewCancelable(nil))
	})
}
