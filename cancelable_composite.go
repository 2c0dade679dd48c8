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

var _ Cancelable = (*CompositeCancelable)(nil)

// CompositeCancelable holds a growing, identity-keyed set of child
// Cancelables. Cancel cancels every child still in the set, once; Remove
// evicts a child from the set without canceling it. Children are compared
// by interface identity, so the same concrete Cancelable added twice is
// stored once, and a single Remove evicts it.
type CompositeCancelable struct {
	mu       xsync.Mutex
	children map[Cancelable]struct{}
	canceled bool
}

// NewCompositeCancelable returns an empty CompositeCancelable, optionally
// pre-populated with children.
func NewCompositeCancelable(children ...Cancelable) *CompositeCancelable {
	c := &CompositeCancelable{
		mu:       xsync.NewMutexWithLock(),
		children: make(map[Cancelable]struct{}, len(children)),
	}

	for _, child := range children {
		c.Add(child)
	}

	return c
}

// Add registers child. If the CompositeCancelable has already been
// canceled, child is canceled immediately instead of being stored.
func (c *CompositeCancelable) Add(child Cancelable) {
	if child == nil {
		return
	}

	c.mu.Lock()

	if c.canceled {
		c.mu.Unlock()
		child.Cancel()
		return
	}

	c.children[child] = struct{}{}
	c.mu.Unlock()
}

// Remove evicts child from the set without canceling it. Use this when
// child has already reached its own terminal state by some other means
// and only needs to stop being tracked; to both remove and tear a child
// down, cancel it first and then call Remove, or just call Cancel on it
// and let it stay tracked until the whole CompositeCancelable is canceled.
func (c *CompositeCancelable) Remove(child Cancelable) {
	if child == nil {
		return
	}

	c.mu.Lock()
	delete(c.children, child)
	c.mu.Unlock()
}

// Cancel cancels every child currently in the set. The lock is released
// before any child's Cancel runs, so a child that synchronously calls back
// into Add/Remove on this same CompositeCancelable cannot deadlock.
func (c *CompositeCancelable) Cancel() {
	c.mu.Lock()

	if c.canceled {
		c.mu.Unlock()
		return
	}

	c.canceled = true
	children := c.children
	c.children = nil
	c.mu.Unlock()

	for child := range children {
		child.Cancel()
	}
}

// IsCanceled reports whether Cancel has been called on this
// CompositeCancelable.
func (c *CompositeCancelable) IsCanceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.canceled
}
