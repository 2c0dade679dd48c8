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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFoldLeft(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FoldLeft(func(agg, item int) int { return agg + item }, 0)(FromSlice([]int{1, 2, 3})))
	is.Equal([]int{6}, values)
	is.NoError(err)
}

func TestFoldLeft_empty(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FoldLeft(func(agg, item int) int { return agg + item }, 42)(Empty[int]()))
	is.Equal([]int{42}, values)
	is.NoError(err)
}

func TestFoldLeft_propagatesError(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(FoldLeft(func(agg, item int) int { return agg + item }, 0)(Error[int](assert.AnError)))
	is.ErrorIs(err, assert.AnError)
}

func TestFoldLeft_differentAccumulatorType(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FoldLeft(func(agg []int, item int) []int {
		return append(agg, item*item)
	}, []int{})(FromSlice([]int{1, 2, 3})))

	is.Equal([][]int{{1, 4, 9}}, values)
	is.NoError(err)
}

func TestCount(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Count[int]()(FromSlice([]int{1, 2, 3, 4})))
	is.Equal([]int64{4}, values)
	is.NoError(err)
}

func TestCount_empty(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Count[int]()(Empty[int]()))
	is.Equal([]int64{0}, values)
	is.NoError(err)
}
