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
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(Map(strconv.Itoa)(FromSlice([]int{1, 2, 3})))
	is.Equal([]string{"1", "2", "3"}, values)
	is.NoError(err)
}

func TestMap_propagatesError(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(Map(strconv.Itoa)(Error[int](assert.AnError)))
	is.ErrorIs(err, assert.AnError)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FlatMap(func(x int) Observable[int] {
		return FromSlice([]int{x, x * 10})
	})(FromSlice([]int{1, 2})))

	is.ElementsMatch([]int{1, 10, 2, 20}, values)
	is.NoError(err)
}

func TestFlatMap_empty(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	values, err := Collect(FlatMap(func(int) Observable[int] {
		return Empty[int]()
	})(FromSlice([]int{1, 2, 3})))

	is.Equal([]int{}, values)
	is.NoError(err)
}

func TestFlatMap_innerError(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(FlatMap(func(x int) Observable[int] {
		if x == 2 {
			return Error[int](assert.AnError)
		}

		return Unit(x)
	})(FromSlice([]int{1, 2, 3})))

	is.ErrorIs(err, assert.AnError)
}

func TestFlatMap_outerError(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	_, err := Collect(FlatMap(func(x int) Observable[int] {
		return Unit(x)
	})(Error[int](assert.AnError)))

	is.ErrorIs(err, assert.AnError)
}

func TestFlatMap_waitsForAllInnersBeforeCompleting(t *testing.T) {
	t.Parallel()
	testWithTimeout(t, 10*time.Millisecond)
	is := assert.New(t)

	var innerCompleted bool

	slowInner := NewObservable(func(destination Observer[int]) Teardown {
		destination.OnNext(1)
		innerCompleted = true
		destination.OnCompleted()

		return nil
	})

	values, err := Collect(FlatMap(func(int) Observable[int] {
		return slowInner
	})(Unit(0)))

	is.True(innerCompleted)
	is.Equal([]int{1}, values)
	is.NoError(err)
}
