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

import "fmt"

func ExampleEmpty() {
	values, err := Collect(Empty[int]())
	fmt.Println(values, err)
	// Output: [] <nil>
}

func ExampleUnit() {
	values, err := Collect(Unit(42))
	fmt.Println(values, err)
	// Output: [42] <nil>
}

func ExampleError() {
	values, err := Collect(Error[int](fmt.Errorf("boom")))
	fmt.Println(values, err)
	// Output: [] boom
}

func ExampleFromSlice() {
	values, err := Collect(FromSlice([]int{1, 2, 3}))
	fmt.Println(values, err)
	// Output: [1 2 3] <nil>
}

func ExampleFromIterator() {
	items := []string{"a", "b", "c"}
	i := 0

	values, err := Collect(FromIterator(func() (string, bool) {
		if i >= len(items) {
			return "", false
		}

		value := items[i]
		i++

		return value, true
	}))
	fmt.Println(values, err)
	// Output: [a b c] <nil>
}
