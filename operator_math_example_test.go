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

func ExampleFoldLeft() {
	values, err := Collect(FoldLeft(func(agg, item int) int { return agg + item }, 0)(FromSlice([]int{1, 2, 3})))
	fmt.Println(values, err)
	// Output: [6] <nil>
}

func ExampleCount() {
	values, err := Collect(Count[int]()(FromSlice([]int{1, 2, 3, 4})))
	fmt.Println(values, err)
	// Output: [4] <nil>
}
