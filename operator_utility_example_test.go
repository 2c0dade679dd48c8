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

func ExampleDoOnCompleted() {
	values, err := Collect(
		DoOnCompleted[int](func() { fmt.Println("done") })(
			FromSlice([]int{1, 2, 3}),
		),
	)
	fmt.Println(values, err)
	// Output:
	// done
	// [1 2 3] <nil>
}

func ExampleDoWork() {
	values, err := Collect(
		DoWork(func(item int) { fmt.Println("saw", item) })(
			FromSlice([]int{1, 2, 3}),
		),
	)
	fmt.Println(values, err)
	// Output:
	// saw 1
	// saw 2
	// saw 3
	// [1 2 3] <nil>
}

func ExampleSafe() {
	values, err := Collect(Safe(FromSlice([]int{1, 2, 3})))
	fmt.Println(values, err)
	// Output: [1 2 3] <nil>
}
