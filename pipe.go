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

// Pipe1 is a typesafe implementation of a pipeline, that takes a source and 1 operator.
//
// `PipeOp1()` is the operator version of `Pipe1()`.
func Pipe1[A, B any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
) Observable[B] {
	return operator1(source)
}

// Pipe2 is a typesafe implementation of a pipeline, that takes a source and 2 operators.
//
// `PipeOp2()` is the operator version of `Pipe2()`.
func Pipe2[A, B, C any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
) Observable[C] {
	return operator2(
		operator1(source),
	)
}

// Pipe3 is a typesafe implementation of a pipeline, that takes a source and 3 operators.
//
// `PipeOp3()` is the operator version of `Pipe3()`.
func Pipe3[A, B, C, D any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
) Observable[D] {
	return operator3(
		operator2(
			operator1(source),
		),
	)
}

// Pipe4 is a typesafe implementation of a pipeline, that takes a source and 4 operators.
//
// `PipeOp4()` is the operator version of `Pipe4()`.
func Pipe4[A, B, C, D, E any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
) Observable[E] {
	return operator4(
		operator3(
			operator2(
				operator1(source),
			),
		),
	)
}

// Pipe5 is a typesafe implementation of a pipeline, that takes a source and 5 operators.
//
// `PipeOp5()` is the operator version of `Pipe5()`.
func Pipe5[A, B, C, D, E, F any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
) Observable[F] {
	return operator5(
		operator4(
			operator3(
				operator2(
					operator1(source),
				),
			),
		),
	)
}

// Pipe6 is a typesafe implementation of a pipeline, that takes a source and 6 operators.
//
// `PipeOp6()` is the operator version of `Pipe6()`.
func Pipe6[A, B, C, D, E, F, G any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
) Observable[G] {
	return operator6(
		operator5(
			operator4(
				operator3(
					operator2(
						operator1(source),
					),
				),
			),
		),
	)
}

// PipeOp1 is similar to Pipe1, but can be used as an operator.
func PipeOp1[A, B any](
	operator1 func(Observable[A]) Observable[B],
) func(Observable[A]) Observable[B] {
	return func(source Observable[A]) Observable[B] {
		return Pipe1(
			source,
			operator1,
		)
	}
}

// PipeOp2 is similar to Pipe2, but can be used as an operator.
func PipeOp2[A, B, C any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
) func(Observable[A]) Observable[C] {
	return func(source Observable[A]) Observable[C] {
		return Pipe2(
			source,
			operator1,
			operator2,
		)
	}
}

// PipeOp3 is similar to Pipe3, but can be used as an operator.
func PipeOp3[A, B, C, D any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
) func(Observable[A]) Observable[D] {
	return func(source Observable[A]) Observable[D] {
		return Pipe3(
			source,
			operator1,
			operator2,
			operator3,
		)
	}
}

// PipeOp4 is similar to Pipe4, but can be used as an operator.
func PipeOp4[A, B, C, D, E any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
) func(Observable[A]) Observable[E] {
	return func(source Observable[A]) Observable[E] {
		return Pipe4(
			source,
			operator1,
			operator2,
			operator3,
			operator4,
		)
	}
}

// PipeOp5 is similar to Pipe5, but can be used as an operator.
func PipeOp5[A, B, C, D, E, F any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
) func(Observable[A]) Observable[F] {
	return func(source Observable[A]) Observable[F] {
		return Pipe5(
			source,
			operator1,
			operator2,
			operator3,
			operator4,
			operator5,
		)
	}
}

// PipeOp6 is similar to Pipe6, but can be used as an operator.
func PipeOp6[A, B, C, D, E, F, G any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
) func(Observable[A]) Observable[G] {
	return func(source Observable[A]) Observable[G] {
		return Pipe6(
			source,
			operator1,
			operator2,
			operator3,
			operator4,
			operator5,
			operator6,
		)
	}
}
