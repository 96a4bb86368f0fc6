// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers used by the TUI
// components.
package slicest

// Reduce folds s into a U, starting from the zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD folds s into a U, starting from init.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// MapI maps s to a new slice.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

// Map maps s to a new slice.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}
