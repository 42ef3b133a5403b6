// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfl

// Container is the combined interface of a tail-LIFO list.
//
// All operations are safe for concurrent use by any number of goroutines.
// The interface intentionally excludes length and iteration; see the
// package documentation.
//
// Example:
//
//	var c lfl.Container[string] = lfl.NewList[string]()
//	c.Push("a")
//	v, err := c.Pop()
type Container[T any] interface {
	Pusher[T]
	Popper[T]
	Inserter[T]

	// IsEmpty reports whether the list held no live element at some instant
	// during the call. The result may be stale when it returns.
	IsEmpty() bool
}

// Pusher is the interface for appending elements at the tail.
type Pusher[T any] interface {
	// Push appends value as the new tail.
	// Returns nil on success, ErrNilElement for nil values,
	// ErrClosed if the list is closed.
	Push(value T) error
}

// Popper is the interface for removing elements from the tail.
type Popper[T any] interface {
	// Pop detaches the tail and returns its value.
	// Returns (zero-value, ErrWouldBlock) if the list is empty.
	Pop() (T, error)
}

// Inserter is the interface for splicing elements after a pivot.
type Inserter[T any] interface {
	// InsertAfter places value directly after the first element equal to
	// pivot. Returns (false, nil) if no such element exists.
	InsertAfter(value, pivot T) (bool, error)
}
