// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfl

// Options configures list creation.
type Options struct {
	// Failed CAS rounds tolerated by Pop and InsertAfter (0 = unbounded)
	maxRetries int
}

// Builder creates lists with fluent configuration.
//
// Example:
//
//	// Unbounded retries, == equality
//	l := lfl.Build[int](lfl.New())
//
//	// Pop gives up after 64 failed rounds under contention
//	l := lfl.Build[int](lfl.New().MaxRetries(64))
//
//	// Custom equality for InsertAfter
//	l := lfl.BuildFunc[*User](lfl.New(), func(a, b *User) bool { return a.ID == b.ID })
type Builder struct {
	opts Options
}

// New creates a list builder with default options.
func New() *Builder {
	return &Builder{}
}

// MaxRetries bounds the number of failed rounds Pop and InsertAfter perform
// before giving up with ErrWouldBlock.
//
// A round fails when a CAS loses a race or the operation has to help another
// one finish first. Zero restores the default of unbounded retries.
//
// Trade-off: a bounded Pop may report an absent element while the list is
// non-empty but heavily contended.
//
// Panics if n < 0.
func (b *Builder) MaxRetries(n int) *Builder {
	if n < 0 {
		panic("lfl: max retries must be >= 0")
	}
	b.opts.maxRetries = n
	return b
}

// Build creates a List[T] that matches InsertAfter pivots with ==.
func Build[T comparable](b *Builder) *List[T] {
	return newList(func(x, y T) bool { return x == y }, b.opts)
}

// BuildFunc creates a List[T] that matches InsertAfter pivots with equal.
// Panics if equal is nil.
func BuildFunc[T any](b *Builder, equal func(a, b T) bool) *List[T] {
	if equal == nil {
		panic("lfl: BuildFunc requires an equality function")
	}
	return newList(equal, b.opts)
}

// NewList creates a list with default options and == equality.
func NewList[T comparable]() *List[T] {
	return Build[T](New())
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
