// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfl

import (
	"reflect"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// List is a lock-free singly-linked list with tail-LIFO semantics.
//
// Push appends at the tail, Pop removes the tail, InsertAfter splices after
// a pivot. head and tail are nil together when the list is empty; tail may
// transiently lag behind the last node or point at a node being popped, and
// every operation repairs it before relying on it.
//
// A node whose next pointer holds the tombstone is logically deleted. Only
// the last node can be marked, so at most one marked node is reachable.
type List[T any] struct {
	_          pad
	head       atomic.Pointer[node[T]]
	_          pad
	tail       atomic.Pointer[node[T]]
	_          pad
	closed     atomix.Bool
	tomb       *node[T]
	equal      func(a, b T) bool
	nilable    bool
	maxRetries int
}

type node[T any] struct {
	value T // Immutable once reachable
	next  atomic.Pointer[node[T]]
}

func newList[T any](equal func(a, b T) bool, opts Options) *List[T] {
	return &List[T]{
		tomb:       &node[T]{},
		equal:      equal,
		nilable:    nilableKind(reflect.TypeFor[T]()),
		maxRetries: opts.maxRetries,
	}
}

// Push appends value as the new tail.
// Returns ErrNilElement for nil values, ErrClosed if the list is closed.
func (l *List[T]) Push(value T) error {
	if l.closed.LoadAcquire() {
		return ErrClosed
	}
	if l.isNil(value) {
		return ErrNilElement
	}

	n := &node[T]{value: value}
	sw := spin.Wait{}
	for {
		t := l.tail.Load()
		if t == nil {
			if l.publishFirst(n) {
				return nil
			}
			sw.Once()
			continue
		}

		next := t.next.Load()
		switch {
		case next == l.tomb:
			l.unlink(t)
		case next != nil:
			// Lagging tail: help it forward
			l.tail.CompareAndSwap(t, next)
		case t.next.CompareAndSwap(nil, n):
			l.tail.CompareAndSwap(t, n)
			return nil
		default:
			sw.Once()
		}
	}
}

// publishFirst installs n into an empty list, head first then tail.
// When head is already set but tail is not, it helps tail catch up and
// reports false.
func (l *List[T]) publishFirst(n *node[T]) bool {
	h := l.head.Load()
	if h != nil {
		l.tail.CompareAndSwap(nil, h)
		return false
	}
	if !l.head.CompareAndSwap(nil, n) {
		return false
	}
	l.tail.CompareAndSwap(nil, n)
	return true
}

// Pop detaches the tail and returns its value.
// Returns (zero-value, ErrWouldBlock) if the list is empty, or if the
// configured retry bound is exhausted.
func (l *List[T]) Pop() (T, error) {
	var zero T
	if l.closed.LoadAcquire() {
		return zero, ErrClosed
	}

	sw := spin.Wait{}
	for round := 0; ; round++ {
		if l.maxRetries > 0 && round >= l.maxRetries {
			return zero, ErrWouldBlock
		}

		t := l.tail.Load()
		if t == nil {
			h := l.head.Load()
			if h == nil {
				return zero, ErrWouldBlock
			}
			l.tail.CompareAndSwap(nil, h)
			continue
		}

		next := t.next.Load()
		switch {
		case next == l.tomb:
			l.unlink(t)
		case next != nil:
			l.tail.CompareAndSwap(t, next)
		case t.next.CompareAndSwap(nil, l.tomb):
			// Linearized: t is logically removed
			l.unlink(t)
			return t.value, nil
		default:
			sw.Once()
		}
	}
}

// unlink physically detaches the marked node t and moves tail off it.
// Safe to call from any number of helpers; exactly one detaching CAS wins.
func (l *List[T]) unlink(t *node[T]) {
	sw := spin.Wait{}
	for {
		h := l.head.Load()
		if h == nil {
			l.tail.CompareAndSwap(t, nil)
			return
		}
		if h == t {
			if l.head.CompareAndSwap(t, nil) {
				l.tail.CompareAndSwap(t, nil)
				return
			}
			sw.Once()
			continue
		}

		p := h
		for {
			next := p.next.Load()
			if next == t {
				if p.next.CompareAndSwap(t, nil) {
					l.tail.CompareAndSwap(t, p)
					return
				}
				break
			}
			if next == nil || next == l.tomb {
				// t already detached; p is the last reachable node
				l.tail.CompareAndSwap(t, p)
				return
			}
			p = next
		}
		sw.Once()
	}
}

// InsertAfter places value directly after the first live element equal to
// pivot. If the pivot is the last element, tail advances to the new node.
//
// Returns (false, nil) if pivot is not present, (false, ErrWouldBlock) if
// the configured retry bound is exhausted.
func (l *List[T]) InsertAfter(value, pivot T) (bool, error) {
	if l.closed.LoadAcquire() {
		return false, ErrClosed
	}
	if l.isNil(value) {
		return false, ErrNilElement
	}

	n := &node[T]{value: value}
	sw := spin.Wait{}
	for round := 0; ; round++ {
		if l.maxRetries > 0 && round >= l.maxRetries {
			return false, ErrWouldBlock
		}

		p := l.find(pivot)
		if p == nil {
			return false, nil
		}

		s := p.next.Load()
		if s == l.tomb {
			// Pivot popped since find; rescan
			continue
		}
		n.next.Store(s)
		if p.next.CompareAndSwap(s, n) {
			if s == nil {
				l.tail.CompareAndSwap(p, n)
			}
			return true, nil
		}
		sw.Once()
	}
}

// find returns the first live node whose value equals pivot, or nil.
func (l *List[T]) find(pivot T) *node[T] {
	for p := l.head.Load(); p != nil; {
		next := p.next.Load()
		if next == l.tomb {
			return nil
		}
		if l.equal(p.value, pivot) {
			return p
		}
		p = next
	}
	return nil
}

// IsEmpty reports whether the list had no live element during the call.
// A closed list is empty.
func (l *List[T]) IsEmpty() bool {
	if l.closed.LoadAcquire() {
		return true
	}
	h := l.head.Load()
	return h == nil || h.next.Load() == l.tomb
}

// Close destroys the list. Subsequent operations return ErrClosed.
// Operations already in flight may still complete. Close is idempotent.
func (l *List[T]) Close() {
	l.closed.StoreRelease(true)
	l.head.Store(nil)
	l.tail.Store(nil)
}

// Closed reports whether Close has been called.
func (l *List[T]) Closed() bool {
	return l.closed.LoadAcquire()
}

func (l *List[T]) isNil(v T) bool {
	if !l.nilable {
		return false
	}
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	// Interface element types are checked against their dynamic type
	return nilableKind(rv.Type()) && rv.IsNil()
}

// nilableKind reports whether values of type t can be nil.
func nilableKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}
