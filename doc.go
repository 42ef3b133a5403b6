// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfl provides a lock-free singly-linked list with tail-LIFO semantics.
//
// Elements are pushed to the tail and popped from the tail, so the list
// behaves as a stack whose top is the end of a singly-linked chain. In
// addition to Push and Pop, the list supports InsertAfter, which splices a
// new element after the first node holding a given pivot value.
//
// # Quick Start
//
// Direct constructor for comparable element types:
//
//	l := lfl.NewList[string]()
//
// Builder API for options and custom equality:
//
//	l := lfl.Build[int](lfl.New().MaxRetries(1024))
//	l := lfl.BuildFunc[Point](lfl.New(), func(a, b Point) bool { return a.ID == b.ID })
//
// # Basic Usage
//
//	l := lfl.NewList[int]()
//
//	l.Push(1)
//	l.Push(2)
//	l.InsertAfter(9, 1) // chain: 1 → 9 → 2
//
//	v, err := l.Pop() // v == 2
//	if lfl.IsWouldBlock(err) {
//	    // List is empty
//	}
//
// # Algorithm
//
// The list keeps two atomic pointers, head and tail. Push follows the
// Michael–Scott tail discipline: the new node is linked with a CAS on the
// current last node's next pointer (the linearization point), then tail is
// swung forward. A lagging tail is benign; every operation that observes
// tail.next != nil helps advance it before proceeding.
//
// Pop removes the last node in two phases. It first marks the last node as
// deleted by installing a per-list tombstone in its next pointer with a CAS
// (the linearization point). A marked node can never gain a successor, so a
// concurrent Push racing with the Pop can no longer link behind a node that
// is about to be detached. The marked node is then unlinked: its predecessor
// is found by walking from head, the predecessor's next pointer is cleared,
// and tail is moved back. Any operation that meets a marked tail helps finish
// the unlink first.
//
// InsertAfter walks from head to the first live node whose value equals the
// pivot and publishes the new node with a CAS on the pivot's next pointer.
//
// # Progress
//
// Push is lock-free: a failed CAS means another operation made progress.
// Pop and InsertAfter are obstruction-free: Pop must walk from head to find
// the predecessor of tail, and under a continuous stream of pushes it may
// retry indefinitely. [Builder.MaxRetries] bounds the number of failed rounds;
// when the bound is hit, Pop and InsertAfter give up with [ErrWouldBlock].
//
// # Memory Reclamation
//
// Nodes are reclaimed by the garbage collector and are never recycled, so a
// pointer observed by one goroutine cannot be reused for a different node
// while that goroutine still holds it. This rules out ABA on the head, tail
// and next CAS operations without tagged pointers or hazard pointers.
//
// # Element Values
//
// Nil element values (nil pointers, interfaces, maps, slices, channels and
// functions) are rejected with [ErrNilElement]. An empty list is reported
// through [ErrWouldBlock], never through a zero value.
//
// # Error Handling
//
// Pop returns [ErrWouldBlock] when the list is empty. This error is sourced
// from [code.hybscloud.com/iox] and is a control flow signal, not a failure:
//
//	lfl.IsWouldBlock(err)  // true if list empty (or retry bound hit)
//	lfl.IsSemantic(err)    // true if control flow signal
//	lfl.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Operations on a closed list return [ErrClosed].
//
// # Size and Iteration
//
// Length and iteration are intentionally not provided. A count would require
// a shared counter updated by every operation, and any snapshot of a
// lock-free list is stale as soon as it is taken. [List.IsEmpty] is advisory.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic flags with explicit memory ordering,
// and [code.hybscloud.com/spin] for CPU pause between failed CAS rounds.
package lfl
