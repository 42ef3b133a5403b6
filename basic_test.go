// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfl_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/lfl"
)

// =============================================================================
// Test Helpers
// =============================================================================

func mustPush[T any](t *testing.T, l *lfl.List[T], v T) {
	t.Helper()
	if err := l.Push(v); err != nil {
		t.Fatalf("Push(%v): %v", v, err)
	}
}

func mustPop[T comparable](t *testing.T, l *lfl.List[T], want T) {
	t.Helper()
	got, err := l.Pop()
	if err != nil {
		t.Fatalf("Pop: %v, want %v", err, want)
	}
	if got != want {
		t.Fatalf("Pop: got %v, want %v", got, want)
	}
}

func mustBeEmpty[T any](t *testing.T, l *lfl.List[T]) {
	t.Helper()
	if _, err := l.Pop(); !errors.Is(err, lfl.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
	if !l.IsEmpty() {
		t.Fatalf("IsEmpty: got false, want true")
	}
	checkInvariants(t, l)
}

func checkInvariants[T any](t *testing.T, l *lfl.List[T]) {
	t.Helper()
	if err := lfl.CheckInvariants(l); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func checkValues[T comparable](t *testing.T, l *lfl.List[T], want ...T) {
	t.Helper()
	if got := lfl.Values(l); !slices.Equal(got, want) {
		t.Fatalf("Values: got %v, want %v", got, want)
	}
	checkInvariants(t, l)
}

// =============================================================================
// Push / Pop
// =============================================================================

// TestPushPopRoundTrip verifies push(v); pop() == v on an empty list.
func TestPushPopRoundTrip(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 42)
	mustPop(t, l, 42)
	mustBeEmpty(t, l)
}

// TestTailLIFOSequence runs push(a), push(b), push(c), pop → c, pop → b,
// push(d), pop → d, pop → a, pop → absent.
func TestTailLIFOSequence(t *testing.T) {
	l := lfl.NewList[string]()

	mustPush(t, l, "a")
	mustPush(t, l, "b")
	mustPush(t, l, "c")
	checkValues(t, l, "a", "b", "c")

	mustPop(t, l, "c")
	mustPop(t, l, "b")
	mustPush(t, l, "d")
	checkValues(t, l, "a", "d")

	mustPop(t, l, "d")
	mustPop(t, l, "a")
	mustBeEmpty(t, l)
}

// TestPopEmpty verifies pop on an empty list is absent and leaves it empty.
func TestPopEmpty(t *testing.T) {
	l := lfl.NewList[int]()
	for range 3 {
		v, err := l.Pop()
		if !errors.Is(err, lfl.ErrWouldBlock) {
			t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
		}
		if v != 0 {
			t.Fatalf("Pop on empty: got value %d, want zero", v)
		}
		if !lfl.IsWouldBlock(err) || !lfl.IsSemantic(err) || !lfl.IsNonFailure(err) {
			t.Fatalf("Pop on empty: %v should classify as a non-failure control signal", err)
		}
	}
	mustBeEmpty(t, l)
}

// TestPushIntoEmptySetsHeadAndTail verifies head == tail == new node.
func TestPushIntoEmptySetsHeadAndTail(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 7)

	head, tail, ok := lfl.Ends(l)
	if !ok {
		t.Fatalf("Ends: head or tail nil after push")
	}
	if head != 7 || tail != 7 {
		t.Fatalf("Ends: got head=%d tail=%d, want 7, 7", head, tail)
	}
	if l.IsEmpty() {
		t.Fatalf("IsEmpty: got true after push")
	}
}

// TestPopSoleElementRestoresEmpty verifies head == tail == nil afterwards.
func TestPopSoleElementRestoresEmpty(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 1)
	mustPop(t, l, 1)

	if _, _, ok := lfl.Ends(l); ok {
		t.Fatalf("Ends: head/tail still set after popping the sole element")
	}
	mustBeEmpty(t, l)

	// The list is reusable after draining
	mustPush(t, l, 2)
	mustPop(t, l, 2)
	mustBeEmpty(t, l)
}

// =============================================================================
// InsertAfter
// =============================================================================

// TestInsertAfterMiddle runs push(a), push(b), insertAfter(x, a),
// expecting [a, x, b] and pops b, x, a.
func TestInsertAfterMiddle(t *testing.T) {
	l := lfl.NewList[string]()
	mustPush(t, l, "a")
	mustPush(t, l, "b")

	ok, err := l.InsertAfter("x", "a")
	if err != nil || !ok {
		t.Fatalf("InsertAfter(x, a): got %v, %v, want true, nil", ok, err)
	}
	checkValues(t, l, "a", "x", "b")

	mustPop(t, l, "b")
	mustPop(t, l, "x")
	mustPop(t, l, "a")
	mustBeEmpty(t, l)
}

// TestInsertAfterEmpty verifies insertAfter on an empty list returns false.
func TestInsertAfterEmpty(t *testing.T) {
	l := lfl.NewList[string]()
	ok, err := l.InsertAfter("x", "a")
	if err != nil || ok {
		t.Fatalf("InsertAfter on empty: got %v, %v, want false, nil", ok, err)
	}
	mustBeEmpty(t, l)
}

// TestInsertAfterTailAdvancesTail verifies [a] + insertAfter(x, a) = [a, x]
// with tail at x.
func TestInsertAfterTailAdvancesTail(t *testing.T) {
	l := lfl.NewList[string]()
	mustPush(t, l, "a")

	ok, err := l.InsertAfter("x", "a")
	if err != nil || !ok {
		t.Fatalf("InsertAfter(x, a): got %v, %v, want true, nil", ok, err)
	}
	checkValues(t, l, "a", "x")

	head, tail, _ := lfl.Ends(l)
	if head != "a" || tail != "x" {
		t.Fatalf("Ends: got head=%q tail=%q, want a, x", head, tail)
	}

	// New pushes link behind x
	mustPush(t, l, "b")
	checkValues(t, l, "a", "x", "b")
}

// TestInsertAfterMissingPivot verifies the list is left unchanged.
func TestInsertAfterMissingPivot(t *testing.T) {
	l := lfl.NewList[int]()
	for i := range 5 {
		mustPush(t, l, i)
	}

	ok, err := l.InsertAfter(99, 100)
	if err != nil || ok {
		t.Fatalf("InsertAfter with missing pivot: got %v, %v, want false, nil", ok, err)
	}
	checkValues(t, l, 0, 1, 2, 3, 4)
}

// TestInsertAfterFirstMatch verifies the first equal node is the pivot.
func TestInsertAfterFirstMatch(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 1)
	mustPush(t, l, 2)
	mustPush(t, l, 1)

	if ok, err := l.InsertAfter(5, 1); err != nil || !ok {
		t.Fatalf("InsertAfter(5, 1): got %v, %v", ok, err)
	}
	checkValues(t, l, 1, 5, 2, 1)
}

// TestInsertAfterPoppedPivot verifies a popped node no longer matches.
func TestInsertAfterPoppedPivot(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 1)
	mustPush(t, l, 2)
	mustPop(t, l, 2)

	if ok, err := l.InsertAfter(3, 2); err != nil || ok {
		t.Fatalf("InsertAfter after popped pivot: got %v, %v, want false, nil", ok, err)
	}
	checkValues(t, l, 1)
}

// TestBuildFuncEquality verifies InsertAfter uses the caller's predicate.
func TestBuildFuncEquality(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	l := lfl.BuildFunc[*user](lfl.New(), func(a, b *user) bool { return a.id == b.id })

	alice := &user{1, "alice"}
	bob := &user{2, "bob"}
	mustPush(t, l, alice)
	mustPush(t, l, bob)

	// Structurally equal, different identity
	ok, err := l.InsertAfter(&user{3, "carol"}, &user{id: 1})
	if err != nil || !ok {
		t.Fatalf("InsertAfter by id: got %v, %v, want true, nil", ok, err)
	}

	var names []string
	for _, u := range lfl.Values(l) {
		names = append(names, u.name)
	}
	if got := strings.Join(names, ","); got != "alice,carol,bob" {
		t.Fatalf("Values: got %s, want alice,carol,bob", got)
	}
}

// TestBuildFuncCaseInsensitive exercises a non-identity predicate on strings.
func TestBuildFuncCaseInsensitive(t *testing.T) {
	l := lfl.BuildFunc[string](lfl.New(), strings.EqualFold)
	mustPush(t, l, "Alpha")

	if ok, err := l.InsertAfter("beta", "ALPHA"); err != nil || !ok {
		t.Fatalf("InsertAfter(beta, ALPHA): got %v, %v", ok, err)
	}
	checkValues(t, l, "Alpha", "beta")
}

// =============================================================================
// Nil Elements
// =============================================================================

// TestNilElementsRejected verifies nil values never enter the list.
func TestNilElementsRejected(t *testing.T) {
	t.Run("Pointer", func(t *testing.T) {
		l := lfl.NewList[*int]()
		if err := l.Push(nil); !errors.Is(err, lfl.ErrNilElement) {
			t.Fatalf("Push(nil): got %v, want ErrNilElement", err)
		}
		v := 1
		mustPush(t, l, &v)
		if _, err := l.InsertAfter(nil, &v); !errors.Is(err, lfl.ErrNilElement) {
			t.Fatalf("InsertAfter(nil, p): got %v, want ErrNilElement", err)
		}
		checkValues(t, l, &v)
	})

	t.Run("Interface", func(t *testing.T) {
		l := lfl.NewList[any]()
		if err := l.Push(nil); !errors.Is(err, lfl.ErrNilElement) {
			t.Fatalf("Push(nil): got %v, want ErrNilElement", err)
		}
		var p *int
		if err := l.Push(p); !errors.Is(err, lfl.ErrNilElement) {
			t.Fatalf("Push(typed nil): got %v, want ErrNilElement", err)
		}
		// Non-nilable dynamic types pass through
		mustPush(t, l, any(3))
		mustPush(t, l, any("s"))
		mustPop(t, l, any("s"))
		mustPop(t, l, any(3))
	})

	t.Run("Slice", func(t *testing.T) {
		l := lfl.BuildFunc[[]byte](lfl.New(), func(a, b []byte) bool { return string(a) == string(b) })
		if err := l.Push(nil); !errors.Is(err, lfl.ErrNilElement) {
			t.Fatalf("Push(nil slice): got %v, want ErrNilElement", err)
		}
		if err := l.Push([]byte{}); err != nil {
			t.Fatalf("Push(empty slice): %v", err)
		}
	})

	t.Run("ZeroValue", func(t *testing.T) {
		l := lfl.NewList[int]()
		mustPush(t, l, 0)
		mustPop(t, l, 0)
		mustBeEmpty(t, l)
	})
}

// =============================================================================
// Close
// =============================================================================

// TestCloseRejectsOperations verifies create; push(1); destroy; push(1) → rejected.
func TestCloseRejectsOperations(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 1)
	l.Close()

	if !l.Closed() {
		t.Fatalf("Closed: got false after Close")
	}
	if err := l.Push(1); !errors.Is(err, lfl.ErrClosed) {
		t.Fatalf("Push after Close: got %v, want ErrClosed", err)
	}
	if _, err := l.Pop(); !errors.Is(err, lfl.ErrClosed) {
		t.Fatalf("Pop after Close: got %v, want ErrClosed", err)
	}
	if _, err := l.InsertAfter(2, 1); !errors.Is(err, lfl.ErrClosed) {
		t.Fatalf("InsertAfter after Close: got %v, want ErrClosed", err)
	}
	if lfl.IsNonFailure(lfl.ErrClosed) {
		t.Fatalf("ErrClosed must classify as a failure")
	}
	if !l.IsEmpty() {
		t.Fatalf("IsEmpty after Close: got false")
	}

	// Idempotent
	l.Close()
	checkInvariants(t, l)
}

// TestCreateDestroyCreate verifies a fresh list after destroy is empty.
func TestCreateDestroyCreate(t *testing.T) {
	l := lfl.NewList[int]()
	mustPush(t, l, 1)
	l.Close()

	l = lfl.NewList[int]()
	mustBeEmpty(t, l)
}

// =============================================================================
// Builder
// =============================================================================

// TestBuilderMaxRetries verifies bounded lists behave normally when uncontended.
func TestBuilderMaxRetries(t *testing.T) {
	l := lfl.Build[int](lfl.New().MaxRetries(1))
	for i := range 10 {
		mustPush(t, l, i)
	}
	if ok, err := l.InsertAfter(100, 4); err != nil || !ok {
		t.Fatalf("InsertAfter: got %v, %v", ok, err)
	}
	for _, want := range []int{9, 8, 7, 6, 5, 100, 4, 3, 2, 1, 0} {
		mustPop(t, l, want)
	}
	mustBeEmpty(t, l)
}

// TestBuilderPanics verifies invalid configuration is rejected eagerly.
func TestBuilderPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"NegativeMaxRetries", func() { lfl.New().MaxRetries(-1) }},
		{"NilEqual", func() { lfl.BuildFunc[int](lfl.New(), nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

// TestContainerInterface verifies *List satisfies the interfaces.
func TestContainerInterface(t *testing.T) {
	var c lfl.Container[int] = lfl.NewList[int]()
	var p lfl.Pusher[int] = c
	var q lfl.Popper[int] = c
	var ins lfl.Inserter[int] = c

	if err := p.Push(1); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if ok, err := ins.InsertAfter(2, 1); err != nil || !ok {
		t.Fatalf("InsertAfter: %v, %v", ok, err)
	}
	if v, err := q.Pop(); err != nil || v != 2 {
		t.Fatalf("Pop: got %d, %v, want 2", v, err)
	}
	if c.IsEmpty() {
		t.Fatalf("IsEmpty: got true, want false")
	}
}
