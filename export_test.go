// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfl

import "fmt"

// Values returns the live elements from head to tail.
// Only meaningful while no operation is in flight.
func Values[T any](l *List[T]) []T {
	var out []T
	for p := l.head.Load(); p != nil; {
		next := p.next.Load()
		if next == l.tomb {
			break
		}
		out = append(out, p.value)
		p = next
	}
	return out
}

// Ends returns the values held by the head and tail nodes.
// ok is false when either pointer is nil.
func Ends[T any](l *List[T]) (head, tail T, ok bool) {
	h, t := l.head.Load(), l.tail.Load()
	if h == nil || t == nil {
		return head, tail, false
	}
	return h.value, t.value, true
}

// CheckInvariants verifies the quiescent structure of l:
// head and tail are nil together, the chain from head is acyclic,
// contains no marked node, and ends at tail.
func CheckInvariants[T any](l *List[T]) error {
	h, t := l.head.Load(), l.tail.Load()
	if (h == nil) != (t == nil) {
		return fmt.Errorf("head nil=%v, tail nil=%v", h == nil, t == nil)
	}
	if h == nil {
		return nil
	}

	seen := make(map[*node[T]]struct{})
	var last *node[T]
	for p := h; p != nil; p = p.next.Load() {
		if p == l.tomb {
			return fmt.Errorf("marked node %v still reachable", last.value)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("cycle at node %v", p.value)
		}
		seen[p] = struct{}{}
		last = p
	}
	if last != t {
		return fmt.Errorf("tail %v is not the last node %v", t.value, last.value)
	}
	return nil
}
