// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package holder owns the single shared list instance served by lfld.
//
// A Holder is an atomic slot that is either empty or holds one list.
// Requests observe a consistent list-or-absent without taking a lock;
// Destroy closes the list it removes, so a handle loaded by an in-flight
// request is rejected rather than silently written to.
package holder

import (
	"errors"
	"fmt"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"go.uber.org/zap"

	"code.hybscloud.com/lfl"
	"code.hybscloud.com/lfl/logger"
)

// ErrNotPresent is returned by data operations when no list is held.
var ErrNotPresent = errors.New("holder: list not present")

// Holder is an atomic slot for one *lfl.List[T].
type Holder[T any] struct {
	slot       atomic.Pointer[lfl.List[T]]
	generation atomix.Uint64
	build      func() *lfl.List[T]
	logger     logger.Logger
}

// Option configures a Holder.
type Option[T any] func(*Holder[T])

// WithLogger sets the logger. Defaults to a noop logger.
func WithLogger[T any](l logger.Logger) Option[T] {
	return func(h *Holder[T]) {
		h.logger = l
	}
}

// New returns an empty Holder that creates lists with build.
func New[T any](build func() *lfl.List[T], opts ...Option[T]) *Holder[T] {
	if build == nil {
		panic("holder: New requires a list constructor")
	}
	h := &Holder[T]{
		build:  build,
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Create installs a new list if the slot is empty.
// Returns true if this call installed the list, false if one was already
// present. Either way the slot holds a list afterwards.
func (h *Holder[T]) Create() bool {
	if h.slot.Load() != nil {
		lifecycleCounter.WithLabelValues("create_noop").Inc()
		return false
	}
	l := h.build()
	if !h.slot.CompareAndSwap(nil, l) {
		l.Close()
		lifecycleCounter.WithLabelValues("create_noop").Inc()
		return false
	}
	gen := h.generation.AddAcqRel(1)
	lifecycleCounter.WithLabelValues("create").Inc()
	h.logger.Info("list created", zap.Uint64("generation", gen))
	return true
}

// Destroy empties the slot and closes the removed list.
// Returns false if the slot was already empty.
func (h *Holder[T]) Destroy() bool {
	l := h.slot.Swap(nil)
	if l == nil {
		lifecycleCounter.WithLabelValues("destroy_noop").Inc()
		return false
	}
	l.Close()
	lifecycleCounter.WithLabelValues("destroy").Inc()
	h.logger.Info("list destroyed", zap.Uint64("generation", h.generation.LoadAcquire()))
	return true
}

// List returns the held list, or nil.
func (h *Holder[T]) List() *lfl.List[T] {
	return h.slot.Load()
}

// Generation returns how many lists this holder has installed.
func (h *Holder[T]) Generation() uint64 {
	return h.generation.LoadAcquire()
}

// Push appends value to the held list.
func (h *Holder[T]) Push(value T) error {
	l := h.slot.Load()
	if l == nil {
		observe(opPush, ErrNotPresent)
		return ErrNotPresent
	}
	err := translate(l.Push(value))
	observe(opPush, err)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// Pop removes the tail of the held list.
// Returns lfl.ErrWouldBlock when the list is empty.
func (h *Holder[T]) Pop() (T, error) {
	var zero T
	l := h.slot.Load()
	if l == nil {
		observe(opPop, ErrNotPresent)
		return zero, ErrNotPresent
	}
	v, err := l.Pop()
	err = translate(err)
	observe(opPop, err)
	if err != nil {
		return zero, fmt.Errorf("pop: %w", err)
	}
	return v, nil
}

// InsertAfter splices value after the first element equal to pivot.
func (h *Holder[T]) InsertAfter(value, pivot T) (bool, error) {
	l := h.slot.Load()
	if l == nil {
		observe(opInsertAfter, ErrNotPresent)
		return false, ErrNotPresent
	}
	ok, err := l.InsertAfter(value, pivot)
	err = translate(err)
	switch {
	case err != nil:
		observe(opInsertAfter, err)
		return false, fmt.Errorf("insert after: %w", err)
	case !ok:
		operationCounter.WithLabelValues(opInsertAfter, outcomeNotFound).Inc()
	default:
		operationCounter.WithLabelValues(opInsertAfter, outcomeOK).Inc()
	}
	return ok, nil
}

// translate maps a list closed under a loaded handle to ErrNotPresent:
// the list was destroyed between the slot load and the operation.
func translate(err error) error {
	if errors.Is(err, lfl.ErrClosed) {
		return ErrNotPresent
	}
	return err
}
