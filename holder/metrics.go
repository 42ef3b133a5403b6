// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package holder

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"code.hybscloud.com/lfl"
)

const (
	opPush        = "push"
	opPop         = "pop"
	opInsertAfter = "insert_after"

	outcomeOK         = "ok"
	outcomeEmpty      = "empty"
	outcomeNotFound   = "not_found"
	outcomeNotPresent = "not_present"
	outcomeError      = "error"
)

var (
	operationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lfl",
		Name:      "list_operations_total",
		Help:      "The total number of list operations by kind and outcome.",
	}, []string{"operation", "outcome"})

	lifecycleCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lfl",
		Name:      "list_lifecycle_total",
		Help:      "The total number of create and destroy requests, including no-ops.",
	}, []string{"event"})
)

func observe(op string, err error) {
	operationCounter.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrNotPresent):
		return outcomeNotPresent
	case lfl.IsWouldBlock(err):
		return outcomeEmpty
	default:
		return outcomeError
	}
}
