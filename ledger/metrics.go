// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bitmark-inc/blindd/fault"
)

const (
	metricsNamespace = "blindd"
	metricsSubsystem = "ledger"
)

var (
	appliedOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "applied_operations_total",
		Help:      "Operations applied, by type.",
	}, []string{"type"})

	rejectedTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "rejected_transactions_total",
		Help:      "Transactions rejected, by error class.",
	}, []string{"class"})

	feesCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "fees_collected_total",
		Help:      "Fees credited to the committee account, by asset.",
	}, []string{"asset"})

	applyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "apply_duration_seconds",
		Help:      "Time taken to apply a transaction.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	blindedOutputs = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "blinded_outputs",
		Help:      "Live blinded outputs.",
	})
)

// label for the rejected counter
func errorClass(err error) string {
	switch {
	case fault.IsErrFatal(err):
		return "fatal"
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrNotFound(err):
		return "not_found"
	case fault.IsErrProcess(err):
		return "process"
	case fault.IsErrRange(err), fault.IsErrLength(err):
		return "range"
	case fault.IsErrRecord(err):
		return "record"
	case fault.IsErrInvalid(err):
		return "invalid"
	default:
		return "other"
	}
}
