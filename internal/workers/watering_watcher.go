// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/riegum-client/internal/service"
)

// WateringWatcher polls the plants that need water and hands them to
// notify, every interval, while it runs.
type WateringWatcher struct {
	job      service.ClientWateringWatchJob
	interval time.Duration
	notify   service.DueNotifier
}

func NewWateringWatcher(job service.ClientWateringWatchJob, interval time.Duration, notify service.DueNotifier) *WateringWatcher {
	return &WateringWatcher{job: job, interval: interval, notify: notify}
}

func (w *WateringWatcher) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.notify)
}

func (w *WateringWatcher) Stop() {
	w.job.Stop()
}
