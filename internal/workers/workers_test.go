// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/models"
)

// recordingWorker appends its events to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Run(context.Context) {
	*r.log = append(*r.log, "run "+r.id)
}

func (r *recordingWorker) Stop() {
	*r.log = append(*r.log, "stop "+r.id)
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		&recordingWorker{id: "b", log: &log},
	)

	ws.Run(context.Background())
	if !ws.Running() {
		t.Fatal("expected workers to be running")
	}
	ws.Stop()
	if ws.Running() {
		t.Fatal("expected workers to be stopped")
	}

	expected := []string{"run a", "run b", "stop b", "stop a"}
	if !equal(log, expected) {
		t.Errorf("expected %v, got %v", expected, log)
	}
}

func TestWorkers_RunTwiceStartsOnce(t *testing.T) {
	var log []string
	ws := NewWorkers(&recordingWorker{id: "a", log: &log})

	ws.Run(context.Background())
	ws.Run(context.Background())

	if len(log) != 1 {
		t.Errorf("expected a single start, got %v", log)
	}
}

func TestWorkers_StopWithoutRun(t *testing.T) {
	var log []string
	ws := NewWorkers(&recordingWorker{id: "a", log: &log})

	ws.Stop()

	if len(log) != 0 {
		t.Errorf("expected no calls, got %v", log)
	}
}

func TestWorkers_RestartAfterStop(t *testing.T) {
	var log []string
	ws := NewWorkers(&recordingWorker{id: "a", log: &log})

	ws.Run(context.Background())
	ws.Stop()
	ws.Run(context.Background())

	expected := []string{"run a", "stop a", "run a"}
	if !equal(log, expected) {
		t.Errorf("expected %v, got %v", expected, log)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// no workers is not an error
	ws.Run(context.Background())
	ws.Stop()
}

type fakeWatchJob struct {
	starts   int
	stops    int
	interval time.Duration
	notify   service.DueNotifier
}

func (f *fakeWatchJob) Start(_ context.Context, interval time.Duration, notify service.DueNotifier) {
	f.starts++
	f.interval = interval
	f.notify = notify
}

func (f *fakeWatchJob) Stop() {
	f.stops++
}

func TestWateringWatcher_DelegatesToJob(t *testing.T) {
	job := &fakeWatchJob{}
	var got []models.Plant
	w := NewWateringWatcher(job, time.Minute, func(due []models.Plant) { got = due })

	w.Run(context.Background())
	if job.starts != 1 || job.interval != time.Minute {
		t.Fatalf("unexpected start: starts=%d interval=%v", job.starts, job.interval)
	}

	job.notify([]models.Plant{{ID: 1}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("notify was not forwarded, got %v", got)
	}

	w.Stop()
	if job.stops != 1 {
		t.Errorf("expected one stop, got %d", job.stops)
	}
}
