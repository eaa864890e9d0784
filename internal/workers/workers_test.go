// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface that counts
// its runs and blocks until the context is cancelled.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(w1, w2, w3)

	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	deadline := time.Now().Add(time.Second)
	for w1.runCount.Load()+w2.runCount.Load()+w3.runCount.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("workers were not started")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount.Load() != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount.Load())
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if ws.Len() != 0 {
		t.Errorf("expected no workers, got %d", ws.Len())
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not block when workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	errBoom := errors.New("boom")
	blocking := &mockWorker{}
	failing := WorkerFunc(func(context.Context) error { return errBoom })

	ws := NewWorkers(blocking, failing)

	err := ws.Run(context.Background())

	if !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}
}

func TestWorkerFunc_Run(t *testing.T) {
	called := false
	w := WorkerFunc(func(context.Context) error {
		called = true
		return nil
	})

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected function to be called")
	}
}
