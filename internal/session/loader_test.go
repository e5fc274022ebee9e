package session

import (
	"errors"
	"testing"
)

func TestLoaderLifecycle(t *testing.T) {
	var l Loader

	if l.Phase() != PhaseIdle {
		t.Errorf("expected idle phase, got %s", l.Phase())
	}

	gen := l.Begin()
	if !l.Loading() {
		t.Error("expected loading after Begin")
	}

	if !l.Succeed(gen) {
		t.Error("expected current generation to be accepted")
	}
	if l.Phase() != PhaseLoaded {
		t.Errorf("expected loaded phase, got %s", l.Phase())
	}
}

func TestLoaderDiscardsStaleResults(t *testing.T) {
	var l Loader

	old := l.Begin()
	l.Reset()

	if l.Succeed(old) {
		t.Error("stale success must be discarded after Reset")
	}
	if l.Fail(old, errors.New("late")) {
		t.Error("stale failure must be discarded after Reset")
	}
	if l.Phase() != PhaseIdle {
		t.Errorf("stale results must not change phase, got %s", l.Phase())
	}
}

func TestLoaderSupersededRequest(t *testing.T) {
	var l Loader

	first := l.Begin()
	second := l.Begin()

	if l.Succeed(first) {
		t.Error("response for a superseded request must be discarded")
	}
	if !l.Succeed(second) {
		t.Error("response for the latest request must be accepted")
	}
}

func TestLoaderFailKeepsError(t *testing.T) {
	var l Loader

	gen := l.Begin()
	wantErr := errors.New("connection refused")
	if !l.Fail(gen, wantErr) {
		t.Fatal("expected current failure to be accepted")
	}

	if l.Phase() != PhaseFailed {
		t.Errorf("expected failed phase, got %s", l.Phase())
	}
	if !errors.Is(l.Err(), wantErr) {
		t.Errorf("expected stored error %v, got %v", wantErr, l.Err())
	}

	// A new attempt clears the error.
	gen = l.Begin()
	if l.Err() != nil {
		t.Errorf("expected error cleared on Begin, got %v", l.Err())
	}
	if !l.Succeed(gen) {
		t.Error("expected retry success to be accepted")
	}
}

func TestLoaderGenerationsAreMonotonic(t *testing.T) {
	var l Loader

	prev := l.Begin()
	for i := 0; i < 10; i++ {
		l.Reset()
		next := l.Begin()
		if next <= prev {
			t.Fatalf("generation %d not greater than %d", next, prev)
		}
		prev = next
	}
}
