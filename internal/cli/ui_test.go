package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibfinder/internal/orchestration"
)

// MockSpinner for testing
type MockSpinner struct {
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestCLIProgressReporter(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(io.Writer) Spinner {
		return mockS
	}

	r := NewCLIProgressReporter(io.Discard)
	r.Start(6)
	r.Update(orchestration.ProgressUpdate{Completed: 3, Total: 6, Generator: "arbitrary/iterative"})
	r.Stop()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
	if len(mockS.suffixes) != 2 {
		t.Fatalf("expected 2 suffix updates, got %d", len(mockS.suffixes))
	}
	last := mockS.suffixes[1]
	if !strings.Contains(last, "3/6 arbitrary/iterative") {
		t.Errorf("suffix %q should name the running generator", last)
	}
	if !strings.Contains(last, progressBar(0.5, ProgressBarWidth)) {
		t.Errorf("suffix %q should show a half-full bar", last)
	}
}

func TestCLIProgressReporter_UpdateBeforeStart(t *testing.T) {
	t.Parallel()
	r := NewCLIProgressReporter(io.Discard)
	// Neither call may panic without a running spinner.
	r.Update(orchestration.ProgressUpdate{Completed: 1, Total: 6})
	r.Stop()
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{1.5, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, 4); got != tt.want {
			t.Errorf("progressBar(%v, 4) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}
