package orchestration

import "time"

// ProgressUpdate describes the benchmark's position when a generator starts.
type ProgressUpdate struct {
	// Completed is the number of generators already finished.
	Completed int
	// Total is the number of generators in the run.
	Total int
	// Generator is the name of the generator about to run.
	Generator string
	// Elapsed is the time spent since the run started.
	Elapsed time.Duration
}

// Fraction returns the completed share of the run in [0, 1].
func (u ProgressUpdate) Fraction() float64 {
	if u.Total <= 0 {
		return 0
	}
	return float64(u.Completed) / float64(u.Total)
}

// progressTracker produces ProgressUpdate values for a sequential run.
type progressTracker struct {
	reporter  ProgressReporter
	total     int
	completed int
	start     time.Time
}

func newProgressTracker(reporter ProgressReporter, total int) *progressTracker {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	reporter.Start(total)
	return &progressTracker{reporter: reporter, total: total, start: time.Now()}
}

func (p *progressTracker) begin(name string) {
	p.reporter.Update(ProgressUpdate{
		Completed: p.completed,
		Total:     p.total,
		Generator: name,
		Elapsed:   time.Since(p.start),
	})
}

func (p *progressTracker) finish() {
	p.completed++
}

func (p *progressTracker) stop() {
	p.reporter.Stop()
}
