package morphtest

import (
	"context"
	"sync"

	"github.com/vango-dev/morphed"
)

// Recorder is a morphed.Observer that keeps every report it receives.
// The zero value is ready to use.
type Recorder struct {
	mu      sync.Mutex
	reports []morphed.UpdateReport
}

// ObserveUpdate implements morphed.Observer.
func (r *Recorder) ObserveUpdate(_ context.Context, report morphed.UpdateReport) {
	r.mu.Lock()
	r.reports = append(r.reports, report)
	r.mu.Unlock()
}

// Reports returns every report in order.
func (r *Recorder) Reports() []morphed.UpdateReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]morphed.UpdateReport, len(r.reports))
	copy(out, r.reports)
	return out
}

// Len returns the number of reports.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Last returns the most recent report, or the zero report.
func (r *Recorder) Last() morphed.UpdateReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.reports) == 0 {
		return morphed.UpdateReport{}
	}
	return r.reports[len(r.reports)-1]
}
