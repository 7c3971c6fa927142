package morphed

import (
	"context"
	"time"

	"github.com/vango-dev/morphed/pkg/vdom"
)

// Mode is the update mode a view was built with.
type Mode string

const (
	// ModeClone copies the template tree for every pass.
	ModeClone Mode = "clone"
	// ModePure uses the tree returned by the update function.
	ModePure Mode = "pure"
)

// UpdateReport describes one reconciliation pass.
type UpdateReport struct {
	Mode     Mode
	Start    time.Time
	Duration time.Duration

	// Patches lists the changes applied to the live tree.
	Patches []vdom.Patch

	// Skipped counts element pairs left untouched, ignored subtrees and
	// pairs refused by a caller hook alike.
	Skipped int

	// Replaced is true when the live root was swapped for a new node.
	Replaced bool

	// Err is the error the pass failed with, if any. Failed passes carry
	// no patches.
	Err error
}

// Observer receives a report after every pass. Observers run
// synchronously on the calling goroutine. ctx is the context given to
// UpdateContext, SetStateContext or ReplaceStateContext, and
// context.Background() otherwise.
type Observer interface {
	ObserveUpdate(ctx context.Context, report UpdateReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, report UpdateReport)

// ObserveUpdate implements Observer.
func (f ObserverFunc) ObserveUpdate(ctx context.Context, report UpdateReport) {
	f(ctx, report)
}
