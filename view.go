package morphed

import (
	"context"
	"time"

	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/morph"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// =============================================================================
// Errors
// =============================================================================

// ErrInvalidArgument is matched (errors.Is) by every construction error.
var ErrInvalidArgument error = errors.InvalidArgument

// ErrNilCandidate is returned by a pure-mode pass whose update function
// returned no tree.
var ErrNilCandidate error = errors.New("M101")

// =============================================================================
// View
// =============================================================================

// View owns a live tree and a state, and reconciles the tree with the
// output of its update function on demand.
//
// Elements carrying the ignored attribute are never morphed, removed or
// replaced. When the candidate has no counterpart for one, or a node of
// another tag in its place, the ignored element stays at its index and the
// candidate's nodes are placed around it.
//
// A View is not safe for concurrent use. Calling its methods from inside
// the update function is not supported and not guarded against.
type View struct {
	node     *vdom.VNode
	template *vdom.VNode
	update   UpdateFunc
	state    State
	config   Config
	morph    morph.Options
}

// New creates a view over node and renders it once, so the live tree
// reflects the initial state when New returns.
//
// New fails with an error matching ErrInvalidArgument when node is nil or
// not a recognisable node, or when update is nil. An error from the first
// pass is returned as is.
func New(node *vdom.VNode, update UpdateFunc, opts ...Option) (*View, error) {
	if node == nil {
		return nil, errors.New("M001")
	}
	if node.NodeName() == "" {
		return nil, errors.New("M002")
	}
	if update == nil {
		return nil, errors.New("M003")
	}

	cfg := resolveConfig(opts)

	v := &View{
		node:   node,
		update: update,
		config: cfg,
		morph:  cfg.Morph,
	}
	v.morph.OnBeforeElUpdated = composeBeforeElUpdated(cfg.IgnoredAttribute, cfg.Morph.OnBeforeElUpdated)
	v.morph.OnBeforeNodeDiscarded = composeBeforeNodeDiscarded(cfg.IgnoredAttribute, cfg.Morph.OnBeforeNodeDiscarded)

	if cfg.Clone {
		assigned := vdom.AssignIDs(v.node, cfg.IgnoredAttribute, cfg.IDs)
		if len(assigned) > 0 {
			cfg.Logger.Debug("morphed: assigned ids to ignored elements",
				"attribute", cfg.IgnoredAttribute,
				"count", len(assigned),
			)
		}
		v.template = v.node.Clone()
	}
	v.state = cfg.InitialState.Clone()

	if err := v.Update(); err != nil {
		return nil, err
	}
	return v, nil
}

// Update runs one pass: build a candidate from the current state and
// reconcile the live tree with it.
func (v *View) Update() error {
	return v.UpdateContext(context.Background())
}

// UpdateContext is like Update. ctx is handed to observers, so a pass can
// be attributed to the caller's trace.
func (v *View) UpdateContext(ctx context.Context) error {
	start := time.Now()
	report := UpdateReport{Mode: v.Mode(), Start: start}

	candidate, err := v.candidate()
	if err != nil {
		report.Duration = time.Since(start)
		report.Err = err
		v.notify(ctx, report)
		v.config.Logger.Debug("morphed: update failed", "mode", report.Mode, "error", err)
		return err
	}

	prev := v.node
	res := morph.Morph(v.node, candidate, v.morph)
	v.node = res.Node

	report.Duration = time.Since(start)
	report.Patches = res.Patches
	report.Skipped = res.Skipped
	report.Replaced = res.Node != prev
	v.notify(ctx, report)

	v.config.Logger.Debug("morphed: update",
		"mode", report.Mode,
		"patches", len(res.Patches),
		"skipped", res.Skipped,
		"replaced", report.Replaced,
		"duration", report.Duration,
	)
	return nil
}

// candidate produces the tree the live tree is reconciled against.
func (v *View) candidate() (*vdom.VNode, error) {
	if v.config.Clone {
		node := v.template.Clone()
		if _, err := v.update(node, v.state); err != nil {
			return nil, err
		}
		return node, nil
	}

	node, err := v.update(nil, v.state)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, ErrNilCandidate
	}
	return node, nil
}

func (v *View) notify(ctx context.Context, report UpdateReport) {
	for _, o := range v.config.Observers {
		o.ObserveUpdate(ctx, report)
	}
}

// SetState merges partial into the current state and runs a pass. Keys
// absent from partial keep their values.
func (v *View) SetState(partial State) error {
	return v.SetStateContext(context.Background(), partial)
}

// SetStateContext is like SetState with a context for observers.
func (v *View) SetStateContext(ctx context.Context, partial State) error {
	v.state = v.state.Merge(partial)
	return v.UpdateContext(ctx)
}

// ReplaceState discards the current state, replaces it with a copy of
// full and runs a pass.
func (v *View) ReplaceState(full State) error {
	return v.ReplaceStateContext(context.Background(), full)
}

// ReplaceStateContext is like ReplaceState with a context for observers.
func (v *View) ReplaceStateContext(ctx context.Context, full State) error {
	v.state = full.Clone()
	return v.UpdateContext(ctx)
}

// =============================================================================
// Accessors
// =============================================================================

// Node returns the live root. It changes only when a pass had to replace
// the root itself.
func (v *View) Node() *vdom.VNode {
	return v.node
}

// State returns a copy of the current state.
func (v *View) State() State {
	return v.state.Clone()
}

// Template returns a copy of the template tree, or nil in pure mode.
func (v *View) Template() *vdom.VNode {
	return v.template.Clone()
}

// Mode reports whether the view copies its template (ModeClone) or uses
// returned trees (ModePure).
func (v *View) Mode() Mode {
	if v.config.Clone {
		return ModeClone
	}
	return ModePure
}

// IgnoredAttribute returns the attribute that marks ignored subtrees.
func (v *View) IgnoredAttribute() string {
	return v.config.IgnoredAttribute
}
