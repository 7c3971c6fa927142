package morphtest

import (
	"sync"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// Call records one invocation of a spied update function.
type Call struct {
	// Node is the node the view passed in. Nil in pure mode.
	Node *vdom.VNode

	// Snapshot is a copy of Node taken before the wrapped function ran.
	Snapshot *vdom.VNode

	// State is a copy of the state the view passed in.
	State morphed.State

	// Result and Err are what the wrapped function returned.
	Result *vdom.VNode
	Err    error
}

// Spy records calls to an update function.
type Spy struct {
	mu    sync.Mutex
	fn    morphed.UpdateFunc
	calls []Call
}

// NewSpy wraps fn. A nil fn returns (nil, nil) for every call.
func NewSpy(fn morphed.UpdateFunc) *Spy {
	return &Spy{fn: fn}
}

// MutateSpy wraps an in-place mutation, as morphed.Mutate does.
func MutateSpy(fn func(node *vdom.VNode, state morphed.State)) *Spy {
	return NewSpy(morphed.Mutate(fn))
}

// RenderSpy wraps a tree-returning function, as morphed.Render does.
func RenderSpy(fn func(state morphed.State) *vdom.VNode) *Spy {
	return NewSpy(morphed.Render(fn))
}

// Func returns the update function to hand to morphed.New.
func (s *Spy) Func() morphed.UpdateFunc {
	return s.call
}

func (s *Spy) call(node *vdom.VNode, state morphed.State) (*vdom.VNode, error) {
	c := Call{
		Node:     node,
		Snapshot: node.Clone(),
		State:    state.Clone(),
	}
	if s.fn != nil {
		c.Result, c.Err = s.fn(node, state)
	}

	s.mu.Lock()
	s.calls = append(s.calls, c)
	s.mu.Unlock()

	return c.Result, c.Err
}

// Calls returns every recorded call in order.
func (s *Spy) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of recorded calls.
func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastCall returns the most recent call, or false if there was none.
func (s *Spy) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

// LastState returns the state of the most recent call, or nil.
func (s *Spy) LastState() morphed.State {
	c, ok := s.LastCall()
	if !ok {
		return nil
	}
	return c.State
}

// Reset forgets recorded calls.
func (s *Spy) Reset() {
	s.mu.Lock()
	s.calls = nil
	s.mu.Unlock()
}
