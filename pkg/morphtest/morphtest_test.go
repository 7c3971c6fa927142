package morphtest_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/pkg/morphtest"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// fakeT captures failures from assertion helpers.
type fakeT struct {
	testing.TB
	failed bool
	msg    string
}

func (f *fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.failed = true
	f.msg = fmt.Sprintf(format, args...)
}

func TestSpyRecordsCalls(t *testing.T) {
	spy := morphtest.MutateSpy(func(n *vdom.VNode, s morphed.State) {
		n.SetText(s.String("title"))
	})
	fn := spy.Func()

	node := vdom.Div(vdom.Text("Old Text"))
	state := morphed.State{"title": "New Text"}
	if _, err := fn(node, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if spy.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", spy.CallCount())
	}
	call, ok := spy.LastCall()
	if !ok {
		t.Fatal("expected a last call")
	}
	if call.Node != node {
		t.Error("Node should be the pointer passed in")
	}
	if got := call.Snapshot.TextContent(); got != "Old Text" {
		t.Errorf("Snapshot text = %q, want %q", got, "Old Text")
	}
	if got := node.TextContent(); got != "New Text" {
		t.Errorf("node text = %q, want %q", got, "New Text")
	}
	if call.State.String("title") != "New Text" {
		t.Errorf("State = %v", call.State)
	}

	// The recorded state is a copy.
	state["title"] = "changed"
	if spy.LastState().String("title") != "New Text" {
		t.Error("recorded state aliases the caller's map")
	}
}

func TestRenderSpy(t *testing.T) {
	spy := morphtest.RenderSpy(func(s morphed.State) *vdom.VNode {
		return vdom.P(s.String("x"))
	})
	got, err := spy.Func()(nil, morphed.State{"x": "y"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TextContent() != "y" {
		t.Errorf("result text = %q", got.TextContent())
	}
	call, _ := spy.LastCall()
	if call.Node != nil || call.Snapshot != nil {
		t.Error("pure calls should record a nil node")
	}
	if call.Result != got {
		t.Error("Result should be the returned node")
	}
}

func TestSpyError(t *testing.T) {
	boom := errors.New("boom")
	spy := morphtest.NewSpy(func(*vdom.VNode, morphed.State) (*vdom.VNode, error) {
		return nil, boom
	})
	_, err := spy.Func()(nil, nil)
	if err != boom {
		t.Errorf("err = %v, want boom", err)
	}
	call, _ := spy.LastCall()
	if call.Err != boom {
		t.Errorf("recorded err = %v", call.Err)
	}
}

func TestSpyNilFunc(t *testing.T) {
	spy := morphtest.NewSpy(nil)
	node, err := spy.Func()(nil, morphed.State{})
	if node != nil || err != nil {
		t.Errorf("got %v, %v", node, err)
	}
	if spy.CallCount() != 1 {
		t.Errorf("CallCount = %d", spy.CallCount())
	}
}

func TestSpyReset(t *testing.T) {
	spy := morphtest.NewSpy(nil)
	fn := spy.Func()
	fn(nil, nil)
	fn(nil, nil)
	if len(spy.Calls()) != 2 {
		t.Fatalf("Calls = %d", len(spy.Calls()))
	}
	spy.Reset()
	if spy.CallCount() != 0 {
		t.Error("Reset should clear calls")
	}
	if _, ok := spy.LastCall(); ok {
		t.Error("LastCall after Reset should report false")
	}
	if spy.LastState() != nil {
		t.Error("LastState after Reset should be nil")
	}
}

func TestRecorder(t *testing.T) {
	rec := &morphtest.Recorder{}
	if rec.Len() != 0 || rec.Last().Mode != "" {
		t.Fatal("zero recorder should be empty")
	}

	rec.ObserveUpdate(context.Background(), morphed.UpdateReport{Mode: morphed.ModeClone})
	rec.ObserveUpdate(context.Background(), morphed.UpdateReport{Mode: morphed.ModePure, Skipped: 2})

	if rec.Len() != 2 {
		t.Fatalf("Len = %d", rec.Len())
	}
	if last := rec.Last(); last.Mode != morphed.ModePure || last.Skipped != 2 {
		t.Errorf("Last = %+v", last)
	}
	if rec.Reports()[0].Mode != morphed.ModeClone {
		t.Error("reports out of order")
	}
}

func TestRenderToString(t *testing.T) {
	node := vdom.Div(
		vdom.Class("container"),
		vdom.H1(vdom.Text("Hello")),
	)
	if got := morphtest.RenderToString(node); got != `<div class="container"><h1>Hello</h1></div>` {
		t.Errorf("RenderToString = %s", got)
	}
}

func TestExpectations(t *testing.T) {
	node := vdom.Div(vdom.ID("root"), vdom.Text("Hello World"))

	tests := []struct {
		name     string
		check    func(t testing.TB)
		wantFail bool
	}{
		{"contains", func(t testing.TB) { morphtest.ExpectContains(t, node, "Hello") }, false},
		{"contains miss", func(t testing.TB) { morphtest.ExpectContains(t, node, "Bye") }, true},
		{"not contains", func(t testing.TB) { morphtest.ExpectNotContains(t, node, "Bye") }, false},
		{"not contains hit", func(t testing.TB) { morphtest.ExpectNotContains(t, node, "World") }, true},
		{"text", func(t testing.TB) { morphtest.ExpectText(t, node, "Hello World") }, false},
		{"text miss", func(t testing.TB) { morphtest.ExpectText(t, node, "Hello") }, true},
		{"html", func(t testing.TB) { morphtest.ExpectHTML(t, node, `<div id="root">Hello World</div>`) }, false},
		{"html miss", func(t testing.TB) { morphtest.ExpectHTML(t, node, `<div></div>`) }, true},
		{"attribute", func(t testing.TB) { morphtest.ExpectAttribute(t, node, "id", "root") }, false},
		{"attribute value", func(t testing.TB) { morphtest.ExpectAttribute(t, node, "id", "other") }, true},
		{"attribute missing", func(t testing.TB) { morphtest.ExpectAttribute(t, node, "class", "") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeT{TB: t}
			tt.check(ft)
			if ft.failed != tt.wantFail {
				t.Errorf("failed = %v, want %v (%s)", ft.failed, tt.wantFail, ft.msg)
			}
		})
	}
}
