package morphed_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/morph"
	"github.com/vango-dev/morphed/pkg/morphtest"
	"github.com/vango-dev/morphed/pkg/vdom"
)

func noop(*vdom.VNode, morphed.State) (*vdom.VNode, error) { return nil, nil }

func TestNewInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		node   *vdom.VNode
		update morphed.UpdateFunc
		code   string
	}{
		{"nil node", nil, noop, "M001"},
		{"node without kind", &vdom.VNode{}, noop, "M002"},
		{"element without tag", &vdom.VNode{Kind: vdom.KindElement}, noop, "M002"},
		{"nil update", vdom.Div(), nil, "M003"},
		{"nil mutate", vdom.Div(), morphed.Mutate(nil), "M003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := morphed.New(tt.node, tt.update)
			if view != nil {
				t.Error("expected no view")
			}
			if !stderrors.Is(err, morphed.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != tt.code {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestNewRejectsNodeBeforeUpdate(t *testing.T) {
	// Both arguments are bad; the node is reported.
	_, err := morphed.New(nil, nil)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "M001" {
		t.Errorf("err = %v, want M001", err)
	}
}

func TestNewAcceptsEveryNodeKind(t *testing.T) {
	nodes := []*vdom.VNode{
		vdom.Div(),
		vdom.Text("x"),
		vdom.Comment("c"),
		vdom.Fragment(vdom.P("a")),
		vdom.Raw("<b>x</b>"),
	}
	for _, n := range nodes {
		if _, err := morphed.New(n, noop); err != nil {
			t.Errorf("New(%s): %v", n.NodeName(), err)
		}
	}
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name    string
		initial morphed.State
		want    morphed.State
	}{
		{"default", nil, morphed.State{}},
		{"empty", morphed.State{}, morphed.State{}},
		{"values", morphed.State{"a": 1, "b": "two"}, morphed.State{"a": 1, "b": "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []morphed.Option
			if tt.initial != nil {
				opts = append(opts, morphed.WithInitialState(tt.initial))
			}
			view, err := morphed.New(vdom.Div(), noop, opts...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := view.State(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("State = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitialStateIsCopied(t *testing.T) {
	initial := morphed.State{"a": 1}
	view, err := morphed.New(vdom.Div(), noop, morphed.WithInitialState(initial))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	initial["a"] = 2
	view.State()["a"] = 3

	if got := view.State()["a"]; got != 1 {
		t.Errorf("state[a] = %v, want 1", got)
	}
}

func TestSetStateMerges(t *testing.T) {
	view, err := morphed.New(vdom.Div(), noop, morphed.WithInitialState(morphed.State{"a": 1, "b": 2}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := view.SetState(morphed.State{"b": 3, "c": 4}); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	want := morphed.State{"a": 1, "b": 3, "c": 4}
	if got := view.State(); !reflect.DeepEqual(got, want) {
		t.Errorf("State = %v, want %v", got, want)
	}
}

func TestReplaceState(t *testing.T) {
	view, err := morphed.New(vdom.Div(), noop, morphed.WithInitialState(morphed.State{"a": 1, "b": 2}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	full := morphed.State{"c": 5}
	if err := view.ReplaceState(full); err != nil {
		t.Fatalf("ReplaceState: %v", err)
	}
	if got := view.State(); !reflect.DeepEqual(got, full) {
		t.Errorf("State = %v, want %v", got, full)
	}

	full["d"] = 6
	if _, ok := view.State()["d"]; ok {
		t.Error("ReplaceState should copy its argument")
	}
}

func TestUpdateFunctionCalledOncePerOperation(t *testing.T) {
	spy := morphtest.NewSpy(noop)
	view, err := morphed.New(vdom.Div(), spy.Func())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if spy.CallCount() != 1 {
		t.Fatalf("after New: calls = %d, want 1", spy.CallCount())
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"Update", view.Update},
		{"SetState", func() error { return view.SetState(morphed.State{"a": 1}) }},
		{"ReplaceState", func() error { return view.ReplaceState(morphed.State{"b": 2}) }},
	}
	for i, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got, want := spy.CallCount(), i+2; got != want {
			t.Errorf("after %s: calls = %d, want %d", step.name, got, want)
		}
	}

	if got := spy.LastState(); !reflect.DeepEqual(got, morphed.State{"b": 2}) {
		t.Errorf("last state = %v", got)
	}
}

func TestCloneModeEndToEnd(t *testing.T) {
	root := vdom.Div(vdom.Text("Old Text"))
	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		n.SetText("New Text")
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	morphtest.ExpectText(t, view.Node(), "New Text")
	if view.Node() != root {
		t.Error("root identity should be preserved")
	}
}

func TestCloneModeReceivesFreshTemplate(t *testing.T) {
	root := vdom.Div(vdom.Text("Old Text"))
	spy := morphtest.MutateSpy(func(n *vdom.VNode, s morphed.State) {
		n.SetText(s.String("text"))
	})

	view, err := morphed.New(root, spy.Func(), morphed.WithInitialState(morphed.State{"text": "one"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, text := range []string{"two", "three"} {
		if err := view.SetState(morphed.State{"text": text}); err != nil {
			t.Fatalf("SetState: %v", err)
		}
		morphtest.ExpectText(t, view.Node(), text)
	}

	calls := spy.Calls()
	if len(calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(calls))
	}
	seen := map[*vdom.VNode]bool{}
	for i, c := range calls {
		if c.Node == view.Node() {
			t.Errorf("call %d received the live tree", i)
		}
		if seen[c.Node] {
			t.Errorf("call %d received a node from an earlier call", i)
		}
		seen[c.Node] = true
		if got := c.Snapshot.TextContent(); got != "Old Text" {
			t.Errorf("call %d received %q, want the template text", i, got)
		}
	}

	morphtest.ExpectText(t, view.Template(), "Old Text")
}

func TestPureModeReceivesState(t *testing.T) {
	spy := morphtest.RenderSpy(func(s morphed.State) *vdom.VNode {
		return vdom.Div(vdom.P(s.String("title")))
	})
	root := vdom.Div(vdom.P("a"), vdom.Span("x"))

	view, err := morphed.New(root, spy.Func(),
		morphed.WithClone(false),
		morphed.WithInitialState(morphed.State{"title": "b"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	call, _ := spy.LastCall()
	if call.Node != nil {
		t.Error("pure mode should pass no node")
	}
	if !reflect.DeepEqual(call.State, morphed.State{"title": "b"}) {
		t.Errorf("state = %v", call.State)
	}

	// The returned tree replaces the content; nothing of the old children
	// is merged in.
	morphtest.ExpectHTML(t, view.Node(), "<div><p>b</p></div>")
	if view.Node() != root {
		t.Error("root identity should be preserved")
	}
	if view.Template() != nil {
		t.Error("pure mode keeps no template")
	}
	if view.Mode() != morphed.ModePure {
		t.Errorf("Mode = %v", view.Mode())
	}
}

func TestPureModeNilCandidate(t *testing.T) {
	_, err := morphed.New(vdom.Div(), morphed.Render(func(morphed.State) *vdom.VNode {
		return nil
	}), morphed.WithClone(false))
	if !stderrors.Is(err, morphed.ErrNilCandidate) {
		t.Fatalf("err = %v, want ErrNilCandidate", err)
	}
	if !stderrors.Is(err, errors.Runtime) {
		t.Errorf("err = %v should be a runtime error", err)
	}
	if stderrors.Is(err, morphed.ErrInvalidArgument) {
		t.Errorf("err = %v should not be an invalid argument error", err)
	}
}

func TestPureModeReplacesRoot(t *testing.T) {
	rec := &morphtest.Recorder{}
	root := vdom.Div(vdom.Text("x"))
	view, err := morphed.New(root, morphed.Render(func(morphed.State) *vdom.VNode {
		return vdom.Span(vdom.Text("y"))
	}), morphed.WithClone(false), morphed.WithObserver(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if view.Node() == root || view.Node().Tag != "span" {
		t.Errorf("Node = %v, want a new span", view.Node())
	}
	if !rec.Last().Replaced {
		t.Error("report should mark the root as replaced")
	}
}

func TestIgnoredChildEndToEnd(t *testing.T) {
	root := vdom.Div(
		vdom.Div(vdom.Flag(morphed.DefaultIgnoredAttribute), vdom.Text("Ignored")),
		vdom.Div(vdom.Text("Normal")),
	)
	ignored, normal := root.Children[0], root.Children[1]

	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		for _, c := range n.Children {
			c.SetText("Changed")
		}
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	live := view.Node()
	if live.Children[0] != ignored || live.Children[1] != normal {
		t.Fatal("children should keep their identity")
	}
	morphtest.ExpectText(t, ignored, "Ignored")
	morphtest.ExpectText(t, normal, "Changed")
}

func TestIgnoredNodeNeverChanges(t *testing.T) {
	root := vdom.MustParse(`<div><section morphed-ignore="" class="chart"><canvas></canvas></section><p>a</p></div>`)
	section := root.Children[0]

	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		sec := n.Children[0]
		sec.SetAttr("class", "other")
		sec.Children = []*vdom.VNode{vdom.P("replaced")}
		n.Children[1].SetText(s.String("p"))
	}), morphed.WithInitialState(morphed.State{"p": "b"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if class, _ := section.Attr("class"); class != "chart" {
		t.Errorf("class = %q, want chart", class)
	}
	if len(section.Children) != 1 || section.Children[0].Tag != "canvas" {
		t.Errorf("children changed: %s", morphtest.RenderToString(section))
	}

	before := section.Clone()
	if err := view.SetState(morphed.State{"p": "c"}); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	if !vdom.Equal(section, before) {
		t.Errorf("ignored subtree changed:\n got: %s\nwant: %s",
			morphtest.RenderToString(section), morphtest.RenderToString(before))
	}
	morphtest.ExpectText(t, view.Node().Children[1], "c")
}

func TestIgnoredNodeSurvivesIncompatibleCandidate(t *testing.T) {
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "Ignored"),
		vdom.P("x"),
	)
	ignored := root.Children[0]

	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		n.Children[0] = vdom.Span("Changed")
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	children := view.Node().Children
	if len(children) != 3 || children[0] != ignored {
		t.Fatalf("children = %s, want the ignored node kept first", morphtest.RenderToString(view.Node()))
	}
	morphtest.ExpectText(t, ignored, "Ignored")
	if children[1].Tag != "span" {
		t.Errorf("children[1] = %s, want the candidate span", morphtest.RenderToString(children[1]))
	}
	morphtest.ExpectText(t, children[1], "Changed")
	morphtest.ExpectText(t, children[2], "x")
}

func TestIgnoredNodeNotDiscarded(t *testing.T) {
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "Ignored"),
		vdom.P("a"),
	)
	ignored := root.Children[0]

	view, err := morphed.New(root, morphed.Render(func(s morphed.State) *vdom.VNode {
		return vdom.Div(vdom.Span("new"))
	}), morphed.WithClone(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	morphtest.ExpectHTML(t, view.Node(), `<div><p morphed-ignore>Ignored</p><span>new</span></div>`)
	if view.Node().Children[0] != ignored {
		t.Error("ignored node should keep its identity")
	}
}

func TestIgnoredRootNotReplaced(t *testing.T) {
	rec := &morphtest.Recorder{}
	root := vdom.Div(vdom.Flag(morphed.DefaultIgnoredAttribute), "keep")

	view, err := morphed.New(root, morphed.Render(func(s morphed.State) *vdom.VNode {
		return vdom.Span("other")
	}), morphed.WithClone(false), morphed.WithObserver(rec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if view.Node() != root || rec.Last().Replaced {
		t.Error("an ignored root should not be replaced")
	}
	morphtest.ExpectText(t, root, "keep")
}

func TestCallerDiscardHookComposed(t *testing.T) {
	var asked []string
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "ignored"),
		vdom.P(vdom.ID("pinned"), "pinned"),
		vdom.P("gone"),
	)

	view, err := morphed.New(root, morphed.Render(func(s morphed.State) *vdom.VNode {
		return vdom.Div()
	}), morphed.WithClone(false), morphed.WithMorphOptions(morph.Options{
		OnBeforeNodeDiscarded: func(n *vdom.VNode) bool {
			asked = append(asked, n.TextContent())
			return n.ID() != "pinned"
		},
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !reflect.DeepEqual(asked, []string{"pinned", "gone"}) {
		t.Errorf("caller hook saw %v, want pinned and gone only", asked)
	}
	morphtest.ExpectHTML(t, view.Node(), `<div><p morphed-ignore>ignored</p><p id="pinned">pinned</p></div>`)
}

func TestIgnoredIDs(t *testing.T) {
	root := vdom.Div(
		vdom.Div(vdom.Flag(morphed.DefaultIgnoredAttribute)),
		vdom.Div(vdom.Flag(morphed.DefaultIgnoredAttribute), vdom.ID("chart")),
		vdom.Div(vdom.Flag("custom-ignore")),
		vdom.Div(),
	)

	view, err := morphed.New(root, noop)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	kids := view.Node().Children
	if kids[0].ID() == "" {
		t.Error("ignored element without id should get one")
	}
	if kids[1].ID() != "chart" {
		t.Errorf("existing id changed to %q", kids[1].ID())
	}
	if kids[2].ID() != "" || kids[3].ID() != "" {
		t.Error("elements without the ignored attribute should not get ids")
	}
	if root.ID() != "" {
		t.Error("the root itself should not get an id")
	}

	tmpl := view.Template()
	if tmpl.Children[0].ID() != kids[0].ID() {
		t.Errorf("template id = %q, live id = %q", tmpl.Children[0].ID(), kids[0].ID())
	}
}

func TestIgnoredIDsWithGenerator(t *testing.T) {
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute)),
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute)),
	)
	_, err := morphed.New(root, noop, morphed.WithIDGenerator(vdom.NewIDGenerator("keep-")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if root.Children[0].ID() != "keep-1" || root.Children[1].ID() != "keep-2" {
		t.Errorf("ids = %q, %q", root.Children[0].ID(), root.Children[1].ID())
	}
}

func TestPureModeAssignsNoIDs(t *testing.T) {
	root := vdom.Div(vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute)))
	_, err := morphed.New(root, morphed.Render(func(morphed.State) *vdom.VNode {
		return vdom.Div(vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute)))
	}), morphed.WithClone(false))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if root.Children[0].ID() != "" {
		t.Errorf("pure mode assigned id %q", root.Children[0].ID())
	}
}

func TestCustomIgnoredAttribute(t *testing.T) {
	root := vdom.Div(
		vdom.P(vdom.Flag("data-keep"), "keep"),
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "default"),
	)

	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		for _, c := range n.Children {
			c.SetText("Changed")
		}
	}), morphed.WithIgnoredAttribute("data-keep"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if view.IgnoredAttribute() != "data-keep" {
		t.Errorf("IgnoredAttribute = %q", view.IgnoredAttribute())
	}
	morphtest.ExpectText(t, root.Children[0], "keep")
	morphtest.ExpectText(t, root.Children[1], "Changed")
	if root.Children[0].ID() == "" {
		t.Error("custom ignored element should get an id")
	}
	if root.Children[1].ID() != "" {
		t.Error("default attribute is not special with a custom one set")
	}
}

func TestCallerHookStillInvoked(t *testing.T) {
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "ignored"),
		vdom.P("normal"),
	)

	var seen []*vdom.VNode
	hook := func(from, to *vdom.VNode) bool {
		seen = append(seen, from)
		return true
	}

	_, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		n.Children[1].SetText("changed")
	}), morphed.WithMorphOptions(morph.Options{OnBeforeElUpdated: hook}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(seen) != 2 || seen[0] != root || seen[1] != root.Children[1] {
		t.Errorf("hook saw %d nodes, want the root and the normal child", len(seen))
	}
	morphtest.ExpectText(t, root.Children[1], "changed")
}

func TestCallerHookVetoHonoured(t *testing.T) {
	root := vdom.Div(vdom.P("a"), vdom.Span("b"))
	hook := func(from, to *vdom.VNode) bool {
		return from.Tag != "p"
	}

	_, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		for _, c := range n.Children {
			c.SetText("z")
		}
	}), morphed.WithMorphOptions(morph.Options{OnBeforeElUpdated: hook}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	morphtest.ExpectHTML(t, root, "<div><p>a</p><span>z</span></div>")
}

func TestMorphOptionsPassThrough(t *testing.T) {
	root := vdom.Div(vdom.Class("a"), vdom.P("x"))
	var updated []string

	_, err := morphed.New(root, morphed.Render(func(morphed.State) *vdom.VNode {
		return vdom.Div(vdom.Class("b"), vdom.P("y"))
	}), morphed.WithClone(false), morphed.WithMorphOptions(morph.Options{
		ChildrenOnly: true,
		OnElUpdated:  func(el *vdom.VNode) { updated = append(updated, el.Tag) },
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	morphtest.ExpectHTML(t, root, `<div class="a"><p>y</p></div>`)
	if !reflect.DeepEqual(updated, []string{"p"}) {
		t.Errorf("OnElUpdated saw %v, want [p]", updated)
	}
}

func TestUpdateErrorPropagates(t *testing.T) {
	boom := stderrors.New("boom")
	fail := false
	update := func(n *vdom.VNode, s morphed.State) (*vdom.VNode, error) {
		if fail {
			return nil, boom
		}
		n.SetText(s.String("t"))
		return n, nil
	}

	root := vdom.Div(vdom.Text("x"))
	view, err := morphed.New(root, update, morphed.WithInitialState(morphed.State{"t": "ok"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	fail = true
	if err := view.SetState(morphed.State{"t": "never"}); err != boom {
		t.Errorf("SetState err = %v, want boom unchanged", err)
	}
	morphtest.ExpectText(t, view.Node(), "ok")

	// The state change is kept even though the pass failed.
	if view.State().String("t") != "never" {
		t.Errorf("state = %v", view.State())
	}

	if _, err := morphed.New(vdom.Div(), update); err != boom {
		t.Errorf("New err = %v, want boom unchanged", err)
	}
}

func TestObserverReports(t *testing.T) {
	rec := &morphtest.Recorder{}
	root := vdom.Div(
		vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute), "keep"),
		vdom.P("a"),
	)

	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
		n.Children[1].SetText(s.String("p"))
	}), morphed.WithObserver(rec), morphed.WithInitialState(morphed.State{"p": "b"}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := view.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reports := rec.Reports()
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	first := reports[0]
	if first.Mode != morphed.ModeClone || first.Err != nil {
		t.Errorf("first = %+v", first)
	}
	if vdom.CountByOp(first.Patches)[vdom.PatchSetText] != 1 {
		t.Errorf("first patches = %+v, want one SetText", first.Patches)
	}
	if first.Skipped != 1 {
		t.Errorf("first skipped = %d, want 1", first.Skipped)
	}
	if first.Start.IsZero() || first.Duration < 0 {
		t.Errorf("timing = %v, %v", first.Start, first.Duration)
	}

	// The second pass finds nothing left to change.
	if len(reports[1].Patches) != 0 {
		t.Errorf("second patches = %+v, want none", reports[1].Patches)
	}
}

type ctxKey struct{}

func TestObserverReceivesContext(t *testing.T) {
	var got []any
	obs := morphed.ObserverFunc(func(ctx context.Context, r morphed.UpdateReport) {
		got = append(got, ctx.Value(ctxKey{}))
	})

	view, err := morphed.New(vdom.Div(), morphed.Mutate(func(*vdom.VNode, morphed.State) {}), morphed.WithObserver(obs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.WithValue(context.Background(), ctxKey{}, "req")
	if err := view.UpdateContext(ctx); err != nil {
		t.Fatalf("UpdateContext: %v", err)
	}
	if err := view.SetStateContext(ctx, morphed.State{"a": 1}); err != nil {
		t.Fatalf("SetStateContext: %v", err)
	}
	if err := view.ReplaceStateContext(ctx, morphed.State{}); err != nil {
		t.Fatalf("ReplaceStateContext: %v", err)
	}
	if err := view.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := []any{nil, "req", "req", "req", nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("context values = %v, want %v", got, want)
	}
}

func TestObserverSeesFailure(t *testing.T) {
	rec := &morphtest.Recorder{}
	boom := stderrors.New("boom")
	_, err := morphed.New(vdom.Div(), func(*vdom.VNode, morphed.State) (*vdom.VNode, error) {
		return nil, boom
	}, morphed.WithObserver(rec))
	if err != boom {
		t.Fatalf("err = %v", err)
	}
	if rec.Len() != 1 || rec.Last().Err != boom {
		t.Errorf("reports = %+v", rec.Reports())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root := vdom.Div(vdom.P(vdom.Flag(morphed.DefaultIgnoredAttribute)))
	if _, err := morphed.New(root, noop, morphed.WithLogger(logger)); err != nil {
		t.Fatalf("New: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"assigned ids", "count=1", "morphed: update", "mode=clone"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
