// Package morphtest provides testing helpers for morphed views.
//
// A Spy wraps an update function and records every call, so tests can
// assert how often a view ran its update function and with what:
//
//	spy := morphtest.MutateSpy(func(n *vdom.VNode, s morphed.State) {
//	    n.SetText(s.String("title"))
//	})
//	view, err := morphed.New(root, spy.Func(), morphed.WithInitialState(morphed.State{"title": "a"}))
//	if spy.CallCount() != 1 {
//	    t.Fatal("expected one call")
//	}
//
// Each Call keeps the node pointer the view passed in and a snapshot taken
// before the wrapped function ran, so tests can check what a clone-mode
// template copy looked like on arrival.
//
// # Render Assertions
//
//	morphtest.ExpectContains(t, view.Node(), "Welcome")
//	morphtest.ExpectNotContains(t, view.Node(), "Login")
//	morphtest.ExpectText(t, view.Node(), "Welcome")
//
// # Recording Reports
//
// Recorder is an Observer that keeps every UpdateReport:
//
//	rec := &morphtest.Recorder{}
//	view, _ := morphed.New(root, update, morphed.WithObserver(rec))
//	last := rec.Last()
package morphtest
