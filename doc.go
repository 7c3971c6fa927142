// Package morphed keeps a live vdom tree in sync with a state mapping.
//
// A View owns a live tree and a State. On every pass it asks an update
// function for a candidate tree and reconciles the live tree with it in
// place through the morph package, leaving alone every element that
// carries the ignored attribute ("morphed-ignore" by default).
//
// # Clone mode
//
// The default. At construction the view gives ids to ignored elements and
// snapshots the live tree as a template. Each pass hands the update
// function a fresh copy of that template to mutate:
//
//	root := vdom.MustParse(`<div><h1>Old</h1><div morphed-ignore>chart</div></div>`)
//	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
//	    n.Query(vdom.TagIs("h1")).SetText(s.String("title"))
//	}), morphed.WithInitialState(morphed.State{"title": "Hello"}))
//
//	err = view.SetState(morphed.State{"title": "Bye"})
//
// # Pure mode
//
// With WithClone(false) the update function builds the candidate from the
// state alone and no template is kept:
//
//	view, err := morphed.New(root, morphed.Render(func(s morphed.State) *vdom.VNode {
//	    return vdom.Div(vdom.H1(s.String("title")))
//	}), morphed.WithClone(false))
//
// # Hooks
//
// Morph options given with WithMorphOptions are passed through. A caller
// OnBeforeElUpdated hook runs after the ignore check, only for pairs the
// check lets through.
//
// # Observability
//
// Views log each pass at debug level on their slog.Logger and report it to
// every Observer; package telemetry provides Prometheus and OpenTelemetry
// observers.
package morphed
