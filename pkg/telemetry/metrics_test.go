package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/morphed"
	merrors "github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/vdom"
)

func TestMetricsSuccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.ObserveUpdate(context.Background(), morphed.UpdateReport{
		Mode:     morphed.ModeClone,
		Duration: 3 * time.Millisecond,
		Patches: []vdom.Patch{
			{Op: vdom.PatchSetText},
			{Op: vdom.PatchSetText},
			{Op: vdom.PatchSetAttr},
		},
		Skipped: 2,
	})

	if got := testutil.ToFloat64(m.updatesTotal.WithLabelValues("clone", "success")); got != 1 {
		t.Errorf("updates_total{clone,success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.patchesTotal.WithLabelValues(vdom.PatchSetText.String())); got != 2 {
		t.Errorf("patches_total{SetText} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.patchesTotal.WithLabelValues(vdom.PatchSetAttr.String())); got != 1 {
		t.Errorf("patches_total{SetAttr} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.skippedTotal); got != 2 {
		t.Errorf("ignored_skipped_total = %v, want 2", got)
	}
	if n := testutil.CollectAndCount(m.updateDuration); n != 1 {
		t.Errorf("update_duration_seconds series = %d, want 1", n)
	}
}

func TestMetricsError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.ObserveUpdate(context.Background(), morphed.UpdateReport{Mode: morphed.ModePure, Err: merrors.New("M101")})
	m.ObserveUpdate(context.Background(), morphed.UpdateReport{Mode: morphed.ModePure, Err: errors.New("boom")})

	if got := testutil.ToFloat64(m.updatesTotal.WithLabelValues("pure", "error")); got != 2 {
		t.Errorf("updates_total{pure,error} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.updateErrors.WithLabelValues("pure", "M101")); got != 1 {
		t.Errorf("update_errors_total{M101} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.updateErrors.WithLabelValues("pure", "external")); got != 1 {
		t.Errorf("update_errors_total{external} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.patchesTotal); n != 0 {
		t.Errorf("failed passes should record no patches, got %d series", n)
	}
}

func TestMetricsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("view"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	m.ObserveUpdate(context.Background(), morphed.UpdateReport{Mode: morphed.ModeClone})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"app_view_updates_total", "app_view_update_duration_seconds"} {
		if !names[want] {
			t.Errorf("missing metric %s in %v", want, names)
		}
	}
}

func TestMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewMetrics(WithRegistry(reg))
}

func TestErrorCode(t *testing.T) {
	wrapped := merrors.New("M003")
	if got := errorCode(wrapped); got != "M003" {
		t.Errorf("errorCode = %q, want M003", got)
	}
	if got := errorCode(errors.New("x")); got != "external" {
		t.Errorf("errorCode = %q, want external", got)
	}
}
