package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		200: "2xx",
		201: "2xx",
		302: "3xx",
		400: "4xx",
		404: "4xx",
		409: "4xx",
		500: "5xx",
		503: "5xx",
	}
	for status, want := range cases {
		if got := statusClass(status); got != want {
			t.Errorf("statusClass(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestRecordCounters(t *testing.T) {
	m := newHTTPMetrics(prometheus.NewRegistry())

	m.RecordUpload()
	m.RecordUpload()
	m.RecordCheckout("ok")
	m.RecordCheckout("error")
	m.RecordCheckout("ok")
	m.RecordRelease()

	if got := testutil.ToFloat64(m.uploads); got != 2 {
		t.Fatalf("expected 2 uploads, got %v", got)
	}
	if got := testutil.ToFloat64(m.checkouts.WithLabelValues("ok")); got != 2 {
		t.Fatalf("expected 2 ok checkouts, got %v", got)
	}
	if got := testutil.ToFloat64(m.checkouts.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 error checkout, got %v", got)
	}
	if got := testutil.ToFloat64(m.releases); got != 1 {
		t.Fatalf("expected 1 release, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *HTTPMetrics
	m.RecordUpload()
	m.RecordCheckout("ok")
	m.RecordRelease()
}
