package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/scoreboard", 200, 12*time.Millisecond)
	RecordGame(OutcomeCompleted)
}

func TestRecordBallCounters(t *testing.T) {
	before := testutil.ToFloat64(ballsRecorded.WithLabelValues("3"))
	RecordBall(3)
	RecordBall(3)
	if got := testutil.ToFloat64(ballsRecorded.WithLabelValues("3")); got != before+2 {
		t.Fatalf("unexpected ball 3 count: got %v want %v", got, before+2)
	}

	before = testutil.ToFloat64(ballsRejected.WithLabelValues("not_enough_pins"))
	RecordRejectedBall("not_enough_pins")
	if got := testutil.ToFloat64(ballsRejected.WithLabelValues("not_enough_pins")); got != before+1 {
		t.Fatalf("unexpected rejected count: got %v want %v", got, before+1)
	}

	before = testutil.ToFloat64(marks.WithLabelValues(MarkSpare))
	RecordMark(MarkSpare)
	if got := testutil.ToFloat64(marks.WithLabelValues(MarkSpare)); got != before+1 {
		t.Fatalf("unexpected spare count: got %v want %v", got, before+1)
	}
}
