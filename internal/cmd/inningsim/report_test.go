package inningsim

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/xtding233/inning-sim/internal/inning"
	"github.com/xtding233/inning-sim/internal/montecarlo"
)

func sampleReport() inning.Report {
	return inning.Report{
		RunID:   "test-run",
		Seed:    987654321,
		Workers: 4,
		Elapsed: 1234567 * time.Microsecond,
		Stats: montecarlo.Stats{
			N:      12345,
			Mean:   0.45671,
			StdDev: 0.98761,
			StdErr: 0.00891,
			Max:    9,
			P50:    0,
			P90:    2,
			P99:    4,
			Distribution: []montecarlo.Bucket{
				{Value: 0, Count: 6000},
				{Value: 1, Count: 6345},
			},
		},
		MeanPlateAppearances: 4.25,
	}
}

func assertText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	t.Fatalf("report mismatch:\n%s", diff)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), false); err != nil {
		t.Fatal(err)
	}
	want := `run id            : test-run
trials            : 12,345
workers           : 4
seed              : 987654321
elapsed           : 1.235s

mean runs scored  : 0.4567
standard dev      : 0.9876
std. error on mean: 0.0089
mean batters      : 4.2500
p50 / p90 / p99   : 0 / 2 / 4
max runs          : 9
`
	assertText(t, want, buf.String())
}

func TestRenderHistogram(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"runs", "innings", "share", "6,000", "6,345", "48.60%", "51.40%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("histogram missing %q:\n%s", want, out)
		}
	}
}
