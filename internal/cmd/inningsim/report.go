package inningsim

import (
	"io"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/inning-sim/internal/inning"
)

// Render writes the summary of rep to w with four decimals, and the
// runs-per-inning distribution when histogram is set.
func Render(w io.Writer, rep inning.Report, histogram bool) error {
	p := message.NewPrinter(language.English)
	s := rep.Stats

	lines := []struct {
		format string
		args   []any
	}{
		{"run id            : %s\n", []any{rep.RunID}},
		{"trials            : %d\n", []any{s.N}},
		{"workers           : %d\n", []any{rep.Workers}},
		{"seed              : %s\n", []any{strconv.FormatUint(rep.Seed, 10)}},
		{"elapsed           : %s\n", []any{rep.Elapsed.Round(time.Millisecond).String()}},
		{"\n", nil},
		{"mean runs scored  : %.4f\n", []any{s.Mean}},
		{"standard dev      : %.4f\n", []any{s.StdDev}},
		{"std. error on mean: %.4f\n", []any{s.StdErr}},
		{"mean batters      : %.4f\n", []any{rep.MeanPlateAppearances}},
		{"p50 / p90 / p99   : %.0f / %.0f / %.0f\n", []any{s.P50, s.P90, s.P99}},
		{"max runs          : %d\n", []any{s.Max}},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.args...); err != nil {
			return err
		}
	}
	if !histogram {
		return nil
	}

	if _, err := p.Fprintf(w, "\n%4s  %12s  %7s\n", "runs", "innings", "share"); err != nil {
		return err
	}
	for _, b := range s.Distribution {
		share := 100 * float64(b.Count) / float64(s.N)
		if _, err := p.Fprintf(w, "%4d  %12d  %6.2f%%\n", b.Value, b.Count, share); err != nil {
			return err
		}
	}
	return nil
}
