package exec

import (
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/schollz/progressbar/v3"
)

const progressBarWidth = 32

// BarProgress renders one progress bar per relation, counting batches.
type BarProgress struct {
	w     io.Writer
	bar   *progressbar.ProgressBar
	name  string
	rows  int64
	bytes int64
	start time.Time
}

func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{w: w}
}

func (p *BarProgress) Start(relation string, batches int) {
	p.name = relation
	p.rows, p.bytes = 0, 0
	p.start = time.Now()
	p.bar = progressbar.NewOptions(
		batches,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(progressBarWidth),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.w)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[light_magenta]━",
			SaucerHead:    "[light_magenta]╸",
			SaucerPadding: "[dark_gray]━",
			BarStart:      "",
			BarEnd:        "[reset]",
		}),
	)
}

func (p *BarProgress) Add(rows, goodBytes int) {
	p.rows += int64(rows)
	p.bytes += int64(goodBytes)
	p.bar.Describe(p.describe())
	_ = p.bar.Add(1)
}

func (p *BarProgress) Finish() {
	_ = p.bar.Finish()
}

func (p *BarProgress) describe() string {
	rate := 0.0
	if s := time.Since(p.start).Seconds(); s > 0 {
		rate = float64(p.bytes) / s
	}
	return fmt.Sprintf("%-12s %10d rows %9s (%s/s)", p.name, p.rows, units.BytesSize(float64(p.bytes)), units.BytesSize(rate))
}
