package console

import (
	"context"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

const pollInterval = 100 * time.Millisecond

type percentSource interface {
	PercentDone() int
}

// ProgressBar shows how far a running search has got, out of 100.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

func NewProgressBar(out io.Writer, au aurora.Aurora, description string) *ProgressBar {
	return &ProgressBar{bar: progressbar.NewOptions(100,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        au.Yellow("█").String(),
			SaucerHead:    au.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)}
}

// Track polls source until ctx is done, then completes the bar.
func (that *ProgressBar) Track(ctx context.Context, source percentSource) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = that.bar.Set(source.PercentDone())
			_ = that.bar.Finish()
			_ = that.bar.Close()

			return
		case <-ticker.C:
			_ = that.bar.Set(source.PercentDone())
		}
	}
}
