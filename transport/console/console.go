package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
	"github.com/rocketscienceinc/gamesearch/internal/search"
)

// Console prints a match as it is played: a progress bar per search and the board after every move.
type Console struct {
	out io.Writer
	au  aurora.Aurora

	mu       sync.Mutex
	stop     context.CancelFunc
	finished chan struct{}
}

func New(out io.Writer, colors bool) *Console {
	return &Console{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

func (that *Console) SearchStarted(ctx context.Context, searcher *search.Searcher) {
	that.mu.Lock()
	defer that.mu.Unlock()

	trackCtx, stop := context.WithCancel(ctx)
	finished := make(chan struct{})
	bar := NewProgressBar(that.out, that.au, "searching")

	go func() {
		defer close(finished)
		bar.Track(trackCtx, searcher)
	}()

	that.stop = stop
	that.finished = finished
}

func (that *Console) SearchFinished() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stop == nil {
		return
	}

	that.stop()
	<-that.finished

	that.stop = nil
	that.finished = nil

	fmt.Fprintln(that.out)
}

func (that *Console) MovePlayed(board fmt.Stringer, m entity.Move) {
	fmt.Fprintf(that.out, "%s\n%s\n", that.au.Bold(m.String()), that.Colorize(board.String()))
}

func (that *Console) MatchFinished(result *entity.MatchResult) {
	if result.Decided {
		fmt.Fprintln(that.out, that.au.Green(result.String()))
	} else {
		fmt.Fprintln(that.out, that.au.Yellow(result.String()))
	}
}

// Colorize paints the stones, homes and walls of a board's text form.
func (that *Console) Colorize(board string) string {
	var sb strings.Builder

	for _, r := range board {
		s := string(r)

		switch r {
		case 'X':
			sb.WriteString(that.au.Bold(that.au.Yellow(s)).String())
		case 'O':
			sb.WriteString(that.au.Bold(that.au.Cyan(s)).String())
		case '1', '2':
			sb.WriteString(that.au.Faint(s).String())
		case '|', '_':
			sb.WriteString(that.au.Red(s).String())
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
