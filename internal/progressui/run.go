package progressui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/lakshaymaurya-felt/winshred/internal/ui"
	"github.com/lakshaymaurya-felt/winshred/internal/wipe"
)

// plainReportEvery throttles line output when stdout is not a terminal.
const plainReportEvery = 2 * time.Second

// Run executes op on a background worker while rendering its progress.
// Stdout gets an interactive view when it is a terminal, plain throttled
// lines otherwise. The returned Result is whatever op produced; cancelling
// the view (q / ctrl+c) cancels the operation's context.
func Run(ctx context.Context, title string, op func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result) *wipe.Result {
	if isTTY(os.Stdout) {
		return runTUI(ctx, title, op)
	}
	return runPlain(ctx, os.Stdout, title, op)
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runTUI(ctx context.Context, title string, op func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result) *wipe.Result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan wipe.Progress, 8)
	done := make(chan *wipe.Result, 1)
	go func() {
		res := op(ctx, func(p wipe.Progress) {
			select {
			case updates <- p:
			default:
				// Rendering must never backpressure the writer; drop the
				// snapshot, a fresher one follows.
			}
		})
		close(updates)
		done <- res
	}()

	program := tea.NewProgram(newModel(title, updates, done, cancel))
	final, err := program.Run()
	if err != nil {
		// The terminal gave out; cancel and wait for the worker's result.
		cancel()
		return <-done
	}
	if m, ok := final.(Model); ok && m.result != nil {
		return m.result
	}
	return <-done
}

// runPlain drives op with throttled one-line progress reports.
func runPlain(ctx context.Context, w io.Writer, title string, op func(ctx context.Context, onProgress wipe.ProgressFunc) *wipe.Result) *wipe.Result {
	fmt.Fprintln(w, title)
	var last time.Time
	return op(ctx, func(p wipe.Progress) {
		if time.Since(last) < plainReportEvery {
			return
		}
		last = time.Now()
		line := fmt.Sprintf("  %3.0f%%  pass %d/%d  %s written",
			p.Fraction*100, p.Pass, p.TotalPasses, ui.HumanBytes(p.BytesWritten))
		if p.ETA > 0 {
			line += "  ETA " + ui.HumanDuration(p.ETA)
		}
		fmt.Fprintln(w, line)
	})
}
