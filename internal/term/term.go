// Package term drives a snake session in a terminal: raw-mode key input,
// fixed-rate ticks and the engine's text projection.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gridsnake/internal/autopilot"
	"gridsnake/internal/core"
	"gridsnake/pkg/snake"

	xterm "golang.org/x/term"
)

const (
	enterScreen = "\x1b[?1049h\x1b[?25l"
	leaveScreen = "\x1b[?25h\x1b[?1049l"
	cursorHome  = "\x1b[H"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// Options configures a terminal session.
type Options struct {
	Sim  snake.Config
	TPS  int
	Auto bool
}

// Run puts in into raw mode, plays one session and restores the terminal.
// The returned game is the finished session.
func Run(ctx context.Context, in *os.File, out io.Writer, opts Options) (*snake.Game, error) {
	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	if err := checkFits(fd, opts.Sim); err != nil {
		return nil, err
	}

	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: raw mode: %w", err)
	}
	defer xterm.Restore(fd, state)

	if _, err := io.WriteString(out, enterScreen); err != nil {
		return nil, err
	}
	defer io.WriteString(out, leaveScreen)

	g := snake.NewWithConfig(opts.Sim)
	// The reader blocks in Read and is abandoned when the session ends.
	err = Play(ctx, g, readKeys(in), out, opts.TPS, opts.Auto)
	return g, err
}

// Play runs g until it ends or ctx is cancelled. Inputs received on keys
// between ticks form the batch for the next tick; a closed channel counts
// as a quit.
func Play(ctx context.Context, g *snake.Game, keys <-chan []snake.Input, out io.Writer, tps int, auto bool) error {
	pacer := core.NewFixedStep(tps)
	var pending []snake.Input

	timer := time.NewTimer(pacer.Until())
	defer timer.Stop()

	if err := drawFrame(out, g); err != nil {
		return err
	}
	for g.IsOngoing() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-keys:
			if !ok {
				keys = nil
				batch = []snake.Input{snake.InputQuit}
			}
			pending = append(pending, batch...)
		case <-timer.C:
		}
		if !pacer.ShouldStep() {
			resetTimer(timer, pacer.Until())
			continue
		}

		if auto {
			pending = append(pending, autopilot.Choose(g))
		}
		g.Update(pending)
		pending = pending[:0]
		if err := drawFrame(out, g); err != nil {
			return err
		}
		resetTimer(timer, pacer.Until())
	}
	return nil
}

// resetTimer rearms t for d, draining a fire that was not received.
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

func readKeys(in io.Reader) <-chan []snake.Input {
	keys := make(chan []snake.Input, 8)
	go func() {
		defer close(keys)
		var dec Decoder
		buf := make([]byte, 32)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				if decoded := dec.Feed(buf[:n]); len(decoded) > 0 {
					keys <- decoded
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}

// drawFrame writes the board and a status line. Raw mode disables newline
// translation, so rows end in CRLF.
func drawFrame(out io.Writer, g *snake.Game) error {
	var b strings.Builder
	b.WriteString(cursorHome)
	b.WriteString(strings.ReplaceAll(g.Text(), "\n", "\r\n"))
	fmt.Fprintf(&b, "score %-5d %-8s\r\n", g.Score(), g.State())
	_, err := io.WriteString(out, b.String())
	return err
}

func checkFits(fd int, cfg snake.Config) error {
	cols, rows, err := xterm.GetSize(fd)
	if err != nil {
		return fmt.Errorf("term: size: %w", err)
	}
	needCols := 2 * (cfg.Width + 2)
	needRows := cfg.Height + 3
	if cols < needCols || rows < needRows {
		return fmt.Errorf("term: board %dx%d needs %dx%d characters, terminal is %dx%d",
			cfg.Width, cfg.Height, needCols, needRows, cols, rows)
	}
	return nil
}
