package term

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"gridsnake/pkg/snake"
)

func newGame(w, h int) *snake.Game {
	cfg := snake.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = w, h, 17
	return snake.NewWithConfig(cfg)
}

func TestPlayQuitKey(t *testing.T) {
	g := newGame(40, 40)
	keys := make(chan []snake.Input, 1)
	keys <- []snake.Input{snake.InputQuit}

	var out bytes.Buffer
	if err := Play(context.Background(), g, keys, &out, 1000, false); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.State() != snake.Defeat {
		t.Fatalf("state = %v, want defeat", g.State())
	}
	if !strings.Contains(out.String(), "defeat") {
		t.Fatal("final frame missing the result line")
	}
}

func TestPlayClosedInputQuits(t *testing.T) {
	g := newGame(40, 40)
	keys := make(chan []snake.Input)
	close(keys)

	if err := Play(context.Background(), g, keys, &bytes.Buffer{}, 1000, false); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.IsOngoing() {
		t.Fatal("closed input must end the session")
	}
}

func TestPlayRunsUntilWall(t *testing.T) {
	g := newGame(6, 6)
	var out bytes.Buffer
	if err := Play(context.Background(), g, nil, &out, 1000, false); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.State() != snake.Defeat {
		t.Fatalf("state = %v, want defeat", g.State())
	}
	if g.Tick() < 3 {
		t.Fatalf("ended after %d ticks", g.Tick())
	}
	if !strings.Contains(out.String(), "\r\n") || strings.Contains(strings.ReplaceAll(out.String(), "\r\n", ""), "\n") {
		t.Fatal("frames must use CRLF line endings")
	}
}

func TestPlayContextCancel(t *testing.T) {
	g := newGame(40, 40)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Play(ctx, g, nil, &bytes.Buffer{}, 1, false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if !g.IsOngoing() {
		t.Fatal("cancelled session should still be ongoing")
	}
}

func TestPlayAutopilot(t *testing.T) {
	g := newGame(8, 8)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Play(ctx, g, nil, &bytes.Buffer{}, 10000, true)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Play: %v", err)
	}
	if g.Score() < 2 {
		t.Fatalf("autopilot score %d, want at least 2", g.Score())
	}
}

// chunkReader returns one chunk per Read, then io.EOF.
type chunkReader struct {
	chunks []string
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]
	return n, nil
}

func TestReadKeysJoinsSplitArrow(t *testing.T) {
	keys := readKeys(&chunkReader{chunks: []string{"\x1b", "[1;5A", "q"}})

	var got []snake.Input
	for batch := range keys {
		got = append(got, batch...)
	}
	want := []snake.Input{snake.InputUp, snake.InputQuit}
	if !slices.Equal(got, want) {
		t.Fatalf("inputs = %v, want %v", got, want)
	}
}

func TestPlayKeepsPaceUnderKeyStream(t *testing.T) {
	g := newGame(80, 80)
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	keys := make(chan []snake.Input)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case keys <- []snake.Input{snake.InputNone}:
			}
		}
	}()

	err := Play(ctx, g, keys, &bytes.Buffer{}, 100, false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if g.Tick() < 3 {
		t.Fatalf("only %d ticks under a steady key stream", g.Tick())
	}
	if !g.IsOngoing() {
		t.Fatalf("state = %v, want ongoing", g.State())
	}
}
