package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"golang.org/x/sync/errgroup"
)

// Run plays until the player quits, input ends or ctx is cancelled. Lines are
// read on their own goroutine; every command is applied on the loop
// goroutine, so the board is never touched concurrently.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	// A blocked read cannot be interrupted; the reader is abandoned on return.
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		return s.loop(gctx, lines, readErr)
	})
	g.Go(func() error {
		select {
		case <-done:
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		Log.WithField("transcript", s.Transcript()).Info("interrupted")
		return nil
	}
	return err
}

func (s *Session) prompt() {
	if s.opts.Prompt {
		fmt.Fprint(s.opts.Out, "> ")
	}
}

func (s *Session) loop(ctx context.Context, lines <-chan string, readErr <-chan error) error {
	s.Show()
	for {
		s.prompt()
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		cmd, err := commands.Parse(line)
		if errors.Is(err, commands.ErrEmpty) {
			continue
		}
		if err != nil {
			fmt.Fprintln(s.opts.Out, err)
			continue
		}

		outcome, err := s.Apply(cmd)
		if err != nil {
			fmt.Fprintln(s.opts.Out, err)
			continue
		}
		if outcome.Quit {
			return nil
		}
		if outcome.Changed {
			s.Show()
		}
		if outcome.Message != "" {
			fmt.Fprintln(s.opts.Out, outcome.Message)
		}
	}
}
